package oaipmh

import (
	"errors"
	"strconv"
	"time"

	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/xmltree"
)

// OAI-PMH protocol constants.
const (
	Namespace = "http://www.openarchives.org/OAI/2.0/"
	Schema    = "http://www.openarchives.org/OAI/2.0/OAI-PMH.xsd"

	VerbListRecords         = "ListRecords"
	VerbGetRecord           = "GetRecord"
	VerbListMetadataFormats = "ListMetadataFormats"

	// DatestampLayout is the day granularity of record datestamps.
	DatestampLayout = "2006-01-02"
	// ResponseDateLayout is the seconds granularity of responseDate.
	ResponseDateLayout = "2006-01-02T15:04:05Z"
)

// MetadataAppender appends the metadata of an item to a metadata element.
type MetadataAppender interface {
	AppendMetadata(it item.Item, metadata *xmltree.Element) error
}

// Format describes a metadata format in ListMetadataFormats.
type Format struct {
	Prefix    string
	Schema    string
	Namespace string
}

// Repository builds OAI-PMH responses for one repository and format.
type Repository struct {
	// ID is the repository part of OAI identifiers.
	ID string
	// BaseURL is echoed in the request element.
	BaseURL string
	// Format is the metadata format of produced records.
	Format Format
	// Metadata fills the metadata element of each record.
	Metadata MetadataAppender
}

// Identifier returns oai:<repo>:<id>.
func Identifier(repo string, id int64) string {
	return "oai:" + repo + ":" + strconv.FormatInt(id, 10)
}

// Datestamp formats t at day granularity in UTC. The zero time yields "".
func Datestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(DatestampLayout)
}

// Header is the header of one record.
type Header struct {
	Identifier string
	Datestamp  string
}

// HeaderFor returns the header of it. Items that do not implement
// item.Stamped get an empty datestamp.
func (r *Repository) HeaderFor(it item.Item) Header {
	h := Header{Identifier: Identifier(r.ID, it.ID())}

	if st, ok := it.(item.Stamped); ok {
		h.Datestamp = Datestamp(st.Modified())
	}

	return h
}

// Element returns the header element. An empty datestamp is omitted.
func (h Header) Element() *xmltree.Element {
	e := xmltree.NewElement("", "header")
	e.AppendText("", "identifier", h.Identifier)

	if h.Datestamp != "" {
		e.AppendText("", "datestamp", h.Datestamp)
	}

	return e
}

// Record builds the record element of it. On a metadata error the partially
// built record is returned with the error.
func (r *Repository) Record(it item.Item) (*xmltree.Element, error) {
	if r.Metadata == nil {
		return nil, errors.New("repository has no metadata appender")
	}

	rec := xmltree.NewElement("", "record")
	rec.AppendChild(r.HeaderFor(it).Element())
	metadata := rec.AppendElement("", "metadata")

	return rec, r.Metadata.AppendMetadata(it, metadata)
}

// envelope returns the OAI-PMH root with responseDate and request filled in.
func (r *Repository) envelope(now time.Time, verb string, args ...string) *xmltree.Element {
	root := xmltree.NewElement("", "OAI-PMH")
	root.DeclareNamespace("", Namespace)
	root.DeclareSchemaLocation(Namespace, Schema)
	root.AppendText("", "responseDate", now.UTC().Format(ResponseDateLayout))

	req := root.AppendText("", "request", r.BaseURL)
	req.SetAttr("verb", verb)

	for i := 0; i+1 < len(args); i += 2 {
		req.SetAttr(args[i], args[i+1])
	}

	return root
}

// ListRecords wraps records in a ListRecords response.
func (r *Repository) ListRecords(now time.Time, records []*xmltree.Element) *xmltree.Element {
	root := r.envelope(now, VerbListRecords, "metadataPrefix", r.Format.Prefix)

	list := root.AppendElement("", VerbListRecords)
	for _, rec := range records {
		list.AppendChild(rec)
	}

	return root
}

// GetRecord wraps a single record in a GetRecord response.
func (r *Repository) GetRecord(now time.Time, identifier string, record *xmltree.Element) *xmltree.Element {
	root := r.envelope(now, VerbGetRecord, "identifier", identifier, "metadataPrefix", r.Format.Prefix)
	root.AppendElement("", VerbGetRecord).AppendChild(record)

	return root
}

// ListMetadataFormats lists the repository's format.
func (r *Repository) ListMetadataFormats(now time.Time) *xmltree.Element {
	root := r.envelope(now, VerbListMetadataFormats)

	f := root.AppendElement("", VerbListMetadataFormats).AppendElement("", "metadataFormat")
	f.AppendText("", "metadataPrefix", r.Format.Prefix)
	f.AppendText("", "schema", r.Format.Schema)
	f.AppendText("", "metadataNamespace", r.Format.Namespace)

	return root
}
