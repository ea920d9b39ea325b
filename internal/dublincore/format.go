package dublincore

// Institutional and namespace constants of the oai_dc format.
const (
	// Contributor is emitted as the first dc:contributor of every record.
	Contributor = "Southwest Harbor Public Library"

	MetadataPrefix    = "oai_dc"
	MetadataNamespace = "http://www.openarchives.org/OAI/2.0/oai_dc/"
	MetadataSchema    = "http://www.openarchives.org/OAI/2.0/oai_dc.xsd"

	// DCNamespace is the Dublin Core elements namespace.
	DCNamespace = "http://purl.org/dc/elements/1.1/"
	// DCTermsNamespace is the Dublin Core terms namespace.
	DCTermsNamespace = "http://purl.org/dc/terms/"

	prefixDC      = "dc"
	prefixDCTerms = "dcterms"
)

// Format describes the oai_dc metadata format for ListMetadataFormats-style
// listings.
type Format struct {
	Prefix    string
	Schema    string
	Namespace string
}

// Describe returns the oai_dc format descriptor.
func Describe() Format {
	return Format{
		Prefix:    MetadataPrefix,
		Schema:    MetadataSchema,
		Namespace: MetadataNamespace,
	}
}

// Name returns the format identifier.
func (f Format) Name() string { return f.Prefix }

// Description returns a human-readable format description.
func (f Format) Description() string { return "Dublin Core (OAI-PMH oai_dc)" }
