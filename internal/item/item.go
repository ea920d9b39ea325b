package item

import (
	"time"

	"oai-dc-mapper/internal/common"
)

// Element set names used by catalog records.
const (
	SetDublinCore = "Dublin Core"
	SetItemType   = "Item Type Metadata"
)

// Derivative kinds understood by file resolvers.
const (
	DerivativeOriginal        = "original"
	DerivativeFullsize        = "fullsize"
	DerivativeThumbnail       = "thumbnail"
	DerivativeSquareThumbnail = "square_thumbnail"
)

// TextValue is a single value attached to one element occurrence.
type TextValue struct {
	Text string
}

// FileRef is a file attached to an item.
type FileRef interface {
	// DerivativePath returns the location of the derivative of the given kind.
	DerivativePath(kind string) (string, error)
}

// Item is a read-only handle to a metadata record.
type Item interface {
	// ID returns the record identifier.
	ID() int64

	// FieldTexts returns the texts of element field in element set set,
	// in storage order. A field without values yields an empty slice.
	FieldTexts(set, field string) ([]TextValue, error)

	// Files returns attached files in storage order.
	Files() ([]FileRef, error)
}

// Stamped is implemented by items that know when they were last modified.
type Stamped interface {
	Modified() time.Time
}

// DerivativeResolver maps a stored file name to a derivative location.
type DerivativeResolver interface {
	Path(filename, kind string) (string, error)
}

// FirstText returns the text of the first value, or "" when there is none.
func FirstText(texts []TextValue) string {
	if tv, ok := common.First(texts); ok {
		return tv.Text
	}

	return ""
}
