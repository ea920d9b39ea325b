package item

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNoResolver is returned when a file has no derivative resolver.
var ErrNoResolver = errors.New("no derivative resolver configured")

// ElementText is one stored value of an element.
type ElementText struct {
	Set     string `yaml:"set"`
	Element string `yaml:"element"`
	Text    string `yaml:"text"`
}

// File is a stored file name bound to a derivative resolver.
type File struct {
	Filename string
	Resolver DerivativeResolver
}

// DerivativePath implements FileRef.
func (f File) DerivativePath(kind string) (string, error) {
	if f.Resolver == nil {
		return "", fmt.Errorf("file %q: %w", f.Filename, ErrNoResolver)
	}

	return f.Resolver.Path(f.Filename, kind)
}

// Record is an in-memory item. Element set and element names match
// case-insensitively.
type Record struct {
	RecordID  int64
	UpdatedAt time.Time
	Texts     []ElementText
	Attached  []File
}

var (
	_ Item    = (*Record)(nil)
	_ Stamped = (*Record)(nil)
	_ FileRef = File{}
)

// ID implements Item.
func (r *Record) ID() int64 {
	return r.RecordID
}

// Modified implements Stamped.
func (r *Record) Modified() time.Time {
	return r.UpdatedAt
}

// FieldTexts implements Item.
func (r *Record) FieldTexts(set, field string) ([]TextValue, error) {
	out := []TextValue{}

	for _, et := range r.Texts {
		if strings.EqualFold(et.Set, set) && strings.EqualFold(et.Element, field) {
			out = append(out, TextValue{Text: et.Text})
		}
	}

	return out, nil
}

// Files implements Item.
func (r *Record) Files() ([]FileRef, error) {
	out := make([]FileRef, 0, len(r.Attached))
	for _, f := range r.Attached {
		out = append(out, f)
	}

	return out, nil
}

// Add appends one value for set/element and returns r for chaining.
func (r *Record) Add(set, element string, texts ...string) *Record {
	for _, t := range texts {
		r.Texts = append(r.Texts, ElementText{Set: set, Element: element, Text: t})
	}

	return r
}

// AddFile attaches a file resolved through resolver.
func (r *Record) AddFile(filename string, resolver DerivativeResolver) *Record {
	r.Attached = append(r.Attached, File{Filename: filename, Resolver: resolver})
	return r
}
