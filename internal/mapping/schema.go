package mapping

import (
	"fmt"
	"strings"

	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/match"
)

//go:generate go tool stringer -type=HandlerKind -linecomment -output=handler_kind_string.go

// HandlerKind names the handler that maps one field.
type HandlerKind int

const (
	_ HandlerKind = iota // zero value is invalid and marks "not set"

	HandlerDefault     // default
	HandlerIdentifier  // identifier
	HandlerSubject     // subject
	HandlerType        // type
	HandlerDate        // date
	HandlerDescription // description
	HandlerLocation    // location

	// HandlerTotal is the number of defined kinds plus the zero sentinel.
	HandlerTotal = int(iota)
)

// IsValid returns true if k is a defined handler kind.
func (k HandlerKind) IsValid() bool {
	return k > 0 && int(k) < HandlerTotal
}

// ParseHandlerKind returns the kind with the given name.
func ParseHandlerKind(name string) (HandlerKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	for k := HandlerKind(1); int(k) < HandlerTotal; k++ {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown handler %q%s", name, match.Suggest(name, handlerNames()))
}

func handlerNames() []string {
	names := make([]string, 0, HandlerTotal-1)
	for k := HandlerKind(1); int(k) < HandlerTotal; k++ {
		names = append(names, k.String())
	}

	return names
}

// MarshalYAML implements yaml.Marshaler.
func (k HandlerKind) MarshalYAML() (any, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("invalid handler kind %d", int(k))
	}

	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *HandlerKind) UnmarshalYAML(unmarshal func(any) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return fmt.Errorf("handler must be a string: %w", err)
	}

	parsed, err := ParseHandlerKind(name)
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// Crosswalk is the root of a crosswalk definition.
type Crosswalk struct {
	// Version of the crosswalk schema.
	Version string `yaml:"version,omitempty"`

	// Rules in output order.
	Rules []Rule `yaml:"rules"`
}

// Rule binds a record field to its element set and handler.
type Rule struct {
	// Field is the element name, lower case.
	Field string `yaml:"field"`

	// Set is the owning element set. Defaults to "Dublin Core".
	Set string `yaml:"set,omitempty"`

	// Handler maps the field's values. Defaults to HandlerDefault.
	Handler HandlerKind `yaml:"handler,omitempty"`
}

// String returns "set/field (handler)".
func (r Rule) String() string {
	return fmt.Sprintf("%s/%s (%s)", r.Set, r.Field, r.Handler)
}

// DefaultCrosswalk returns the fixed oai_dc crosswalk. Each call returns a
// fresh copy.
func DefaultCrosswalk() *Crosswalk {
	return &Crosswalk{
		Version: "1",
		Rules: []Rule{
			{Field: "title", Set: item.SetDublinCore, Handler: HandlerDefault},
			{Field: "creator", Set: item.SetDublinCore, Handler: HandlerDefault},
			{Field: "subject", Set: item.SetDublinCore, Handler: HandlerSubject},
			{Field: "description", Set: item.SetDublinCore, Handler: HandlerDescription},
			{Field: "publisher", Set: item.SetDublinCore, Handler: HandlerDefault},
			{Field: "date", Set: item.SetDublinCore, Handler: HandlerDate},
			{Field: "type", Set: item.SetDublinCore, Handler: HandlerType},
			{Field: "identifier", Set: item.SetDublinCore, Handler: HandlerIdentifier},
			{Field: "rights", Set: item.SetDublinCore, Handler: HandlerDefault},
			{Field: "location", Set: item.SetItemType, Handler: HandlerLocation},
		},
	}
}

// Fields returns the rule field names in order.
func (c *Crosswalk) Fields() []string {
	out := make([]string, len(c.Rules))
	for i, r := range c.Rules {
		out[i] = r.Field
	}

	return out
}
