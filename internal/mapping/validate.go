package mapping

import (
	"fmt"
	"slices"
	"strings"

	"oai-dc-mapper/internal/diagnostic"
	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/match"
)

const scopeCrosswalk = "crosswalk"

// knownSets lists the element sets records are stored under.
var knownSets = []string{item.SetDublinCore, item.SetItemType}

// dcElements are the fifteen Dublin Core Metadata Element Set names.
var dcElements = []string{
	"contributor", "coverage", "creator", "date", "description",
	"format", "identifier", "language", "publisher", "relation",
	"rights", "source", "subject", "title", "type",
}

// Validate validates a crosswalk definition. This is a structural check
// only; whether records actually carry the fields is checked per item.
func Validate(cw *Crosswalk) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if cw == nil {
		res.AddError("crosswalk_is_nil", "crosswalk is nil", scopeCrosswalk, "")
		return res
	}

	if len(cw.Rules) == 0 {
		res.AddError("no_rules", "crosswalk has no rules", scopeCrosswalk, "")
		return res
	}

	seenFields := map[string]struct{}{}
	handlerUse := map[HandlerKind]int{}

	for i := range cw.Rules {
		validateRule(res, &cw.Rules[i], seenFields)
		handlerUse[cw.Rules[i].Handler]++
	}

	// The identifier handler does not read its field, so binding it twice
	// emits the display URL twice.
	if n := handlerUse[HandlerIdentifier]; n > 1 {
		res.AddWarning("repeated_identifier",
			fmt.Sprintf("identifier handler is bound %d times", n), scopeCrosswalk, "")
	}

	if handlerUse[HandlerIdentifier] == 0 {
		res.AddInfo("no_identifier", "records will carry no dc:identifier", scopeCrosswalk, "")
	}

	return res
}

func validateRule(res *diagnostic.Diagnostics, r *Rule, seenFields map[string]struct{}) {
	if r.Field == "" {
		res.AddError("empty_field", "rule has no field name", scopeCrosswalk, "")
		return
	}

	if r.Field != strings.ToLower(r.Field) || strings.ContainsAny(r.Field, " :<>") {
		res.AddError("invalid_field", fmt.Sprintf("field %q is not a valid element name", r.Field), scopeCrosswalk, r.Field)
	}

	if _, ok := seenFields[r.Field]; ok {
		res.AddError("duplicate_field", fmt.Sprintf("duplicate field %q", r.Field), scopeCrosswalk, r.Field)
	}

	seenFields[r.Field] = struct{}{}

	if !r.Handler.IsValid() {
		res.AddError("unknown_handler", fmt.Sprintf("handler %s is not defined", r.Handler), scopeCrosswalk, r.Field)
	}

	if !slices.ContainsFunc(knownSets, func(s string) bool { return strings.EqualFold(s, r.Set) }) {
		res.AddWarning("unknown_set", fmt.Sprintf("element set %q is not a catalog set", r.Set),
			scopeCrosswalk, r.Field, closest(r.Set, knownSets)...)

		return
	}

	// Fields of the Dublin Core set are emitted as dc:<field> by the default
	// handler and must name a DCMES element.
	if strings.EqualFold(r.Set, item.SetDublinCore) && r.Handler == HandlerDefault && !slices.Contains(dcElements, r.Field) {
		res.AddWarning("unknown_element", fmt.Sprintf("%q is not a Dublin Core element", r.Field),
			scopeCrosswalk, r.Field, closest(r.Field, dcElements)...)
	}
}

// closest returns the candidate nearest to name, if any is close enough.
func closest(name string, candidates []string) []string {
	if c, ok := match.Closest(name, candidates, match.DefaultMinScore); ok {
		return []string{c}
	}

	return nil
}
