package dublincore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oai-dc-mapper/internal/item"
	"oai-dc-mapper/internal/mapping"
)

func TestEngine_Check(t *testing.T) {
	engine, err := New(testURLs{})
	require.NoError(t, err)

	rec := (&item.Record{RecordID: 4}).
		Add(item.SetDublinCore, "Creator", "Someone").
		Add(item.SetDublinCore, "Subject", "Boats").
		Add(item.SetDublinCore, "Description", "Text").
		Add(item.SetDublinCore, "Publisher", "Library").
		Add(item.SetDublinCore, "Date", "1900").
		Add(item.SetDublinCore, "Type", "Photograph").
		Add(item.SetDublinCore, "Rights", "Public domain")

	diags := engine.Check(rec)
	assert.True(t, diags.IsValid())
	require.Len(t, diags.Warnings, 1)
	assert.Equal(t, "missing_title", diags.Warnings[0].Code)
	assert.Equal(t, "item 4", diags.Warnings[0].Scope)

	require.Len(t, diags.Infos, 1)
	assert.Equal(t, "location", diags.Infos[0].Field)
}

func TestEngine_CheckReadFailure(t *testing.T) {
	engine, err := New(testURLs{})
	require.NoError(t, err)

	rec := (&item.Record{RecordID: 4}).Add(item.SetDublinCore, "Title", "T")

	diags := engine.Check(failingItem{Record: rec, field: "rights"})
	require.False(t, diags.IsValid())
	require.Len(t, diags.Errors, 1)
	assert.Equal(t, "read_failed", diags.Errors[0].Code)
	assert.Equal(t, "rights", diags.Errors[0].Field)
}

func TestEngine_CheckByHandler(t *testing.T) {
	tests := []struct {
		name    string
		handler mapping.HandlerKind
		values  []string
		empty   bool
	}{
		{"default absent", mapping.HandlerDefault, nil, true},
		{"default empty value", mapping.HandlerDefault, []string{""}, false},
		{"subject first empty", mapping.HandlerSubject, []string{"", "Boats"}, false},
		{"subject absent", mapping.HandlerSubject, nil, true},
		{"type empty value", mapping.HandlerType, []string{""}, false},
		{"location empty value", mapping.HandlerLocation, []string{""}, false},
		{"date first empty", mapping.HandlerDate, []string{"", "1900"}, true},
		{"description first empty", mapping.HandlerDescription, []string{""}, true},
		{"description set", mapping.HandlerDescription, []string{"Text"}, false},
		{"identifier absent", mapping.HandlerIdentifier, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cw := &mapping.Crosswalk{Rules: []mapping.Rule{
				{Field: "title", Set: item.SetDublinCore, Handler: mapping.HandlerDefault},
				{Field: "source", Set: item.SetDublinCore, Handler: tt.handler},
			}}

			engine, err := NewWithCrosswalk(testURLs{}, cw)
			require.NoError(t, err)

			rec := (&item.Record{RecordID: 3}).
				Add(item.SetDublinCore, "Title", "T").
				Add(item.SetDublinCore, "Source", tt.values...)

			diags := engine.Check(rec)
			assert.True(t, diags.IsValid())
			assert.Empty(t, diags.Warnings)

			if tt.empty {
				require.Len(t, diags.Infos, 1)
				assert.Equal(t, "source", diags.Infos[0].Field)
			} else {
				assert.Empty(t, diags.Infos)
			}
		})
	}
}
