package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchExamples(t *testing.T) {
	c := New()

	tests := []struct {
		name        string
		query       string
		wantIDs     []string
		dontWantIDs []string
	}{
		{
			name:    "multi-term query requires every term",
			query:   "drag drop",
			wantIDs: []string{"drag-and-drop"},
		},
		{
			name:    "matching is case-insensitive",
			query:   "DRAG Drop",
			wantIDs: []string{"drag-and-drop"},
		},
		{
			name:        "terms match across tags and description",
			query:       "layout",
			wantIDs:     []string{"auto-layout"},
			dontWantIDs: []string{"drag-and-drop"},
		},
		{
			name:    "id substrings match",
			query:   "subflow",
			wantIDs: []string{"subflow"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := c.SearchExamples(tt.query).Text()
			for _, id := range tt.wantIDs {
				assert.Contains(t, text, "**"+id+"**")
			}
			for _, id := range tt.dontWantIDs {
				assert.NotContains(t, text, "**"+id+"**")
			}
		})
	}
}

func TestSearchExamples_NoMatches(t *testing.T) {
	c := New()

	t.Run("unmatched query lists all examples", func(t *testing.T) {
		text := c.SearchExamples("zzzzz-nothing").Text()
		assert.Contains(t, text, `No examples matched "zzzzz-nothing"`)
		assert.Contains(t, text, "basic-flow")
		assert.Contains(t, text, "drag-and-drop")
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		text := c.SearchExamples("").Text()
		assert.Contains(t, text, "No examples matched")
	})

	t.Run("whitespace-only query matches nothing", func(t *testing.T) {
		text := c.SearchExamples("   \t ").Text()
		assert.Contains(t, text, "No examples matched")
	})
}
