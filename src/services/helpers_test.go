package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bakrinola/portfolio-backend/src/models"
)

func TestParseStringList(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{name: "comma separated", raw: "a,b", want: []string{"a", "b"}},
		{name: "json array", raw: `["UI/UX", "Dashboard"]`, want: []string{"UI/UX", "Dashboard"}},
		{name: "trims and drops empties", raw: " a , ,b ", want: []string{"a", "b"}},
		{name: "empty string", raw: "", want: []string{}},
		{name: "single value", raw: "Figma", want: []string{"Figma"}},
		{name: "malformed json is a client error", raw: `["a,b`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringList(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "web-development", Slugify("Web Development"))
	assert.Equal(t, "ui-ux-design", Slugify("  UI  UX   Design "))
}

func TestNextID(t *testing.T) {
	id := func(s models.ServiceModel) int { return s.ID }

	assert.Equal(t, 1, nextID([]models.ServiceModel{}, id))
	assert.Equal(t, 8, nextID([]models.ServiceModel{{ID: 3}, {ID: 7}, {ID: 1}}, id))
}

func TestMergePatch(t *testing.T) {
	existing := models.ServiceModel{ID: 2, Name: "Old", Slug: "old", Order: 5}

	merged, err := mergePatch(existing, map[string]any{"name": "New"})
	require.NoError(t, err)

	// Only the supplied field changes.
	assert.Equal(t, "New", merged.Name)
	assert.Equal(t, 2, merged.ID)
	assert.Equal(t, "old", merged.Slug)
	assert.Equal(t, 5, merged.Order)
}
