package database

import (
	"encoding/json"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslatePatchWhitelistsAndRenames(t *testing.T) {
	fields := map[string]interface{}{
		"badgeType": "UX Design",
		"url_slug":  "new-slug",
		"id":        "should be dropped",
		"madeUp":    "also dropped",
	}

	out := translatePatch(fields, allowedProjectFields)

	assert.Equal(t, "UX Design", out["badgeType"])
	assert.Equal(t, "new-slug", out["url_slug"])
	assert.NotContains(t, out, "id")
	assert.NotContains(t, out, "madeUp")
}

func TestAsInt(t *testing.T) {
	n, ok := asInt(float64(7))
	require.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = asInt(json.Number("42"))
	require.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = asInt("not a number")
	assert.False(t, ok)
}

func TestAsStringArray(t *testing.T) {
	arr, ok := asStringArray([]interface{}{"a", "b"})
	require.True(t, ok)
	assert.Equal(t, pq.StringArray{"a", "b"}, arr)

	_, ok = asStringArray([]interface{}{"a", 3})
	assert.False(t, ok)

	_, ok = asStringArray("not an array")
	assert.False(t, ok)
}

func TestAsJSONB(t *testing.T) {
	raw, ok := asJSONB([]interface{}{
		map[string]interface{}{"value": "40%", "title": "Conversion"},
	})
	require.True(t, ok)
	assert.JSONEq(t, `[{"value":"40%","title":"Conversion"}]`, string(raw))
}
