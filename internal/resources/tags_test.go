package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTagFilter_Wildcard(t *testing.T) {
	// WHEN
	filter := ParseTagFilter(" * ")

	// THEN
	assert.True(t, filter.IsWildcard())
	assert.True(t, filter.Matches("plurals"))
	assert.True(t, filter.Matches("anything"))
	assert.Nil(t, filter.Tags())
	assert.Equal(t, "*", filter.String())
}

func TestParseTagFilter_List(t *testing.T) {
	// WHEN
	filter := ParseTagFilter("string, plurals,,string-array ")

	// THEN
	assert.False(t, filter.IsWildcard())
	assert.True(t, filter.Matches("string"))
	assert.True(t, filter.Matches("plurals"))
	assert.True(t, filter.Matches("string-array"))
	assert.False(t, filter.Matches("integer"))
	assert.Equal(t, []string{"plurals", "string", "string-array"}, filter.Tags())
	assert.Equal(t, "plurals,string,string-array", filter.String())
}

func TestParseTagFilter_EmptyFallsBackToString(t *testing.T) {
	for _, expr := range []string{"", "   ", ",", " , ,"} {
		// WHEN
		filter := ParseTagFilter(expr)

		// THEN
		assert.Equal(t, []string{DefaultTag}, filter.Tags(), "expression %q", expr)
	}
}
