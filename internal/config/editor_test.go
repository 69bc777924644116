package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_UpdatesExistingLine(t *testing.T) {
	lines := []string{"# header", "theme=default", "enable_log=false"}

	got, updated := Set(lines, "theme", "ocean")

	assert.True(t, updated)
	assert.Equal(t, []string{"# header", "theme=ocean", "enable_log=false"}, got)
}

func TestSet_PreservesInlineComment(t *testing.T) {
	lines := []string{"history_limit=500 # how many visits to keep"}

	got, updated := Set(lines, "history_limit", "100")

	assert.True(t, updated)
	assert.Equal(t, []string{"history_limit=100 # how many visits to keep"}, got)
}

func TestSet_AppendsMissingKey(t *testing.T) {
	lines := []string{"theme=default"}

	got, updated := Set(lines, "homepage", "gopher://example.com")

	assert.False(t, updated)
	assert.Equal(t, []string{"theme=default", "homepage=gopher://example.com"}, got)
}

func TestSet_LeavesCommentedKeyAlone(t *testing.T) {
	lines := []string{"# theme=default"}

	got, updated := Set(lines, "theme", "ocean")

	assert.False(t, updated)
	assert.Equal(t, []string{"# theme=default", "theme=ocean"}, got)
}

func TestUnset(t *testing.T) {
	lines := []string{"# header", "theme=ocean", "", "enable_log=true"}

	got, removed := Unset(lines, "theme")

	assert.True(t, removed)
	assert.Equal(t, []string{"# header", "", "enable_log=true"}, got)
}

func TestUnset_MissingKey(t *testing.T) {
	lines := []string{"theme=ocean"}

	got, removed := Unset(lines, "homepage")

	assert.False(t, removed)
	assert.Equal(t, []string{"theme=ocean"}, got)
}
