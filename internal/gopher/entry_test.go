package gopher

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	e := ParseEntry("1Test entry\t/test\texample.com\t70\r\n")

	assert.Equal(t, TypeSubmenu, e.Type)
	assert.Equal(t, "Test entry", e.Label)
	require.NotNil(t, e.URL)
	assert.Equal(t, "gopher://example.com:70/test", e.URL.String())
}

func TestParseEntry_InfoCarriesNoURL(t *testing.T) {
	e := ParseEntry("iJust some text\tfake\t(NULL)\t0")

	assert.Equal(t, TypeInfo, e.Type)
	assert.Equal(t, "Just some text", e.Label)
	assert.Nil(t, e.URL)
}

func TestParseEntry_URLSelectorOverride(t *testing.T) {
	e := ParseEntry("hA web link\tURL:https://example.com/page\texample.com\t70")

	assert.Equal(t, TypeHTML, e.Type)
	require.NotNil(t, e.URL)
	assert.Equal(t, "https://example.com/page", e.URL.String())
}

func TestParseEntry_MalformedLines(t *testing.T) {
	for _, line := range []string{
		"",
		"1Only a label",
		"1label\tselector\thost", // missing port
		"no tabs at all",
	} {
		t.Run(line, func(t *testing.T) {
			e := ParseEntry(line)
			assert.Equal(t, TypeUnknown, e.Type)
			assert.Equal(t, "[invalid entry]", e.Label)
			assert.Nil(t, e.URL)
		})
	}
}

func TestParseEntry_UnknownTypeKeepsFields(t *testing.T) {
	e := ParseEntry("zStrange\t/sel\texample.com\t70")

	assert.Equal(t, TypeUnknown, e.Type)
	assert.Equal(t, "Strange", e.Label)
}

func TestParseEntry_EmptyLabel(t *testing.T) {
	e := ParseEntry("1\t/\texample.com\t70")

	assert.Equal(t, TypeSubmenu, e.Type)
	assert.Equal(t, "", e.Label)
	require.NotNil(t, e.URL)
}

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare host", "example.com", "gopher://example.com:70"},
		{"scheme kept", "gopher://example.com", "gopher://example.com:70"},
		{"explicit port kept", "gopher://example.com:7070", "gopher://example.com:7070"},
		{"selector kept", "example.com/1/stuff", "gopher://example.com:70/1/stuff"},
		{"surrounding space trimmed", "  example.com  ", "gopher://example.com:70"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NormalizeURL(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
		})
	}
}

func TestNormalizeURL_Rejects(t *testing.T) {
	for _, input := range []string{"", "   ", "https://example.com", "gopher://"} {
		t.Run(input, func(t *testing.T) {
			_, err := NormalizeURL(input)
			assert.Error(t, err)
		})
	}
}

func TestHostPort_DefaultsTo70(t *testing.T) {
	u, err := url.Parse("gopher://example.com")
	require.NoError(t, err)
	assert.Equal(t, "example.com:70", hostPort(u))

	u, err = url.Parse("gopher://example.com:7070")
	require.NoError(t, err)
	assert.Equal(t, "example.com:7070", hostPort(u))
}
