package document

import (
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopherburrow/burrow/internal/gopher"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestFromMenu_CoalescesInfoRuns(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/")

	doc := FromMenu(u, []gopher.Entry{
		{Type: gopher.TypeInfo, Label: " __art__ "},
		{Type: gopher.TypeInfo, Label: "(pseudographics)"},
		{Type: gopher.TypeSubmenu, Label: "a dir", URL: u},
		{Type: gopher.TypeInfo, Label: "footer"},
	})

	require.Len(t, doc.Blocks, 3)

	// Consecutive info lines become one preformatted block so aligned
	// art stays aligned.
	banner, ok := doc.Blocks[0].(*TextBlock)
	require.True(t, ok)
	assert.Equal(t, []string{" __art__ ", "(pseudographics)"}, banner.Lines)

	_, ok = doc.Blocks[1].(*LinkBlock)
	require.True(t, ok)

	footer, ok := doc.Blocks[2].(*TextBlock)
	require.True(t, ok)
	assert.Equal(t, []string{"footer"}, footer.Lines)
}

func TestFromMenu_SkipsUnknownEntries(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/")

	doc := FromMenu(u, []gopher.Entry{
		{Type: gopher.TypeUnknown, Label: "[invalid entry]"},
		{Type: gopher.TypeSubmenu, Label: "kept", URL: u},
	})

	require.Len(t, doc.Blocks, 1)
	link := doc.Blocks[0].(*LinkBlock)
	assert.Equal(t, "kept", link.Label)
}

func TestFromMenu_SearchEntriesBecomeForms(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/7/search")

	doc := FromMenu(u, []gopher.Entry{
		{Type: gopher.TypeSearch, Label: "search the archive", URL: u},
	})

	require.Len(t, doc.Blocks, 1)
	form := doc.Blocks[0].(*SearchBlock)
	assert.Equal(t, "search the archive", form.Label)
	assert.Same(t, u, form.URL)
}

func TestFromMenu_EntryWithoutURLKeepsLabelAsText(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/")

	doc := FromMenu(u, []gopher.Entry{
		{Type: gopher.TypeSubmenu, Label: "lost link"},
	})

	require.Len(t, doc.Blocks, 1)
	text := doc.Blocks[0].(*TextBlock)
	assert.Equal(t, []string{"lost link"}, text.Lines)
}

func TestFromMenu_EmptyMenu(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/")
	doc := FromMenu(u, nil)

	assert.Empty(t, doc.Blocks)
	assert.Equal(t, "example.com:70/", doc.Title)
}

func TestFromText(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/0/readme")
	doc := FromText(u, []string{"line one", "", "line three"})

	require.Len(t, doc.Blocks, 1)
	text := doc.Blocks[0].(*TextBlock)
	assert.Equal(t, []string{"line one", "", "line three"}, text.Lines)
	assert.Equal(t, WrapNone, text.WrapMode())
}

func TestErrorPage(t *testing.T) {
	u := mustURL(t, "gopher://example.com:70/")
	doc := ErrorPage(u, errors.New("connection refused"))

	require.Len(t, doc.Blocks, 1)
	text := doc.Blocks[0].(*TextBlock)
	require.Len(t, text.Lines, 1)
	assert.Contains(t, text.Lines[0], "error loading resource")
	assert.Contains(t, text.Lines[0], "connection refused")
}
