package document

import (
	"fmt"
	"net/url"

	"github.com/gopherburrow/burrow/internal/gopher"
)

// FromMenu builds a document from a parsed gopher menu.
//
// Consecutive info entries are coalesced into a single preformatted
// block so pseudographics drawn across menu lines stay aligned. Unknown
// entries are dropped. Entries that lost their URL during parsing keep
// their label as plain preformatted text.
func FromMenu(u *url.URL, entries []gopher.Entry) *Document {
	doc := &Document{Title: pageTitle(u), URL: u}

	var paragraph []string
	flush := func() {
		if len(paragraph) > 0 {
			doc.Blocks = append(doc.Blocks, &TextBlock{Lines: paragraph})
			paragraph = nil
		}
	}

	for _, e := range entries {
		if e.Type == gopher.TypeInfo {
			paragraph = append(paragraph, e.Label)
			continue
		}
		flush()

		switch {
		case e.Type == gopher.TypeUnknown:
			continue
		case e.Type == gopher.TypeSearch:
			doc.Blocks = append(doc.Blocks, &SearchBlock{Label: e.Label, URL: e.URL})
		case e.URL == nil:
			doc.Blocks = append(doc.Blocks, &TextBlock{Lines: []string{e.Label}})
		default:
			doc.Blocks = append(doc.Blocks, &LinkBlock{Type: e.Type, Label: e.Label, URL: e.URL})
		}
	}
	flush()

	return doc
}

// FromText builds a document holding a text file as one preformatted
// block.
func FromText(u *url.URL, lines []string) *Document {
	return &Document{
		Title:  pageTitle(u),
		URL:    u,
		Blocks: []Block{&TextBlock{Lines: lines}},
	}
}

// ErrorPage builds a document describing a failed load.
func ErrorPage(u *url.URL, err error) *Document {
	return &Document{
		Title: pageTitle(u),
		URL:   u,
		Blocks: []Block{
			&TextBlock{Lines: []string{fmt.Sprintf("error loading resource: %v", err)}},
		},
	}
}

func pageTitle(u *url.URL) string {
	if u == nil {
		return "burrow"
	}
	return u.Host + u.Path
}
