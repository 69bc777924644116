package browser

import (
	"net/url"

	"github.com/gopherburrow/burrow/internal/document"
	"github.com/gopherburrow/burrow/internal/domain"
	"github.com/gopherburrow/burrow/internal/gopher"
	"github.com/gopherburrow/burrow/internal/log"
)

// startPage builds the page shown when no URL was given: a short usage
// banner plus links to recently visited resources.
func startPage(visits []domain.Visit) *document.Document {
	doc := &document.Document{Title: "burrow"}

	doc.Blocks = append(doc.Blocks, &document.TextBlock{Lines: []string{
		"burrow — a gopher browser",
		"",
		"press o to open a URL, w to toggle line wrapping,",
		"tab to walk links, enter to follow, q to quit",
	}})

	if len(visits) == 0 {
		return doc
	}

	doc.Blocks = append(doc.Blocks, &document.TextBlock{Lines: []string{
		"",
		"recently visited:",
	}})

	for _, v := range visits {
		u, err := url.Parse(v.URL)
		if err != nil {
			log.Warn("browser: bad url in history: %q: %v", v.URL, err)
			continue
		}

		label := v.Title
		if label == "" {
			label = v.URL
		}
		doc.Blocks = append(doc.Blocks, &document.LinkBlock{
			Type:  gopher.ParseItemType(v.ItemType),
			Label: label,
			URL:   u,
		})
	}

	return doc
}
