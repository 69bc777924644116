package gopher

import (
	"net/url"
	"strings"

	"github.com/gopherburrow/burrow/internal/log"
)

// Entry is a single line of a gopher menu.
//
// Info entries carry no URL. Entries whose selector or host cannot be
// turned into a valid URL keep their label but have a nil URL.
type Entry struct {
	Type  ItemType
	Label string
	URL   *url.URL
}

// ParseEntry parses one tab-separated menu line. Lines with fewer than
// four fields are kept as unknown entries so a malformed server line
// never aborts the whole menu.
func ParseEntry(line string) Entry {
	line = strings.TrimSuffix(line, "\r")
	fields := strings.Split(line, "\t")
	if len(fields) < 4 || fields[0] == "" {
		return Entry{Type: TypeUnknown, Label: "[invalid entry]"}
	}

	t := ParseItemType(fields[0][0])
	label := fields[0][1:]

	if t == TypeInfo {
		return Entry{Type: TypeInfo, Label: label}
	}

	return Entry{
		Type:  t,
		Label: label,
		URL:   entryURL(fields[1], fields[2], fields[3]),
	}
}

// entryURL builds the target URL for a menu entry. A selector of the
// form "URL:<target>" points outside gopherspace and is used verbatim.
func entryURL(selector, host, port string) *url.URL {
	var raw string
	if strings.HasPrefix(selector, "URL:") {
		raw = selector[len("URL:"):]
	} else {
		raw = "gopher://" + host + ":" + port + selector
	}

	u, err := url.Parse(raw)
	if err != nil {
		log.Warn("gopher: parsing entry url %q: %v", raw, err)
		return nil
	}
	return u
}
