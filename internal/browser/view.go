package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gopherburrow/burrow/internal/document"
	"github.com/gopherburrow/burrow/internal/gopher"
	"github.com/gopherburrow/burrow/internal/ui/style"
)

const (
	headerLines = 2
	footerLines = 2
)

// pageLayout is the document flattened to display lines at the current
// width, with the line index of every navigable block.
type pageLayout struct {
	lines    []string
	navLines []int
}

// View implements tea.Model
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	body := m.renderBody()
	footer := m.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m Model) renderHeader() string {
	title := style.Header("burrow")
	if m.doc != nil && m.doc.Title != "" {
		title += style.Muted(" · " + truncate(m.doc.Title, m.width-10))
	}
	if m.loading {
		title += " " + m.spin.View()
	}

	var location string
	switch {
	case m.urlInput.Focused():
		location = m.urlInput.View()
	case m.current != nil:
		location = style.Muted(truncate(m.current.String(), m.width))
	default:
		location = style.Muted("start page")
	}

	return title + "\n" + location
}

func (m Model) renderBody() string {
	layout := m.layout()
	height := m.bodyHeight()

	start := m.scroll
	if start > len(layout.lines) {
		start = len(layout.lines)
	}
	end := start + height
	if end > len(layout.lines) {
		end = len(layout.lines)
	}

	visible := make([]string, 0, height)
	visible = append(visible, layout.lines[start:end]...)
	for len(visible) < height {
		visible = append(visible, "")
	}

	return strings.Join(visible, "\n")
}

func (m Model) renderFooter() string {
	status := m.status
	if status != "" {
		status = truncate(status, m.width)
		switch m.statusLevel {
		case statusError:
			status = style.Error(status)
		case statusWarning:
			status = style.Warning(status)
		case statusSuccess:
			status = style.Success(status)
		default:
			status = style.Info(status)
		}
	}

	hints := "w wrap · o open · tab links · enter follow · b back · H home · q quit"
	return status + "\n" + style.Muted(truncate(hints, m.width))
}

// layout flattens the document into display lines at the current
// width. Wrap mode is applied here, so a toggle changes the very next
// render.
func (m Model) layout() pageLayout {
	var layout pageLayout
	if m.doc == nil {
		return layout
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	navIndex := 0
	for _, block := range m.doc.Blocks {
		switch block := block.(type) {

		case *document.TextBlock:
			for _, line := range block.Lines {
				if block.WrapMode() == document.WrapSoft {
					layout.lines = append(layout.lines, softWrap(line, width)...)
				} else {
					layout.lines = append(layout.lines, truncate(line, width))
				}
			}

		case *document.LinkBlock:
			selected := navIndex == m.cursor
			line := truncate(navPrefix(selected)+typeGlyph(block.Type)+" "+linkLabel(block), width)
			if selected {
				line = style.Selected(line)
			} else {
				line = style.Link(line)
			}
			layout.navLines = append(layout.navLines, len(layout.lines))
			layout.lines = append(layout.lines, line)
			navIndex++

		case *document.SearchBlock:
			selected := navIndex == m.cursor
			line := truncate(navPrefix(selected)+typeGlyph(gopher.TypeSearch)+" "+block.Label, width)
			if selected {
				line = style.Selected(line)
			} else {
				line = style.Link(line)
			}
			layout.navLines = append(layout.navLines, len(layout.lines))
			layout.lines = append(layout.lines, line)
			navIndex++

			if m.searchFor == block {
				layout.lines = append(layout.lines, "      "+m.searchInput.View())
			} else if selected {
				layout.lines = append(layout.lines, style.Muted("      press enter to search"))
			}
		}
	}

	return layout
}

func (m Model) bodyHeight() int {
	height := m.height - headerLines - footerLines
	if height < 1 {
		height = 1
	}
	return height
}

func (m Model) maxScroll() int {
	max := len(m.layout().lines) - m.bodyHeight()
	if max < 0 {
		max = 0
	}
	return max
}

func navPrefix(selected bool) string {
	if selected {
		return "> "
	}
	return "  "
}

func linkLabel(block *document.LinkBlock) string {
	if block.Label != "" {
		return block.Label
	}
	if block.URL != nil {
		return block.URL.String()
	}
	return "(untitled)"
}

func typeGlyph(t gopher.ItemType) string {
	switch {
	case t == gopher.TypeSubmenu:
		return "[DIR]"
	case t == gopher.TypeTextFile:
		return "[TXT]"
	case t == gopher.TypeHTML:
		return "[WWW]"
	case t == gopher.TypeSearch:
		return "[SCH]"
	case t.IsImage():
		return "[IMG]"
	case t.IsBinary():
		return "[BIN]"
	default:
		return fmt.Sprintf("[ %c ]", t.Byte())
	}
}
