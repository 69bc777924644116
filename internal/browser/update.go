package browser

import (
	"net/url"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gopherburrow/burrow/internal/document"
	"github.com/gopherburrow/burrow/internal/gopher"
)

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.urlInput.Width = inputWidth(msg.Width, len(m.urlInput.Prompt))
		m.searchInput.Width = inputWidth(msg.Width, len(m.searchInput.Prompt))
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case docLoadedMsg:
		m.loading = false
		m.doc = msg.doc
		m.current = msg.doc.URL
		m.currentType = msg.itemType
		m.toggler.SetView(m.doc)
		m.doc.SetFocus(m.focus())
		m.scroll = 0
		m.cursor = 0
		m.status = ""
		m.statusLevel = statusInfo
		return m, m.recordVisitCmd(msg.doc, msg.itemType)

	case fetchErrMsg:
		m.loading = false
		m.doc = document.ErrorPage(msg.url, msg.err)
		m.toggler.SetView(m.doc)
		m.doc.SetFocus(m.focus())
		m.scroll = 0
		m.cursor = 0
		m.setStatus(msg.err.Error(), statusError)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.urlInput.Focused() {
		return m.handleURLInputKey(msg)
	}
	if m.searchFor != nil {
		return m.handleSearchKey(msg)
	}

	key := msg.String()

	// The wrap shortcut is dispatched for every keypress; its guard
	// decides whether it fires.
	if m.toggler.HandleKey(document.KeyEvent{Key: key, Focus: m.focus()}) {
		m.setStatus("toggled line wrapping", statusSuccess)
		return m, nil
	}

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "o":
		m.openURLBar()
		return m, textinput.Blink

	case "j", "down":
		m.scrollBy(1)
	case "k", "up":
		m.scrollBy(-1)
	case "d", "pgdown":
		m.scrollBy(m.bodyHeight() / 2)
	case "u", "pgup":
		m.scrollBy(-m.bodyHeight() / 2)
	case "g", "home":
		m.scroll = 0
	case "G", "end":
		m.scroll = m.maxScroll()

	case "tab":
		m.moveCursor(1)
	case "shift+tab":
		m.moveCursor(-1)

	case "enter":
		return m.openSelected()

	case "b", "backspace":
		return m.goBack()

	case "H":
		return m.saveHomepage()

	case "r":
		if m.current != nil {
			m.loading = true
			return m, tea.Batch(m.spin.Tick, m.fetchCmd(m.current, m.currentType, ""))
		}
	}

	return m, nil
}

func (m Model) handleURLInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.urlInput.Blur()
		m.syncFocus()
		return m, nil

	case tea.KeyEnter:
		raw := m.urlInput.Value()
		m.urlInput.Blur()
		m.syncFocus()

		u, err := gopher.NormalizeURL(raw)
		if err != nil {
			m.setStatus(err.Error(), statusError)
			return m, nil
		}
		return m.navigate(u, gopher.TypeSubmenu, "")
	}

	var cmd tea.Cmd
	m.urlInput, cmd = m.urlInput.Update(msg)
	return m, cmd
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.searchFor = nil
		m.searchInput.Blur()
		m.syncFocus()
		return m, nil

	case tea.KeyEnter:
		target := m.searchFor
		query := m.searchInput.Value()
		m.searchFor = nil
		m.searchInput.Blur()
		m.syncFocus()

		if target.URL == nil || query == "" {
			return m, nil
		}
		return m.navigate(target.URL, gopher.TypeSearch, query)
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// navigate pushes the current page onto the back stack and starts a
// fetch for u.
func (m Model) navigate(u *url.URL, t gopher.ItemType, query string) (tea.Model, tea.Cmd) {
	if m.current != nil {
		m.back = append(m.back, pageRef{url: m.current, itemType: m.currentType})
	}
	m.current = u
	m.currentType = t
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.fetchCmd(u, t, query))
}

// saveHomepage persists the current URL as the configured homepage; on
// the start page it clears the setting instead.
func (m Model) saveHomepage() (tea.Model, tea.Cmd) {
	if m.config == nil {
		return m, nil
	}

	if m.current == nil {
		if err := m.config.Unset("homepage"); err != nil {
			m.setStatus("clear homepage: "+err.Error(), statusError)
		} else {
			m.setStatus("homepage cleared", statusSuccess)
		}
		return m, nil
	}

	if err := m.config.Set("homepage", m.current.String()); err != nil {
		m.setStatus("set homepage: "+err.Error(), statusError)
	} else {
		m.setStatus("homepage set to "+m.current.String(), statusSuccess)
	}
	return m, nil
}

func (m Model) goBack() (tea.Model, tea.Cmd) {
	if len(m.back) == 0 {
		m.setStatus("no previous page", statusInfo)
		return m, nil
	}

	ref := m.back[len(m.back)-1]
	m.back = m.back[:len(m.back)-1]
	m.current = ref.url
	m.currentType = ref.itemType
	m.loading = true
	return m, tea.Batch(m.spin.Tick, m.fetchCmd(ref.url, ref.itemType, ""))
}

// openSelected follows the link (or focuses the search form) under the
// cursor.
func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.doc == nil {
		return m, nil
	}
	nav := m.doc.Navigable()
	if m.cursor < 0 || m.cursor >= len(nav) {
		return m, nil
	}

	switch block := nav[m.cursor].(type) {
	case *document.SearchBlock:
		m.searchFor = block
		m.searchInput.SetValue("")
		m.searchInput.Focus()
		m.syncFocus()
		return m, textinput.Blink

	case *document.LinkBlock:
		switch {
		case block.URL == nil:
			m.setStatus("link target could not be parsed", statusError)
		case block.URL.Scheme != "gopher":
			m.setStatus("external link: "+block.URL.String(), statusWarning)
		case block.Type == gopher.TypeTextFile:
			return m.navigate(block.URL, gopher.TypeTextFile, "")
		case block.Type.IsImage() || block.Type.IsBinary():
			m.setStatus(block.Type.String()+" (not rendered): "+block.URL.String(), statusWarning)
		default:
			return m.navigate(block.URL, gopher.TypeSubmenu, "")
		}
	}

	return m, nil
}

func (m *Model) openURLBar() {
	value := ""
	if m.current != nil {
		value = m.current.Host + m.current.Path
	}
	m.urlInput.SetValue(value)
	m.urlInput.CursorEnd()
	m.urlInput.Focus()
	m.syncFocus()
}

// focus reports where keyboard input currently lands, derived from
// widget state.
func (m Model) focus() document.Focus {
	if m.urlInput.Focused() || m.searchFor != nil {
		return document.FocusInput
	}
	return document.FocusBody
}

// syncFocus mirrors widget focus into the document so anything holding
// the document view sees where input lands.
func (m *Model) syncFocus() {
	if m.doc != nil {
		m.doc.SetFocus(m.focus())
	}
}

func (m *Model) setStatus(text string, level statusLevel) {
	m.status = text
	m.statusLevel = level
}

// inputWidth sizes a textinput to the window, never below one cell.
func inputWidth(total, prompt int) int {
	w := total - prompt - 2
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) scrollBy(delta int) {
	m.scroll += delta
	m.clampScroll()
}

func (m *Model) clampScroll() {
	if max := m.maxScroll(); m.scroll > max {
		m.scroll = max
	}
	if m.scroll < 0 {
		m.scroll = 0
	}
}

// moveCursor moves the link cursor and scrolls the viewport enough to
// keep the selection visible.
func (m *Model) moveCursor(delta int) {
	if m.doc == nil {
		return
	}
	count := len(m.doc.Navigable())
	if count == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = count - 1
	}
	if m.cursor >= count {
		m.cursor = 0
	}

	line := m.layout().navLines[m.cursor]
	if line < m.scroll {
		m.scroll = line
	}
	if bottom := m.scroll + m.bodyHeight() - 1; line > bottom {
		m.scroll = line - m.bodyHeight() + 1
	}
	m.clampScroll()
}
