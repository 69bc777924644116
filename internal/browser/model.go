// Package browser implements the interactive terminal UI: one Bubble
// Tea model per session, navigating gopher pages and exposing the
// global wrap-mode shortcut.
package browser

import (
	"context"
	"net/url"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gopherburrow/burrow/internal/document"
	"github.com/gopherburrow/burrow/internal/domain"
	"github.com/gopherburrow/burrow/internal/gopher"
	"github.com/gopherburrow/burrow/internal/log"
	"github.com/gopherburrow/burrow/internal/ui/style"
)

// Messages

type docLoadedMsg struct {
	doc      *document.Document
	itemType gopher.ItemType
}

type fetchErrMsg struct {
	url *url.URL
	err error
}

// pageRef is a back-stack entry. The item type rides along so going
// back to a text file fetches it as one.
type pageRef struct {
	url      *url.URL
	itemType gopher.ItemType
}

// statusLevel picks the styling of the footer status line.
type statusLevel int

const (
	statusInfo statusLevel = iota
	statusSuccess
	statusWarning
	statusError
)

// Options configures a browser session.
type Options struct {
	// Client fetches gopher resources. Required.
	Client *gopher.Client

	// Visits records browsing history. May be nil to disable history.
	Visits domain.VisitStore

	// Config persists settings changed from inside the browser, like
	// the homepage. May be nil to disable in-app settings.
	Config domain.ConfigProvider

	// StartURL is the page to load on startup. When nil the session
	// opens on the start page built from recent history.
	StartURL *url.URL

	// HistoryLimit caps how many visits the start page shows.
	HistoryLimit int
}

// Model is the Bubble Tea model for a browsing session.
type Model struct {
	client  *gopher.Client
	visits  domain.VisitStore
	config  domain.ConfigProvider
	session uuid.UUID

	doc     *document.Document
	toggler *WrapToggler

	urlInput    textinput.Model
	searchInput textinput.Model
	searchFor   *document.SearchBlock

	spin    spinner.Model
	loading bool

	width  int
	height int
	scroll int
	cursor int

	current     *url.URL
	currentType gopher.ItemType
	back        []pageRef
	startURL    *url.URL

	status      string
	statusLevel statusLevel
}

// New creates a browser session.
func New(opts Options) Model {
	urlInput := textinput.New()
	urlInput.Prompt = "gopher://"
	urlInput.Placeholder = "host/selector"

	searchInput := textinput.New()
	searchInput.Prompt = "search: "

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	if style.Enabled() {
		spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(style.GetColors().Info))
	}

	m := Model{
		client:      opts.Client,
		visits:      opts.Visits,
		config:      opts.Config,
		session:     uuid.New(),
		urlInput:    urlInput,
		searchInput: searchInput,
		spin:        spin,
		startURL:    opts.StartURL,
	}

	m.toggler = NewWrapToggler(nil)
	if opts.StartURL == nil {
		m.doc = startPage(recentVisits(opts.Visits, opts.HistoryLimit))
		m.toggler.SetView(m.doc)
	} else {
		m.loading = true
	}

	return m
}

// Session returns the session ID stamped on recorded visits.
func (m Model) Session() uuid.UUID {
	return m.session
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	if m.startURL == nil {
		return nil
	}
	return tea.Batch(m.spin.Tick, m.fetchCmd(m.startURL, gopher.TypeSubmenu, ""))
}

// fetchCmd loads a gopher resource off the Update loop and delivers
// the built document (or the failure) as a message.
func (m Model) fetchCmd(u *url.URL, t gopher.ItemType, query string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), client.Timeout())
		defer cancel()

		if t == gopher.TypeTextFile {
			lines, err := client.FetchText(ctx, u)
			if err != nil {
				return fetchErrMsg{url: u, err: err}
			}
			return docLoadedMsg{doc: document.FromText(u, lines), itemType: t}
		}

		entries, err := client.FetchMenu(ctx, u, query)
		if err != nil {
			return fetchErrMsg{url: u, err: err}
		}
		return docLoadedMsg{doc: document.FromMenu(u, entries), itemType: t}
	}
}

// recordVisitCmd writes the visit to the history store. Failures are
// logged and never surface in the UI.
func (m Model) recordVisitCmd(doc *document.Document, t gopher.ItemType) tea.Cmd {
	if m.visits == nil || doc.URL == nil {
		return nil
	}

	visit := domain.Visit{
		Session:   m.session,
		URL:       doc.URL.String(),
		Title:     doc.Title,
		ItemType:  t.Byte(),
		VisitedAt: time.Now(),
	}
	visits := m.visits

	return func() tea.Msg {
		if err := visits.Record(visit); err != nil {
			log.Warn("browser: record visit %s: %v", visit.URL, err)
		}
		return nil
	}
}

// recentVisits is a nil-tolerant wrapper around the store.
func recentVisits(visits domain.VisitStore, limit int) []domain.Visit {
	if visits == nil || limit <= 0 {
		return nil
	}
	recent, err := visits.Recent(limit)
	if err != nil {
		log.Warn("browser: load recent visits: %v", err)
		return nil
	}
	return recent
}
