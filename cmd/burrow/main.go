package main

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/gopherburrow/burrow/internal/browser"
	"github.com/gopherburrow/burrow/internal/config"
	"github.com/gopherburrow/burrow/internal/domain"
	"github.com/gopherburrow/burrow/internal/gopher"
	"github.com/gopherburrow/burrow/internal/history"
	"github.com/gopherburrow/burrow/internal/log"
	"github.com/gopherburrow/burrow/internal/paths"
	"github.com/gopherburrow/burrow/internal/ui/style"
)

const version = "0.3.0"

const usage = `burrow - a terminal gopher browser

usage: burrow [flags] [gopher-url]

flags:
  --no-color        disable styled output
  --no-history      do not record or show browsing history
  --log-level=LVL   debug, info, warn or error
  --timeout=SECS    per-request network timeout
  --version         print version and exit
  -h, --help        print this help and exit

keys:
  w        toggle line wrapping of preformatted text
  o        open a URL
  tab      walk links
  enter    follow the selected link
  b        go back
  H        set the current page as homepage (on the start page: clear it)
  q        quit
`

func main() {
	args := os.Args[1:]
	flags := extractFlags(args)
	positional := extractPositional(args)

	if flags.has("--help") || flags.has("-h") {
		fmt.Print(usage)
		return
	}
	if flags.has("--version") {
		fmt.Println("burrow " + version)
		return
	}

	cfg, err := config.GetAll()
	if err != nil {
		// A broken config file falls back to defaults; still usable.
		fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
	}

	enableColor := term.IsTerminal(int(os.Stdout.Fd())) && !flags.has("--no-color")
	style.Init(enableColor, cfg)

	if cfg["enable_log"] == "true" {
		level := log.ParseLevel(flags.string("--log-level", cfg["log_level"]))
		if err := log.Init(paths.LogFilePath(), level); err != nil {
			fmt.Fprintln(os.Stderr, style.Warning(fmt.Sprintf("warning: logging disabled: %v", err)))
		}
	}
	defer func() { _ = log.Close() }()

	if err := run(flags, positional, cfg); err != nil {
		fmt.Fprintln(os.Stderr, style.Error(err.Error()))
		os.Exit(1)
	}
}

func run(flags parsedFlags, positional []string, cfg map[string]string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("burrow requires an interactive terminal")
	}
	if len(positional) > 1 {
		return fmt.Errorf("expected at most one URL, got %d arguments", len(positional))
	}

	timeout := durationSetting(flags.string("--timeout", cfg["fetch_timeout_sec"]))
	client := gopher.NewClient(timeout)

	var visits domain.VisitStore
	if cfg["enable_history"] == "true" && !flags.has("--no-history") {
		store, err := history.New(history.DBPath())
		if err != nil {
			log.Warn("main: history disabled: %v", err)
		} else {
			visits = store
			defer func() { _ = store.Close() }()
			pruneHistory(store, cfg["history_limit"])
		}
	}

	startURL, err := resolveStartURL(positional, cfg["homepage"])
	if err != nil {
		return err
	}

	m := browser.New(browser.Options{
		Client:       client,
		Visits:       visits,
		Config:       config.NewProvider(),
		StartURL:     startURL,
		HistoryLimit: 20,
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// resolveStartURL picks the first page: the CLI argument, else the
// configured homepage, else nil for the built-in start page.
func resolveStartURL(positional []string, homepage string) (*url.URL, error) {
	if len(positional) == 1 {
		return gopher.NormalizeURL(positional[0])
	}
	if homepage != "" {
		u, err := gopher.NormalizeURL(homepage)
		if err != nil {
			log.Warn("main: ignoring bad homepage %q: %v", homepage, err)
			return nil, nil
		}
		return u, nil
	}
	return nil, nil
}

func durationSetting(secs string) time.Duration {
	n, err := strconv.Atoi(strings.TrimSpace(secs))
	if err != nil || n <= 0 {
		return gopher.DefaultTimeout
	}
	return time.Duration(n) * time.Second
}

func pruneHistory(store *history.Store, limit string) {
	keep, err := strconv.Atoi(strings.TrimSpace(limit))
	if err != nil || keep <= 0 {
		return
	}
	if _, err := store.Prune(keep); err != nil {
		log.Warn("main: prune history: %v", err)
	}
}

// parsedFlags is the set of --flag and --flag=value arguments.
type parsedFlags map[string]string

func (f parsedFlags) has(name string) bool {
	_, ok := f[name]
	return ok
}

func (f parsedFlags) string(name, fallback string) string {
	if v, ok := f[name]; ok && v != "" {
		return v
	}
	return fallback
}

func extractFlags(args []string) parsedFlags {
	flags := make(parsedFlags)
	for _, a := range args {
		if len(a) == 0 || a[0] != '-' {
			continue
		}
		name, value, _ := strings.Cut(a, "=")
		flags[name] = value
	}
	return flags
}

func extractPositional(args []string) []string {
	var out []string
	for _, a := range args {
		if len(a) > 0 && a[0] != '-' {
			out = append(out, a)
		}
	}
	return out
}
