package config

// Defaults holds the in-code default for every known key.
// Defaults are not persisted; the config file only records overrides
// (plus the commented defaults written on first run).
var Defaults = map[string]func() string{
	"homepage":          func() string { return "" }, // empty means the start page
	"theme":             func() string { return "default" },
	"enable_log":        func() string { return "false" },
	"log_level":         func() string { return "warn" },
	"enable_history":    func() string { return "true" },
	"history_limit":     func() string { return "500" },
	"fetch_timeout_sec": func() string { return "15" },
	"color_link":        func() string { return "" }, // uses theme default
	"color_selected":    func() string { return "" }, // uses theme default
	"color_success":     func() string { return "" }, // uses theme default
	"color_warning":     func() string { return "" }, // uses theme default
	"color_error":       func() string { return "" }, // uses theme default
	"color_info":        func() string { return "" }, // uses theme default
	"color_muted":       func() string { return "" }, // uses theme default
	"color_header":      func() string { return "" }, // uses theme default
}

// VisibleKeys are the keys written into a fresh config file, in order.
var VisibleKeys = []string{
	"homepage",
	"theme",
	"enable_log",
	"log_level",
	"enable_history",
	"history_limit",
	"fetch_timeout_sec",
}

// Get returns the value for a config key.
// It checks the config file first, then falls back to the default.
// Returns the value and whether it was found (in file or defaults).
func Get(key string) (string, bool) {
	lines, err := ReadLines()
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	cfg, err := Parse(lines)
	if err != nil {
		if defaultFn, ok := Defaults[key]; ok {
			return defaultFn(), true
		}
		return "", false
	}

	if value, exists := cfg[key]; exists {
		return value, true
	}

	if defaultFn, ok := Defaults[key]; ok {
		return defaultFn(), true
	}

	return "", false
}

// GetAll returns all config values: user overrides merged over the
// defaults.
func GetAll() (map[string]string, error) {
	result := make(map[string]string, len(Defaults))
	for key, defaultFn := range Defaults {
		result[key] = defaultFn()
	}

	lines, err := ReadLines()
	if err != nil {
		return result, err
	}

	cfg, err := Parse(lines)
	if err != nil {
		return result, err
	}

	for key, value := range cfg {
		result[key] = value
	}

	return result, nil
}
