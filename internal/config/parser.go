package config

import "strings"

// Parse turns config file lines into a key/value map. Blank lines and
// # comments are skipped; inline comments after a value are stripped.
// Lines without an = are ignored rather than treated as errors.
func Parse(lines []string) (map[string]string, error) {
	cfg := make(map[string]string)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		parts := strings.SplitN(trimmed, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := parts[1]

		if idx := strings.Index(value, "#"); idx >= 0 {
			value = value[:idx]
		}
		value = strings.TrimSpace(value)

		if key == "" {
			continue
		}
		cfg[key] = value
	}

	return cfg, nil
}
