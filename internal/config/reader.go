// Package config reads and writes the line-based ~/.burrowrc file.
// The format is key=value with # comments; unknown keys are kept so a
// newer build never eats an older file.
package config

import (
	"bufio"
	"os"
	"strings"

	"github.com/gopherburrow/burrow/internal/log"
	"github.com/gopherburrow/burrow/internal/paths"
)

func ReadLines() ([]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(configPath)
	isNew := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(configPath, os.O_CREATE|os.O_RDONLY, 0600)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(file)

	for scanner.Scan() {
		line := scanner.Text()
		line = strings.TrimSuffix(line, "\r") // Windows CRLF
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	// A new or empty file gets the defaults materialized so users can
	// discover the knobs by opening it.
	if isNew && len(lines) == 0 {
		lines = initializeDefaults()
		if err := WriteLines(lines); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
	}

	return lines, nil
}

func initializeDefaults() []string {
	lines := []string{
		"# burrow configuration",
		"# values shown are the defaults",
		"",
	}
	for _, key := range VisibleKeys {
		lines = append(lines, key+"="+Defaults[key]())
	}
	return lines
}
