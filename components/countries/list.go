package countries

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"
)

//go:embed data/countries.txt
var dataFS embed.FS

const defaultListPath = "data/countries.txt"

// Entry pairs a country name with its demonym, e.g. "France" / "French".
type Entry struct {
	Name        string
	Nationality string
}

var (
	defaultOnce    sync.Once
	defaultEntries []Entry
	defaultErr     error
)

// DefaultEntries returns the embedded country list. The list is loaded once
// per process and callers receive a defensive copy.
func DefaultEntries() ([]Entry, error) {
	defaultOnce.Do(func() {
		f, err := dataFS.Open(defaultListPath)
		if err != nil {
			defaultErr = err
			return
		}
		defer func() { _ = f.Close() }()

		entries, err := LoadEntries(f)
		if err != nil {
			defaultErr = err
			return
		}
		defaultEntries = entries
	})

	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]Entry{}, defaultEntries...), nil
}

// LoadEntries parses a "Country|Nationality" line list, skipping blanks and
// '#' comments. A line without the separator reuses the country name as the
// nationality.
func LoadEntries(r io.Reader) ([]Entry, error) {
	if r == nil {
		return nil, fmt.Errorf("countries: missing reader")
	}

	scanner := bufio.NewScanner(r)
	entries := make([]Entry, 0, 256)
	seen := map[string]struct{}{}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name, nationality, found := strings.Cut(line, "|")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		nationality = strings.TrimSpace(nationality)
		if !found || nationality == "" {
			nationality = name
		}
		entries = append(entries, Entry{Name: name, Nationality: nationality})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("countries: read list: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("countries: list is empty")
	}
	return entries, nil
}

// Names returns the country names in list order.
func Names() ([]string, error) {
	entries, err := DefaultEntries()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out, nil
}

// Nationalities returns the demonyms in list order.
func Nationalities() ([]string, error) {
	entries, err := DefaultEntries()
	if err != nil {
		return nil, err
	}
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Nationality
	}
	return out, nil
}
