package site

import (
	"errors"
	"strings"
)

// ErrNoHeadingFound is returned when a document has no "# " line.
var ErrNoHeadingFound = errors.New("no h1 heading found")

// ExtractTitle returns the content of the first "# " line in markdown.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			if title = strings.TrimSpace(title); title != "" {
				return title, nil
			}
		}
	}
	return "", ErrNoHeadingFound
}
