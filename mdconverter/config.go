package mdconverter

import (
	"fmt"
	"regexp"
)

// CodeLanguageStyle controls what happens to a fence info string.
type CodeLanguageStyle string

const (
	// CodeLanguageVerbatim strips only the fence markers, so an info
	// string stays at the start of the code text.
	CodeLanguageVerbatim CodeLanguageStyle = "verbatim"
	// CodeLanguageClass drops the whole opening fence line and annotates
	// the code leaf with the first word of the info string.
	CodeLanguageClass CodeLanguageStyle = "class"
)

// DefaultRootTag wraps every converted document.
const DefaultRootTag = "div"

var tagNameRe = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// Config configures Markdown to HTML conversion behavior.
type Config struct {
	RootTag        string            `json:"rootTag,omitempty"`
	HeadingOffset  int               `json:"headingOffset,omitempty"`
	CodeLanguage   CodeLanguageStyle `json:"codeLanguage,omitempty"`
	LanguagePrefix string            `json:"languagePrefix,omitempty"`
	LanguageMap    map[string]string `json:"languageMap,omitempty"`
	ResolutionMode ResolutionMode    `json:"resolutionMode,omitempty"`
	LinkHook       LinkHook          `json:"-"`
	ImageHook      ImageHook         `json:"-"`
}

func (c Config) applyDefaults() Config {
	if c.RootTag == "" {
		c.RootTag = DefaultRootTag
	}
	if c.CodeLanguage == "" {
		c.CodeLanguage = CodeLanguageVerbatim
	}
	if c.LanguagePrefix == "" {
		c.LanguagePrefix = "language-"
	}
	if c.ResolutionMode == "" {
		c.ResolutionMode = ResolutionBestEffort
	}

	return c
}

func (c Config) clone() Config {
	cloned := c
	cloned.LanguageMap = cloneStringMap(c.LanguageMap)
	return cloned
}

// Validate checks that config values are valid.
func (c Config) Validate() error {
	if !tagNameRe.MatchString(c.RootTag) {
		return fmt.Errorf("invalid rootTag %q", c.RootTag)
	}

	if c.HeadingOffset < -5 || c.HeadingOffset > 5 {
		return fmt.Errorf("headingOffset must be between -5 and 5, got %d", c.HeadingOffset)
	}

	if c.CodeLanguage != CodeLanguageVerbatim && c.CodeLanguage != CodeLanguageClass {
		return fmt.Errorf("invalid codeLanguage %q", c.CodeLanguage)
	}

	for from, to := range c.LanguageMap {
		if from == "" || to == "" {
			return fmt.Errorf("languageMap keys and values must be non-empty")
		}
	}

	if c.ResolutionMode != ResolutionBestEffort && c.ResolutionMode != ResolutionStrict {
		return fmt.Errorf("invalid resolutionMode %q", c.ResolutionMode)
	}

	return nil
}

func cloneStringMap(src map[string]string) map[string]string {
	if src == nil {
		return nil
	}

	dst := make(map[string]string, len(src))
	for key, value := range src {
		dst[key] = value
	}

	return dst
}
