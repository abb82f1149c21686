package mdconverter

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := (Config{}).applyDefaults()
	assert.Equal(t, DefaultRootTag, cfg.RootTag)
	assert.Equal(t, CodeLanguageVerbatim, cfg.CodeLanguage)
	assert.Equal(t, "language-", cfg.LanguagePrefix)
	assert.Equal(t, ResolutionBestEffort, cfg.ResolutionMode)
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"root tag", func(c *Config) { c.RootTag = "<div>" }, "rootTag"},
		{"heading offset high", func(c *Config) { c.HeadingOffset = 6 }, "headingOffset"},
		{"heading offset low", func(c *Config) { c.HeadingOffset = -6 }, "headingOffset"},
		{"code language", func(c *Config) { c.CodeLanguage = "bogus" }, "codeLanguage"},
		{"language map", func(c *Config) { c.LanguageMap = map[string]string{"go": ""} }, "languageMap"},
		{"resolution mode", func(c *Config) { c.ResolutionMode = "invalid" }, "resolutionMode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := (Config{}).applyDefaults()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := New(Config{HeadingOffset: 10})
	require.Error(t, err)
}

func TestNewClonesLanguageMap(t *testing.T) {
	languages := map[string]string{"golang": "go"}
	conv := newTestConverter(t, Config{CodeLanguage: CodeLanguageClass, LanguageMap: languages})
	languages["golang"] = "changed"

	result, err := conv.Convert("```golang\nx\n```")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, `class="language-go"`)
}

func TestConfigSerializationExcludesHooks(t *testing.T) {
	cfg := (Config{
		ResolutionMode: ResolutionStrict,
		LinkHook: func(_ context.Context, _ LinkInput) (LinkOutput, error) {
			return LinkOutput{}, nil
		},
		ImageHook: func(_ context.Context, _ ImageInput) (ImageOutput, error) {
			return ImageOutput{}, nil
		},
	}).applyDefaults()

	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "resolutionMode")
	assert.NotContains(t, string(data), "LinkHook")
	assert.NotContains(t, string(data), "ImageHook")
}
