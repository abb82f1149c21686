package mdconverter

import (
	"context"
	"errors"
)

// ErrUnresolved indicates that a link or image reference could not be
// resolved by a hook.
var ErrUnresolved = errors.New("unresolved reference")

// ResolutionMode controls how unresolved hook results are handled.
type ResolutionMode string

const (
	ResolutionBestEffort ResolutionMode = "best_effort"
	ResolutionStrict     ResolutionMode = "strict"
)

// ConvertOptions carries optional per-conversion context.
type ConvertOptions struct {
	SourcePath string
}

// LinkHook can rewrite link destinations during conversion.
type LinkHook func(ctx context.Context, in LinkInput) (LinkOutput, error)

// ImageHook can rewrite image sources during conversion.
type ImageHook func(ctx context.Context, in ImageInput) (ImageOutput, error)

// LinkInput describes a markdown link being converted.
type LinkInput struct {
	SourcePath  string
	Destination string
	Text        string
}

// LinkOutput contains hook-provided link overrides.
type LinkOutput struct {
	Destination string
	Handled     bool
}

// ImageInput describes a markdown image being converted.
type ImageInput struct {
	SourcePath string
	Source     string
	Alt        string
}

// ImageOutput contains hook-provided image overrides.
type ImageOutput struct {
	Source  string
	Alt     string
	Handled bool
}
