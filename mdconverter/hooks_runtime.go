package mdconverter

import (
	"errors"
	"fmt"
	"strings"
)

func (s *state) applyLinkHook(input LinkInput) (LinkOutput, bool, error) {
	if s.config.LinkHook == nil {
		return LinkOutput{}, false, nil
	}

	if err := s.checkContext(); err != nil {
		return LinkOutput{}, false, err
	}

	output, err := s.config.LinkHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			if s.config.ResolutionMode == ResolutionStrict {
				return LinkOutput{}, false, fmt.Errorf("unresolved link destination %q: %w", input.Destination, err)
			}
			s.addWarning(
				WarningUnresolvedReference,
				"link",
				fmt.Sprintf("unresolved link destination %q; keeping original", input.Destination),
			)
			return LinkOutput{}, false, nil
		}
		return LinkOutput{}, false, fmt.Errorf("link hook failed: %w", err)
	}

	if !output.Handled {
		return LinkOutput{}, false, nil
	}

	output.Destination = strings.TrimSpace(output.Destination)
	if output.Destination == "" {
		return LinkOutput{}, false, errors.New("invalid link hook output: handled link requires non-empty destination")
	}

	return output, true, nil
}

func (s *state) applyImageHook(input ImageInput) (ImageOutput, bool, error) {
	if s.config.ImageHook == nil {
		return ImageOutput{}, false, nil
	}

	if err := s.checkContext(); err != nil {
		return ImageOutput{}, false, err
	}

	output, err := s.config.ImageHook(s.ctx, input)
	if err != nil {
		if errors.Is(err, ErrUnresolved) {
			if s.config.ResolutionMode == ResolutionStrict {
				return ImageOutput{}, false, fmt.Errorf("unresolved image source %q: %w", input.Source, err)
			}
			s.addWarning(
				WarningUnresolvedReference,
				"image",
				fmt.Sprintf("unresolved image source %q; keeping original", input.Source),
			)
			return ImageOutput{}, false, nil
		}
		return ImageOutput{}, false, fmt.Errorf("image hook failed: %w", err)
	}

	if !output.Handled {
		return ImageOutput{}, false, nil
	}

	output.Source = strings.TrimSpace(output.Source)
	if output.Source == "" {
		return ImageOutput{}, false, errors.New("invalid image hook output: handled image requires non-empty source")
	}

	return output, true, nil
}
