package config

import (
	"fmt"
	"strings"

	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/render"
	"github.com/vfetch/vfetch/internal/util"
)

// Validate checks the config for errors and returns structured error messages.
// It runs before anything is drawn so a bad config never leaves a cleared screen.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New(errors.ErrConfig,
			"Config is nil",
			"This is unexpected - try reloading the configuration.")
	}

	if _, err := render.ParseAlignMode(cfg.AlignMode); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a valid alignMode", cfg.AlignMode),
			withSuggestion(cfg.AlignMode, []string{string(render.AlignSpaces), string(render.AlignCenter)},
				"Use \"spaces\" or \"center\"."))
	}

	if cfg.AlignSpace < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("alignSpace can't be negative (got %d)", cfg.AlignSpace),
			"Use 0 or more.")
	}

	if _, err := render.ParseColor(cfg.ColorIndex); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("colorIndex %d is out of range", cfg.ColorIndex),
			fmt.Sprintf("Pick 0-7 for regular colors or 8-%d for bright ones.", render.PaletteSize-1))
	}

	if err := validateOffset(cfg.Offset); err != nil {
		return err
	}

	for _, name := range cfg.Data {
		if _, err := probe.ParseType(name); err != nil {
			return errors.WrapWithCode(err, errors.ErrConfig,
				fmt.Sprintf("Unknown entry '%s' in data", name),
				withSuggestion(name, probe.TypeNames(),
					"Known entries: "+strings.Join(probe.TypeNames(), ", ")))
		}
	}

	if cfg.DisplayAscii && strings.TrimSpace(cfg.AsciiImage) == "" {
		return errors.New(errors.ErrConfig,
			"displayAscii is on but asciiImage is empty",
			"Set asciiImage to the path of an art file, or turn displayAscii off.")
	}

	if _, err := render.ParseBackend(cfg.Backend); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("'%s' isn't a valid backend", cfg.Backend),
			"Use \"ansi\" or \"termenv\".")
	}

	return nil
}

func validateOffset(offset []int) error {
	if len(offset) != 2 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("offset needs exactly two numbers, got %d", len(offset)),
			"Write it as [x, y], e.g. [0, 0].")
	}
	if offset[0] < 0 || offset[1] < 0 {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("offset [%d, %d] has a negative coordinate", offset[0], offset[1]),
			"Both coordinates must be 0 or more.")
	}
	return nil
}

// withSuggestion prefixes hint with a "did you mean" line when value is a
// near miss of one of the known names.
func withSuggestion(value string, known []string, hint string) string {
	similar := util.SuggestSimilar(value, known, 1)
	if len(similar) == 0 {
		return hint
	}
	return fmt.Sprintf("Did you mean '%s'? %s", similar[0], hint)
}
