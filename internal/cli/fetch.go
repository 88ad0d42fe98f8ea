package cli

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/vfetch/vfetch/internal/config"
	"github.com/vfetch/vfetch/internal/errors"
	"github.com/vfetch/vfetch/internal/logger"
	"github.com/vfetch/vfetch/internal/probe"
	"github.com/vfetch/vfetch/internal/render"
	"golang.org/x/term"
)

// fetchOptions carries the root command's flags.
type fetchOptions struct {
	ConfigPath string
	Backend    string // overrides the backend key when set
	ASCII      string // overrides asciiImage and turns art on when set
	NoASCII    bool
	NoColor    bool
}

// fetchCommand draws the panel on the real system.
func fetchCommand(w io.Writer, opts fetchOptions) error {
	log := logger.Default()
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		log.Debug("stdout is not a terminal, cursor escapes will be written verbatim")
	}
	if termenv.EnvNoColor() {
		opts.NoColor = true
	}
	_, err := runFetch(w, probe.System{}, opts, log)
	return err
}

// loadFetchConfig loads the config and applies flag overrides, then validates.
// Everything that can fail here fails before the screen is touched.
func loadFetchConfig(opts fetchOptions) (*config.Config, error) {
	cfg, path, err := config.LoadOrDefault(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if path != "" {
		logger.Default().Debug("using config %s", path)
	}

	if opts.ASCII != "" {
		cfg.DisplayAscii = true
		cfg.AsciiImage = config.ExpandTilde(opts.ASCII)
	}
	if opts.NoASCII {
		cfg.DisplayAscii = false
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readArt returns the art text, or "" when art is off.
func readArt(cfg *config.Config) (string, error) {
	if !cfg.DisplayAscii {
		return "", nil
	}
	data, err := os.ReadFile(cfg.AsciiImage)
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrASCII,
			"Can't read ascii image: "+cfg.AsciiImage,
			"Check asciiImage in your config, or run with --no-ascii")
	}
	return string(data), nil
}

// runFetch collects probe lines from src and draws the panel to w.
func runFetch(w io.Writer, src probe.Source, opts fetchOptions, log logger.Logger) (render.Position, error) {
	cfg, err := loadFetchConfig(opts)
	if err != nil {
		return render.Position{}, err
	}

	art, err := readArt(cfg)
	if err != nil {
		return render.Position{}, err
	}

	layout, err := cfg.Layout()
	if err != nil {
		return render.Position{}, errors.WrapWithCode(err, errors.ErrConfig, "Invalid layout settings", "")
	}
	layout.NoColor = opts.NoColor

	types, err := cfg.ProbeTypes()
	if err != nil {
		return render.Position{}, errors.WrapWithCode(err, errors.ErrConfig, "Invalid data entries", "")
	}

	backend, err := render.ParseBackend(cfg.Backend)
	if err != nil {
		return render.Position{}, errors.WrapWithCode(err, errors.ErrConfig, "Invalid backend", "")
	}

	lines := probe.Collect(types, src, cfg.ProbeOptions(), log)
	renderer := render.NewRenderer(render.NewCursor(backend, w), layout, log)
	return renderer.Render(render.Frame{
		Lines:   lines,
		Art:     art,
		ShowArt: cfg.DisplayAscii,
	})
}
