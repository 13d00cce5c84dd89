// Package cli implements draftctl, the command line client that runs the
// recommendation engine in process against a hero source.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/okian/draftsensei/internal/adapters/repository"
	"github.com/okian/draftsensei/internal/config"
	"github.com/okian/draftsensei/internal/domain/catalog"
	"github.com/okian/draftsensei/internal/domain/engine"
	"github.com/okian/draftsensei/pkg/logger"
)

// Color modes accepted by --color.
const (
	colorAuto = "auto"
	colorOn   = "on"
	colorOff  = "off"
)

// ErrUsage marks invalid flag values.
var ErrUsage = errors.New("usage")

// options are the persistent flags shared by every command.
type options struct {
	configPath  string
	source      string
	sourcePath  string
	sessionFile string
	color       string
	verbose     bool
	asJSON      bool

	cfg *config.Config
	pal palette
}

// NewRootCommand builds the draftctl command tree writing to out.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "draftctl",
		Short:         "Hero pick and ban recommendations from the command line",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd.Context(), out)
		},
	}
	root.SetOut(out)

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", os.Getenv(config.EnvConfig), "config file (yaml or toml)")
	pf.StringVar(&opts.source, "source", "", "hero source kind: yaml or sqlite (overrides config)")
	pf.StringVar(&opts.sourcePath, "source-path", "", "hero source path (overrides config)")
	pf.StringVar(&opts.sessionFile, "session-file", "", "file keeping recommendation history between runs")
	pf.StringVar(&opts.color, "color", colorAuto, "colorize output (auto|on|off)")
	pf.BoolVar(&opts.verbose, "verbose", false, "log catalog loading")
	pf.BoolVar(&opts.asJSON, "json", false, "print JSON instead of tables")

	root.AddCommand(
		newSuggestCommand(opts),
		newBansCommand(opts),
		newAnalyzeCommand(opts),
		newHeroesCommand(opts),
		newImportCommand(opts),
		newSessionCommand(opts),
		newVersionCommand(opts),
	)
	return root
}

// setup loads config, applies flag overrides and prepares logging and colors.
func (o *options) setup(ctx context.Context, out io.Writer) error {
	switch o.color {
	case colorAuto, colorOn, colorOff:
	default:
		return fmt.Errorf("%w: --color must be auto, on or off, got %q", ErrUsage, o.color)
	}
	o.pal = newPalette(o.color == colorOn || o.color == colorAuto && isTerminal(out))

	if err := logger.Init(); err != nil {
		return err
	}
	level := "warn"
	if o.verbose {
		level = "info"
	}
	_ = logger.SetLevelString(level)

	cfg, err := config.LoadFile(ctx, o.configPath)
	if err != nil {
		return err
	}
	if o.source != "" {
		cfg.HeroSource = o.source
	}
	if o.sourcePath != "" {
		cfg.HeroSourcePath = o.sourcePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}

// engine reads the configured hero source and builds an engine from it.
func (o *options) engine(ctx context.Context) (*engine.Engine, error) {
	src, err := repository.Open(ctx, o.cfg.HeroSource, o.cfg.HeroSourcePath)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	records, err := src.Heroes(ctx)
	if err != nil {
		return nil, err
	}
	c := catalog.New(records)
	for _, r := range c.Rejected() {
		logger.Get().Warn(ctx, "hero record rejected", logger.String("hero", r.Name), logger.Error(r.Err))
	}
	logger.Get().Info(ctx, "hero catalog loaded",
		logger.String("source", o.cfg.HeroSource),
		logger.String("path", o.cfg.HeroSourcePath),
		logger.Int("heroes", c.Len()))

	tun, err := o.cfg.Tuning()
	if err != nil {
		return nil, err
	}
	return engine.New(c, engine.WithTuning(tun))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
