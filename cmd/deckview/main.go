package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"deckview/internal/config"
	"deckview/internal/deck"
	"deckview/internal/logging"
	"deckview/internal/trace"
	"deckview/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// options holds the parsed CLI flags.
type options struct {
	deck        string
	configPath  string
	noMouse     bool
	noAnimation bool
	plain       bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:   "deckview",
		Short: "Present a slide deck in the terminal",
		Long: `deckview shows a deck of slides one at a time.

Navigate with the arrow keys or space, click the prev/next controls,
or drag the mouse left or right to swipe. Press ? for help and q to quit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresent(cmd.Context(), opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.deck, "deck", "", `deck file (.yaml, .yml, .json) or "embedded:<name>"`)
	flags.StringVar(&opts.configPath, "config", "", "config file (default $DECKVIEW_CONFIG or ~/.config/deckview/config.yaml)")
	flags.BoolVar(&opts.verbose, "verbose", false, "log at debug level")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse clicks and swipes")
	root.Flags().BoolVar(&opts.noAnimation, "no-animation", false, "show slides without entrance animation")
	root.Flags().BoolVar(&opts.plain, "plain", false, "render slide content as plain text instead of markdown")

	root.AddCommand(newListCmd(&opts), newValidateCmd(&opts))
	return root
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	path := opts.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("config path: %w", err)
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if opts.deck != "" {
		cfg.Deck = opts.deck
	}
	if opts.noMouse {
		cfg.Mouse = false
	}
	if opts.noAnimation {
		cfg.Animation = false
	}
	if opts.plain {
		cfg.Markdown = false
	}
	return cfg, nil
}

func loadDeck(ctx context.Context, cfg *config.Config) (*deck.Deck, error) {
	d, err := deck.ProviderFor(cfg.Deck).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load deck: %w", err)
	}
	return d, nil
}

func runPresent(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, flush, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "deckview: logging disabled: %v\n", err)
		logger, flush = zap.NewNop(), func() {}
	}
	defer flush()

	d, err := loadDeck(ctx, cfg)
	if err != nil {
		return err
	}
	logger.Info("deck loaded", zap.String("title", d.Title()), zap.Int("slides", d.Len()))

	recorder, shutdown := startTracing(ctx, cfg, logger)
	defer shutdown()
	recorder.Start(ctx, d)
	defer recorder.End()
	if id := recorder.TraceID(); id != "" {
		logger.Info("tracing session", zap.String("trace_id", id))
	}

	var content ui.ContentRenderer = ui.PlainRenderer{}
	if cfg.Markdown {
		content = ui.NewMarkdownRenderer()
	}
	app, err := ui.NewAppModel(d, ui.Options{
		Animate:     cfg.Animation,
		Content:     content,
		CellWidthPx: cfg.CellWidthPx,
		Recorder:    recorder,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	progOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app.AsTeaModel(), progOpts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run presentation: %w", err)
	}
	logger.Info("presentation closed", zap.Int("last_index", app.ActiveIndex()))
	return nil
}

// startTracing returns a recorder and a shutdown func that ends the session
// and flushes the exporter. A setup failure is logged and tracing is skipped.
func startTracing(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*trace.Recorder, func()) {
	tp, err := trace.NewProvider(ctx, cfg.Tracing)
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
		tp = nil
	}
	if tp == nil {
		return trace.NewRecorder(nil), func() {}
	}
	return trace.NewRecorder(tp), func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(sctx); err != nil {
			logger.Warn("tracer shutdown", zap.Error(err))
		}
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(stderr, "deckview: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
