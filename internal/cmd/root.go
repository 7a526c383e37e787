package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/fretsmart/internal/config"
	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/fretboard"
	"github.com/Iron-Ham/fretsmart/internal/logging"
	"github.com/Iron-Ham/fretsmart/internal/resolve"
	"github.com/Iron-Ham/fretsmart/internal/selection"
	"github.com/Iron-Ham/fretsmart/internal/styles"
	"github.com/Iron-Ham/fretsmart/internal/version"
	"github.com/Iron-Ham/fretsmart/internal/watch"
)

// app holds the state of one command line invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	logger  *logging.Logger
}

// Execute runs the root command
func Execute() error {
	root, a := newRootCmd()
	defer a.close()
	return root.Execute()
}

// NewRootCmd builds a fresh command tree with its own configuration state.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *app) {
	a := &app{v: viper.New(), logger: logging.NopLogger()}
	defaults := config.Default()

	rootCmd := &cobra.Command{
		Use:   "fretsmart [DATA_FILE]",
		Short: "Draw fretboard diagrams of scales and chords",
		Long: `fretsmart looks up an instrument, a tuning and a scale or chord in a
data file and draws every note from fret 0 to 24 on every string, with
the notes of the scale or chord marked.

DATA_FILE defaults to data.file from the configuration (data.txt).

Examples:
  # C major on a guitar in standard tuning
  fretsmart

  # A minor pentatonic
  fretsmart --highlight pentatonic --highlight-note A

  # Redraw whenever the data file changes
  fretsmart --watch ~/music/fretsmart.txt`,
		Args:              cobra.MaximumNArgs(1),
		Version:           version.String(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runRender,
	}
	rootCmd.SetVersionTemplate("fretsmart {{.Version}}\n")

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "", "config file (default is $HOME/.config/fretsmart/config.yaml)")
	pf.String("log-level", defaults.Logging.Level, "log level: debug, info, warn, error")
	_ = a.v.BindPFlag("logging.level", pf.Lookup("log-level"))

	// Selection flags
	f := rootCmd.Flags()
	sel := defaults.Selection
	f.String(selection.OptInstrument, sel.Instrument, "instrument to draw")
	f.String(selection.OptTuning, sel.Tuning, "tuning of the instrument")
	f.String(selection.OptTuningNote, sel.TuningNote, "root note of the tuning")
	f.String(selection.OptHighlightType, sel.HighlightType, "highlight type, e.g. S for scales or C for chords")
	f.String(selection.OptHighlight, sel.Highlight, "scale or chord to mark")
	f.String(selection.OptHighlightNote, sel.HighlightNote, "root note of the scale or chord")
	for _, opt := range selection.Options() {
		_ = a.v.BindPFlag(selectionKey(opt), f.Lookup(opt))
	}

	// Rendering flags
	f.String("style", defaults.Render.Style, "highlight style: auto, color, brackets, plain")
	f.Int("frets", defaults.Render.Frets, "highest fret to draw")
	f.Bool("strict", defaults.Data.StrictNumbers, "fail on malformed offsets and intervals instead of reading them as 0")
	f.Bool("watch", false, "redraw whenever the data file changes")
	_ = a.v.BindPFlag("render.style", f.Lookup("style"))
	_ = a.v.BindPFlag("render.frets", f.Lookup("frets"))
	_ = a.v.BindPFlag("data.strict_numbers", f.Lookup("strict"))

	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newUpdateCmd())
	rootCmd.AddCommand(a.newVersionCmd())
	rootCmd.AddCommand(a.newConfigCmd())

	return rootCmd, a
}

// selectionKey maps a selection option name to its config key.
func selectionKey(opt string) string {
	key := map[string]string{
		selection.OptInstrument:    "selection.instrument",
		selection.OptTuning:        "selection.tuning",
		selection.OptTuningNote:    "selection.tuning_note",
		selection.OptHighlightType: "selection.highlight_type",
		selection.OptHighlight:     "selection.highlight",
		selection.OptHighlightNote: "selection.highlight_note",
	}
	return key[opt]
}

// setupConfig prepares viper without reading a config file.
func (a *app) setupConfig(cmd *cobra.Command, args []string) error {
	config.Setup(a.v, a.cfgFile)
	return nil
}

// initConfig prepares viper and reads the config file, if any.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	config.Setup(a.v, a.cfgFile)
	if err := config.ReadConfigFile(a.v); err != nil {
		return errors.Wrap(err, "failed to read config file")
	}
	return nil
}

// load validates the configuration and opens the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if path := cfg.Logging.ResolveLogFile(); path != "" {
		logger, err := logging.NewLogger(path, cfg.Logging.Level, cfg.Logging.Format)
		if err != nil {
			return err
		}
		a.logger = logger
	} else {
		a.logger = logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	}

	a.logger.Debug("configuration loaded",
		"config_file", a.v.ConfigFileUsed(),
		"selection", cfg.Selection.String())
	return nil
}

func (a *app) close() {
	if a.logger != nil {
		_ = a.logger.Close()
	}
}

// dataFile returns the positional data file if given, else the configured one.
func (a *app) dataFile(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return config.ExpandHome(args[0])
	}
	return a.cfg.Data.ResolveDataFile()
}

func (a *app) runRender(cmd *cobra.Command, args []string) error {
	if err := a.load(cmd); err != nil {
		return err
	}

	path := a.dataFile(args)
	mode, err := styles.ParseMode(a.cfg.Render.Style)
	if err != nil {
		return err
	}
	st := styles.New(mode, a.cfg.Render.HighlightColor, cmd.OutOrStdout())

	watchMode, _ := cmd.Flags().GetBool("watch")
	if watchMode {
		return a.watch(cmd, path, st)
	}
	return a.render(cmd.OutOrStdout(), path, st)
}

// render draws the fretboard for the configured selection from path.
func (a *app) render(w io.Writer, path string, st *styles.Styles) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "failed to open data file")
	}
	defer func() { _ = f.Close() }()

	res, err := resolve.New(a.logger).Resolve(f, path, a.cfg.Selection)
	if err != nil {
		return err
	}

	board, err := fretboard.Compute(res, fretboard.Options{
		Frets:         a.cfg.Render.Frets,
		StrictNumbers: a.cfg.Data.StrictNumbers,
		Logger:        a.logger,
	})
	if err != nil {
		return err
	}

	return fretboard.Render(w, board, st)
}

// watch draws once, then redraws after every change to path until the
// command's context is cancelled or the process is interrupted. Drawing
// errors are reported without stopping the watch.
func (a *app) watch(cmd *cobra.Command, path string, st *styles.Styles) error {
	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()

	w, err := watch.New(path, a.logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	draw := func() {
		if err := a.render(out, path, st); err != nil {
			fmt.Fprintf(errOut, "Error: %v\n", err)
		}
	}

	draw()
	return w.Run(ctx, func() {
		fmt.Fprintln(out)
		draw()
	})
}
