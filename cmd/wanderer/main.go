package main

import (
	"fmt"
	"os"

	"github.com/san-kum/wanderer/internal/config"
	"github.com/san-kum/wanderer/internal/observability"
	"github.com/san-kum/wanderer/internal/physics"
	"github.com/san-kum/wanderer/internal/viz"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dataDir    string
	logLevel   string
	logFormat  string
	logFile    string
	configFile string
	preset     string
	runSeed    int64
	liveSeed   int64
	firstSeed  int64
	ticks      int
	width      float64
	height     float64
	moverSize  float64
	pointer    string
	boundary   string
	start      string
	baseSpeed  float64
	frameRate  int
	debug      bool
	scale      float64
	liveSize   float64
	ensembleN  int
	fields     []string
	outPath    string
	noSave     bool

	log = zap.NewNop()
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		observability.Sync()
		os.Exit(1)
	}
	observability.Sync()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wanderer",
		Short: "a mover that wanders its container and shies away from the pointer",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = observability.Initialize(loggerConfig())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunMenu(liveOptions(""))
		},
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".wanderer", "data directory")
	pf.StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	pf.StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	pf.StringVar(&logFile, "log-file", "", "also log to this rotating file")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless, seeded simulation and record it",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	addMoverFlags(runCmd)
	addStageFlags(runCmd)
	runCmd.Flags().IntVar(&ticks, "ticks", 600, "ticks to simulate after placement")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "random seed")
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "print the summary without recording the run")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the mover in the terminal; the mouse is the pointer",
		Args:  cobra.NoArgs,
		RunE:  runLive,
	}
	addMoverFlags(liveCmd)
	liveCmd.Flags().Float64Var(&liveSize, "size", 24, "mover size in pixels")
	liveCmd.Flags().Float64Var(&scale, "scale", 4, "container pixels per braille dot")
	liveCmd.Flags().Int64Var(&liveSeed, "seed", 0, "random seed (0 for a random run)")

	ensembleCmd := &cobra.Command{
		Use:   "ensemble",
		Short: "run the same configuration over consecutive seeds in parallel",
		Args:  cobra.NoArgs,
		RunE:  runEnsemble,
	}
	addMoverFlags(ensembleCmd)
	addStageFlags(ensembleCmd)
	ensembleCmd.Flags().IntVar(&ticks, "ticks", 600, "ticks per run")
	ensembleCmd.Flags().Int64Var(&firstSeed, "seed", 1, "first seed")
	ensembleCmd.Flags().IntVarP(&ensembleN, "runs", "n", 8, "number of runs")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot columns of a recorded trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSliceVar(&fields, "fields", []string{"x", "y", "speed"}, "trace columns to plot")

	statsCmd := &cobra.Command{
		Use:   "stats [run_id]",
		Short: "summarize a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE:  statsRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a recorded run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	exportCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id]",
		Short: "draw the trajectory of a recorded run as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default <run_id>.svg)")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list presets, or print one as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  showPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, ensembleCmd, listCmd, plotCmd, statsCmd, exportCmd, exportSVGCmd, presetsCmd, newConfigCmd())
	return rootCmd
}

// addMoverFlags registers the flags that shape the mover's configuration.
func addMoverFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&preset, "preset", "default", "preset configuration")
	f.StringVar(&configFile, "config", "", "yaml file overlaid on the preset")
	f.StringVar(&boundary, "boundary", "", "boundary behavior (bounce, wrap, stop, reverse)")
	f.StringVar(&start, "start", "", "start position (random, center or x,y)")
	f.Float64Var(&baseSpeed, "speed", config.DefaultBaseSpeed, "base speed in pixels per tick")
	f.IntVar(&frameRate, "fps", config.DefaultFrameRate, "ticks per second")
	f.BoolVar(&debug, "debug", false, "log every committed position (raises --log-level to debug unless set)")
}

func addStageFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&width, "width", config.DefaultContainerWidth, "container width in pixels")
	f.Float64Var(&height, "height", config.DefaultContainerHeight, "container height in pixels")
	f.Float64Var(&moverSize, "size", config.DefaultMoverSize, "mover size in pixels")
	f.StringVar(&pointer, "pointer", "none", "pointer script (none, center, orbit, sweep or x,y)")
}

func loggerConfig() config.LoggerConfig {
	cfg := config.DefaultLogger()
	cfg.Level, cfg.Format, cfg.File = logLevel, logFormat, logFile
	return cfg
}

// loadConfig layers the preset, the config file and explicit flags, in that
// order.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	p := config.GetPreset(preset)
	if p == nil {
		return config.Config{}, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
	}
	cfg := *p

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := config.Overlay(&cfg, data); err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %s: %w", configFile, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("boundary") {
		b, err := physics.ParseEdgeBehavior(boundary)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Behavior.BoundaryBehavior = b
	}
	if flags.Changed("start") {
		sp, err := physics.ParseStartPosition(start)
		if err != nil {
			return config.Config{}, err
		}
		cfg.Behavior.StartPosition = sp
	}
	if flags.Changed("speed") {
		cfg.Movement.BaseSpeed = baseSpeed
	}
	if flags.Changed("fps") {
		cfg.Advanced.FrameRate = frameRate
	}
	if flags.Changed("debug") {
		cfg.Advanced.EnableDebug = debug
	}

	resolved, err := cfg.Resolve()
	if err != nil {
		return config.Config{}, err
	}
	if resolved.Advanced.EnableDebug && !flags.Changed("log-level") {
		raiseToDebug()
	}
	return resolved, nil
}

// raiseToDebug reinstalls the process logger at debug level so per-tick
// position traces are visible.
func raiseToDebug() {
	logLevel = "debug"
	log = observability.Initialize(loggerConfig())
}

func liveOptions(presetName string) viz.Options {
	opts := viz.DefaultOptions()
	if presetName != "" {
		opts.Preset = presetName
	}
	if scale > 0 {
		opts.Scale = scale
	}
	if liveSize > 0 {
		opts.MoverSize = liveSize
	}
	opts.Seed = liveSeed
	// the terminal belongs to the view, so only the log file is written
	opts.Logger = observability.New(loggerConfig(), nil)
	return opts
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg, liveOptions(preset))
}
