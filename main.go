package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/ytget/sort-visualizer/internal/config"
	"github.com/ytget/sort-visualizer/internal/generate"
	"github.com/ytget/sort-visualizer/internal/logging"
	"github.com/ytget/sort-visualizer/internal/metrics"
	"github.com/ytget/sort-visualizer/internal/session"
	"github.com/ytget/sort-visualizer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.sort-visualizer"
	AppName = "Sort Visualizer"
)

var (
	configFlag = cli.StringFlag{
		Name:  "config, c",
		Usage: "path to the YAML configuration file",
	}
	seedFlag = cli.Uint64Flag{
		Name:  "seed",
		Usage: "seed for reproducible sequences (0 picks a random one)",
	}
	paceFlag = cli.DurationFlag{
		Name:  "pace",
		Usage: "delay between two animated swaps, overrides the stored setting",
	}
	logLevelFlag = cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
	}
	debugFlag = cli.BoolFlag{
		Name:  "debug, d",
		Usage: "enable debug logging (LOTS of output, overrides log-level)",
	}
	metricsFlag = cli.StringFlag{
		Name:  "metrics",
		Usage: "serve Prometheus metrics on this address (disabled when empty)",
	}
)

func main() {
	ctl := newApp()

	if err := ctl.Run(os.Args); err != nil {
		fmt.Fprintln(ctl.ErrWriter, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	ctl := cli.NewApp()
	ctl.Name = "sort-visualizer"
	ctl.Version = version
	ctl.Usage = "Visualize an iterative partition sort over random numbers"
	ctl.ErrWriter = os.Stdout
	ctl.Flags = []cli.Flag{configFlag, seedFlag, paceFlag, logLevelFlag, debugFlag, metricsFlag}
	ctl.Action = run
	return ctl
}

// loadConfig reads the configuration file and applies the command line overrides
func loadConfig(ctx *cli.Context) (config.File, error) {
	cfg, err := config.LoadFile(ctx.String("config"))
	if err != nil {
		return config.File{}, err
	}

	if ctx.IsSet("log-level") {
		cfg.LogLevel = ctx.String("log-level")
	}
	if ctx.IsSet("seed") {
		cfg.Seed = ctx.Uint64("seed")
	}
	if ctx.IsSet("pace") {
		pace := ctx.Duration("pace")
		cfg.Pace = &pace
	}
	if ctx.IsSet("metrics") {
		cfg.Metrics.Address = ctx.String("metrics")
		cfg.Metrics.Enabled = cfg.Metrics.Address != ""
	}

	if err := cfg.Validate(); err != nil {
		return config.File{}, err
	}
	return cfg, nil
}

func run(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	log, _, err := logging.New(cfg.LogLevel, ctx.Bool("debug"))
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting", zap.String("name", AppName), zap.String("version", version))

	metricsSvc := metrics.NewService(cfg.MetricsAddress(), log)
	go metricsSvc.Start()
	defer metricsSvc.ShutDown()

	var gen *generate.Generator
	if cfg.Seed != 0 {
		gen = generate.NewSeeded(cfg.Seed)
	} else {
		gen = generate.NewRandom()
	}
	svc := session.NewService(gen, log, metrics.NewCollector())

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	ui.NewRootUI(myWindow, myApp, svc, log)

	// Command line or file pace wins over the stored setting for this run
	if cfg.Pace != nil {
		svc.SetPace(*cfg.Pace)
	}

	myWindow.ShowAndRun()
	log.Info("shutting down")
	return nil
}
