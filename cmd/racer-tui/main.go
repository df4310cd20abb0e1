// racer-tui 在终端里运行 Lane Racer
//
// 与图形版共用同一个 GameState，只替换输入和绘制。
// 终端被 Bubble Tea 占用，日志写入文件。
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/decker502/laneracer/internal/randutil"
	"github.com/decker502/laneracer/internal/tui"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/game"
)

var CLI struct {
	Config   string `short:"c" long:"config" default:"racer.hcl" help:"Path to HCL launch profile"`
	Data     string `long:"data" default:"." help:"Directory containing data/tuning.yaml and data/catalog.yaml"`
	LogLevel string `short:"l" long:"log-level" help:"Log level (overrides config)"`
	LogFile  string `long:"log-file" default:"racer-tui.log" help:"Log file path"`
	Seed     *int64 `long:"seed" help:"Random seed for a reproducible run (overrides config)"`
	Car      string `long:"car" help:"Car selected in the menu at startup (overrides config)"`
	NoColor  bool   `long:"no-color" help:"Disable colours"`
	Cols     int    `long:"cols" default:"40" help:"Track grid width in cells"`
	Rows     int    `long:"rows" default:"30" help:"Track grid height in cells"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("racer-tui"),
		kong.Description("Lane Racer in the terminal."),
	)

	launch, err := config.LoadLaunchConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	settings := launch.Launch
	if CLI.LogLevel != "" {
		settings.LogLevel = CLI.LogLevel
	}
	if CLI.Seed != nil {
		settings.Seed = CLI.Seed
	}
	if CLI.Car != "" {
		settings.StartCar = CLI.Car
	}

	logFile, err := os.OpenFile(CLI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		ctx.Exit(1)
	}
	defer func() { _ = logFile.Close() }()

	logger := log.New(logFile)
	if level, err := log.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	if CLI.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	dataFS := os.DirFS(CLI.Data)
	bundle, err := config.LoadBundle(context.Background(), func(path string) ([]byte, error) {
		return fs.ReadFile(dataFS, path)
	}, settings.TuningFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load data: %v\n", err)
		ctx.Exit(1)
	}

	seed := randutil.Seed()
	if settings.Seed != nil {
		seed = *settings.Seed
	}
	logger.Info("starting", "seed", seed, "cars", len(bundle.Catalog.Cars))

	gs, err := game.NewGameState(game.Context{
		Tuning:  bundle.Tuning,
		Catalog: bundle.Catalog,
		Rand:    randutil.New(seed),
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		ctx.Exit(1)
	}

	if settings.StartCar != "" {
		if idx := bundle.Catalog.CarIndex(settings.StartCar); idx >= 0 {
			gs.SelectCar(idx)
		} else {
			logger.Warn("unknown start car", "car", settings.StartCar)
		}
	}

	model := tui.New(gs, tui.Options{Cols: CLI.Cols, Rows: CLI.Rows, Logger: logger})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		ctx.Exit(1)
	}
}
