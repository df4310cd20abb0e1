package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/laneracer/pkg/app"
	"github.com/decker502/laneracer/pkg/config"
	"github.com/decker502/laneracer/pkg/embedded"
)

var CLI struct {
	Config     string `short:"c" long:"config" default:"racer.hcl" help:"Path to HCL launch profile"`
	Verbose    bool   `short:"v" help:"Enable debug logging"`
	LogLevel   string `short:"l" long:"log-level" help:"Log level (overrides config)"`
	LogFile    string `long:"log-file" help:"Log file path (overrides config)"`
	Seed       *int64 `long:"seed" help:"Random seed for a reproducible run (overrides config)"`
	Car        string `long:"car" help:"Car selected in the menu at startup (overrides config)"`
	Fullscreen bool   `short:"f" long:"fullscreen" help:"Start in fullscreen"`
	Tuning     string `long:"tuning" help:"Tuning YAML replacing the built-in data/tuning.yaml"`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("laneracer"),
		kong.Description("Dodge the traffic, grab power-ups, survive."),
	)

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	launch, err := config.LoadLaunchConfig(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		ctx.Exit(1)
	}
	settings := launch.Launch

	// 命令行参数优先
	if CLI.LogLevel != "" {
		settings.LogLevel = CLI.LogLevel
	}
	if CLI.LogFile != "" {
		settings.LogFile = CLI.LogFile
	}
	if CLI.Seed != nil {
		settings.Seed = CLI.Seed
	}
	if CLI.Car != "" {
		settings.StartCar = CLI.Car
	}
	if CLI.Tuning != "" {
		settings.TuningFile = CLI.Tuning
	}

	var logOutput io.Writer = os.Stderr
	if settings.LogFile != "" {
		logFile, err := os.OpenFile(settings.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			ctx.Exit(1)
		}
		defer func() { _ = logFile.Close() }()
		logOutput = logFile
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    CLI.Verbose,
		LogLevel:   settings.LogLevel,
		LogOutput:  logOutput,
		Seed:       settings.Seed,
		StartCar:   settings.StartCar,
		Fullscreen: CLI.Fullscreen || settings.Fullscreen,
		TuningFile: settings.TuningFile,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		ctx.Exit(1)
	}

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle("Lane Racer")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "游戏运行错误: %v\n", err)
		ctx.Exit(1)
	}
}
