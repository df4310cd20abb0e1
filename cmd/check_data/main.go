// check_data 校验调参和资源目录文件
//
// 用法:
//
//	go run ./cmd/check_data
//	go run ./cmd/check_data --tuning my_tuning.yaml --launch racer.hcl
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/decker502/laneracer/pkg/config"
)

var CLI struct {
	Tuning  string `long:"tuning" default:"data/tuning.yaml" help:"Tuning YAML to validate"`
	Catalog string `long:"catalog" default:"data/catalog.yaml" help:"Catalog YAML to validate"`
	Launch  string `long:"launch" help:"Optional HCL launch profile to validate"`
}

func main() {
	kong.Parse(&CLI, kong.Name("check_data"), kong.Description("Validate Lane Racer data files."))

	failed := false

	tuning, err := config.LoadTuning(CLI.Tuning)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", CLI.Tuning, err)
		failed = true
	} else {
		fmt.Printf("✅ %s\n", CLI.Tuning)
		fmt.Printf("   赛道 [%.0f, %.0f]，车辆 %.0fx%.0f，初始生命 %d\n",
			tuning.TrackLeft(), tuning.TrackRight(), tuning.Car.Width, tuning.Car.Height, tuning.Car.StartLives)
		fmt.Printf("   障碍物概率 %.3f/tick（上限 %d），道具概率 %.3f/tick\n",
			tuning.Obstacle.SpawnChance, tuning.Obstacle.MaxActive, tuning.PowerUp.SpawnChance)
	}

	catalog, err := config.LoadCatalog(CLI.Catalog)
	if err != nil {
		fmt.Printf("❌ %s: %v\n", CLI.Catalog, err)
		failed = true
	} else {
		fmt.Printf("✅ %s\n", CLI.Catalog)
		fmt.Printf("   车辆 %d 辆，障碍物贴图 %d 种，贴图样式 %d 个\n",
			len(catalog.Cars), len(catalog.ObstacleSprites), len(catalog.Sprites))
		for _, car := range catalog.Cars {
			fmt.Printf("   - %-12s speed=%.0f sprite=%s\n", car.Name, car.Speed, car.Sprite)
		}
	}

	if CLI.Launch != "" {
		launch, err := config.LoadLaunchConfig(CLI.Launch)
		switch {
		case err != nil:
			fmt.Printf("❌ %s: %v\n", CLI.Launch, err)
			failed = true
		case catalog != nil && launch.Launch.StartCar != "" && catalog.CarIndex(launch.Launch.StartCar) < 0:
			fmt.Printf("❌ %s: start_car %q is not in the catalog\n", CLI.Launch, launch.Launch.StartCar)
			failed = true
		default:
			fmt.Printf("✅ %s\n", CLI.Launch)
		}
	}

	if failed {
		os.Exit(1)
	}
}
