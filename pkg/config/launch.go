package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultLaunchFile 默认启动配置文件名（位于工作目录）
const DefaultLaunchFile = "racer.hcl"

// LaunchConfig 启动配置（HCL）
//
// 示例:
//
//	launch {
//	  seed        = 1234
//	  log_level   = "debug"
//	  start_car   = "Audi"
//	  tuning_file = "tuning.yaml"
//	}
type LaunchConfig struct {
	Launch LaunchSettings `hcl:"launch,block"`
}

// LaunchSettings 启动参数，命令行参数优先级高于此处
type LaunchSettings struct {
	Seed       *int64 `hcl:"seed,optional"`        // 为空时使用时间种子
	LogLevel   string `hcl:"log_level,optional"`   // debug | info | warn | error
	LogFile    string `hcl:"log_file,optional"`    // 为空时输出到 stderr
	StartCar   string `hcl:"start_car,optional"`   // 菜单初始选中的车辆名称
	Fullscreen bool   `hcl:"fullscreen,optional"`  // 启动时全屏
	TuningFile string `hcl:"tuning_file,optional"` // 覆盖内置 data/tuning.yaml
}

// DefaultLaunchConfig 返回默认启动配置
func DefaultLaunchConfig() *LaunchConfig {
	return &LaunchConfig{
		Launch: LaunchSettings{
			LogLevel: "info",
		},
	}
}

// LoadLaunchConfig 从 HCL 文件加载启动配置
// 文件不存在时返回默认配置
func LoadLaunchConfig(filename string) (*LaunchConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultLaunchConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg LaunchConfig
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Launch.LogLevel == "" {
		cfg.Launch.LogLevel = "info"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 验证启动配置
func (c *LaunchConfig) Validate() error {
	switch strings.ToLower(c.Launch.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %s", c.Launch.LogLevel)
	}
	return nil
}
