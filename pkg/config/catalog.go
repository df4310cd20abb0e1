package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// 道具贴图映射中必须出现的键（与 components.PowerUpKind.String() 对应）
var requiredPowerUpSprites = []string{"shield", "speed", "life"}

// Catalog 静态资源目录
//
// 包含可选车辆列表、障碍物贴图列表、道具贴图映射以及所有贴图的绘制样式。
// 核心逻辑只把贴图 ID 当作不透明字符串。
//
// 配置文件位置: data/catalog.yaml
type Catalog struct {
	Cars            []CarEntry             `yaml:"cars"`
	ObstacleSprites []string               `yaml:"obstacleSprites"`
	PowerUpSprites  map[string]string      `yaml:"powerUpSprites"` // 道具类型 -> 贴图 ID
	Sprites         map[string]SpriteStyle `yaml:"sprites"`        // 贴图 ID -> 样式
}

// CarEntry 车辆目录条目
type CarEntry struct {
	Name   string  `yaml:"name"`
	Sprite string  `yaml:"sprite"`
	Speed  float64 `yaml:"speed"` // 基础横向速度（像素/tick）
}

// SpriteStyle 程序化贴图样式
type SpriteStyle struct {
	Shape  string `yaml:"shape"`  // car | box | disc | bolt | heart
	Color  string `yaml:"color"`  // "#rrggbb" 或 CSS 颜色名（如 "crimson"）
	Accent string `yaml:"accent"` // 可选，细节颜色
}

// 支持的贴图形状
const (
	ShapeCar   = "car"
	ShapeBox   = "box"
	ShapeDisc  = "disc"
	ShapeBolt  = "bolt"
	ShapeHeart = "heart"
)

// LoadCatalog 从 YAML 文件加载资源目录
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog 解析 YAML 资源目录
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog YAML: %w", err)
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog config: %w", err)
	}

	return &catalog, nil
}

// CarIndex 按名称查找车辆（大小写不敏感），找不到返回 -1
func (c *Catalog) CarIndex(name string) int {
	for i, car := range c.Cars {
		if strings.EqualFold(car.Name, name) {
			return i
		}
	}
	return -1
}

// validateCatalog 验证目录的有效性
func validateCatalog(c *Catalog) error {
	if len(c.Cars) == 0 {
		return fmt.Errorf("cars cannot be empty")
	}
	for i, car := range c.Cars {
		if car.Name == "" {
			return fmt.Errorf("cars[%d].name cannot be empty", i)
		}
		if car.Speed <= 0 {
			return fmt.Errorf("cars[%d].speed must be > 0, got %v", i, car.Speed)
		}
		if err := c.checkSprite(car.Sprite); err != nil {
			return fmt.Errorf("cars[%d]: %w", i, err)
		}
	}

	if len(c.ObstacleSprites) == 0 {
		return fmt.Errorf("obstacleSprites cannot be empty")
	}
	for i, id := range c.ObstacleSprites {
		if err := c.checkSprite(id); err != nil {
			return fmt.Errorf("obstacleSprites[%d]: %w", i, err)
		}
	}

	for _, kind := range requiredPowerUpSprites {
		id, ok := c.PowerUpSprites[kind]
		if !ok {
			return fmt.Errorf("powerUpSprites missing entry for %q", kind)
		}
		if err := c.checkSprite(id); err != nil {
			return fmt.Errorf("powerUpSprites[%s]: %w", kind, err)
		}
	}

	for id, style := range c.Sprites {
		switch style.Shape {
		case ShapeCar, ShapeBox, ShapeDisc, ShapeBolt, ShapeHeart:
		default:
			return fmt.Errorf("sprite %q has unknown shape %q", id, style.Shape)
		}
		if _, err := ParseColor(style.Color); err != nil {
			return fmt.Errorf("sprite %q color: %w", id, err)
		}
		if style.Accent != "" {
			if _, err := ParseColor(style.Accent); err != nil {
				return fmt.Errorf("sprite %q accent: %w", id, err)
			}
		}
	}

	return nil
}

func (c *Catalog) checkSprite(id string) error {
	if id == "" {
		return fmt.Errorf("sprite id cannot be empty")
	}
	if _, ok := c.Sprites[id]; !ok {
		return fmt.Errorf("sprite %q is not defined in sprites", id)
	}
	return nil
}

// ParseColor 解析 "#rrggbb" 或 CSS 颜色名
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if named, ok := colornames.Map[s]; ok {
		return named, nil
	}
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("unrecognized color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unrecognized color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
