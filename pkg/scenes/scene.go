// Package scenes 实现 Ebitengine 前端的菜单和比赛画面
package scenes

import (
	"github.com/decker502/laneracer/pkg/game"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

var (
	_ Scene         = (*MenuScene)(nil)
	_ Scene         = (*RaceScene)(nil)
	_ game.Saveable = (*MenuScene)(nil)
)
