package game

import "github.com/decker502/laneracer/pkg/config"

// CarSelection 车辆目录上的循环下标
// 左右选择都会回绕，不存在越界
type CarSelection struct {
	cars  []config.CarEntry
	index int
}

// NewCarSelection 创建选车状态，cars 不能为空（由目录校验保证）
func NewCarSelection(cars []config.CarEntry) *CarSelection {
	return &CarSelection{cars: cars}
}

// Next 选择下一辆，末尾回到第一辆
func (s *CarSelection) Next() {
	s.index = (s.index + 1) % len(s.cars)
}

// Previous 选择上一辆，第一辆回到末尾
func (s *CarSelection) Previous() {
	s.index = (s.index - 1 + len(s.cars)) % len(s.cars)
}

// SetIndex 设置下标，任意整数都会归一化到有效范围
func (s *CarSelection) SetIndex(i int) {
	n := len(s.cars)
	s.index = ((i % n) + n) % n
}

// Index 当前下标
func (s *CarSelection) Index() int {
	return s.index
}

// Current 当前选中的车辆
func (s *CarSelection) Current() config.CarEntry {
	return s.cars[s.index]
}

// Len 可选车辆数
func (s *CarSelection) Len() int {
	return len(s.cars)
}
