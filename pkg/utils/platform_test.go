//go:build !mobile

package utils

import "testing"

// TestIsMobile_Desktop 测试桌面端编译时 IsMobile() 默认返回 false，环境变量可强制开启
func TestIsMobile_Desktop(t *testing.T) {
	t.Setenv("RACER_MOBILE_EMULATE", "")
	if IsMobile() {
		t.Error("IsMobile() should return false on desktop")
	}

	t.Setenv("RACER_MOBILE_EMULATE", "1")
	if !IsMobile() {
		t.Error("IsMobile() should honour RACER_MOBILE_EMULATE=1")
	}
}
