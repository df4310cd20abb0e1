package systems

// SoundPlayer 音效输出（即发即忘）
// 返回值仅供日志使用，播放失败绝不能影响模拟
type SoundPlayer interface {
	PlaySound(soundID string) bool
}

// NopSoundPlayer 静音实现，用于测试和无音频的前端
type NopSoundPlayer struct{}

// PlaySound 不做任何事
func (NopSoundPlayer) PlaySound(string) bool { return false }
