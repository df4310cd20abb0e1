package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 统一管理游戏中所有音效的播放
//   - 实现音量控制（从 SettingsManager 读取设置）
//   - 通过音效ID播放，实现 systems.SoundPlayer
//
// 播放失败只记录日志，绝不影响模拟。
type AudioManager struct {
	resourceManager *ResourceManager         // 资源管理器（用于创建播放器）
	settingsManager *SettingsManager         // 设置管理器（用于读取音量设置，可为 nil）
	soundPlayers    map[string]*audio.Player // 音效播放器缓存（音效ID -> 播放器）
	missing         map[string]bool          // 已确认无法加载的音效，避免每次重试和刷屏
	logger          *log.Logger
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（提供音频上下文和音效 PCM）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
//   - logger: 日志，可为 nil
func NewAudioManager(rm *ResourceManager, sm *SettingsManager, logger *log.Logger) *AudioManager {
	if logger == nil {
		logger = log.Default()
	}
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		missing:         make(map[string]bool),
		logger:          logger.WithPrefix("AudioManager"),
	}
}

// PlaySound 播放音效
// 音效使用 SoundVolume 设置控制音量，单次播放
//
// 参数：
//   - soundID: 音效ID（如 "SOUND_CRASH", "SOUND_SCORE"）
//
// 返回：
//   - bool: 是否成功播放
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(soundID)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())

	// 重置并播放
	if err := player.Rewind(); err != nil {
		am.logger.Warn("failed to rewind sound", "sound", soundID, "err", err)
	}
	player.Play()

	return true
}

// SetSoundVolume 设置音效音量，立即作用于所有缓存的播放器
func (am *AudioManager) SetSoundVolume(volume float64) {
	if am.settingsManager != nil {
		am.settingsManager.SetSoundVolume(volume)
	}
	volume = am.getSoundVolume()
	for _, player := range am.soundPlayers {
		player.SetVolume(volume)
	}
}

// ToggleSound 切换音效开关，返回切换后的状态
func (am *AudioManager) ToggleSound() bool {
	if am.settingsManager == nil {
		return true
	}
	enabled := !am.settingsManager.GetSettings().SoundEnabled
	am.settingsManager.SetSoundEnabled(enabled)
	if !enabled {
		for _, player := range am.soundPlayers {
			player.Pause()
		}
	}
	return enabled
}

// GetSoundVolume 获取当前音效音量
func (am *AudioManager) GetSoundVolume() float64 {
	return am.getSoundVolume()
}

// PreloadSounds 预创建播放器，避免首次播放时的延迟
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.getSoundPlayer(soundID) != nil {
			loaded++
		}
	}
	am.logger.Debug("preloaded sounds", "loaded", loaded, "requested", len(soundIDs))
}

// getSoundPlayer 获取或创建音效播放器
func (am *AudioManager) getSoundPlayer(soundID string) *audio.Player {
	if player, exists := am.soundPlayers[soundID]; exists {
		return player
	}
	if am.missing[soundID] || am.resourceManager == nil {
		return nil
	}

	player, err := am.resourceManager.LoadSoundEffect(soundID)
	if err != nil {
		am.logger.Warn("sound unavailable", "sound", soundID, "err", err)
		am.missing[soundID] = true
		return nil
	}

	am.soundPlayers[soundID] = player
	return player
}

// getSoundVolume 获取音效音量设置
func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return DefaultSettings().SoundVolume
}
