package config

// 音效资源 ID
// AudioManager 按 ID 缓存播放器，合成器按 ID 生成对应的 PCM 数据
const (
	SoundCrash  = "SOUND_CRASH"  // 撞车
	SoundEngine = "SOUND_ENGINE" // 开局引擎启动
	SoundScore  = "SOUND_SCORE"  // 拾取道具
)

// AllSoundIDs 返回全部音效 ID，用于启动时预合成
func AllSoundIDs() []string {
	return []string{SoundCrash, SoundEngine, SoundScore}
}
