package audio

import (
	"fmt"
	"math"
)

// 音效名与游戏使用的音效ID一致
const (
	CueCrash  = "SOUND_CRASH"
	CueEngine = "SOUND_ENGINE"
	CueScore  = "SOUND_SCORE"
)

// Synthesize 将指定音效渲染为 SampleRate 采样率的 16 位立体声 PCM
// 渲染是确定的：同一音效总是得到相同字节
func Synthesize(cue string) ([]byte, error) {
	switch cue {
	case CueCrash:
		return genCrash(), nil
	case CueEngine:
		return genEngine(), nil
	case CueScore:
		return genScore(), nil
	default:
		return nil, fmt.Errorf("unknown cue %q", cue)
	}
}

// Cues 列出 Synthesize 支持的全部音效
func Cues() []string {
	return []string{CueCrash, CueEngine, CueScore}
}

// genCrash 短促噪声叠加下滑的低频撞击
func genCrash() []byte {
	const dur = 0.45
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	seed := uint64(0xC0FFEE)
	lp := 0.0

	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.01, 0.15, 0.35, 0.6)

		// 单极低通，噪声衰减时逐渐变闷
		cutoff := 0.6 - 0.5*p
		lp += cutoff * (lcg(&seed) - lp)

		thump := math.Sin(2*math.Pi*(90-60*p)*t) * math.Exp(-p*6)
		putStereo16(buf, i, softSat((lp*0.8+thump*0.7)*env))
	}
	return buf
}

// genEngine 音高上扬的 FM 轰鸣，模拟引擎加速
func genEngine() []byte {
	const dur = 0.8
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	phase := 0.0

	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := 55 + 65*p*p
		phase += freq / SampleRate
		env := adsr(p, 0.08, 0.2, 0.7, 0.25)

		// fm() 接收绝对时间，这里以 1 Hz 传入累积相位
		s := fm(phase, 1, 2.0, 2.2*env) * 0.55
		s += math.Sin(2*math.Pi*phase*0.5) * 0.25
		putStereo16(buf, i, softSat(s*env))
	}
	return buf
}

// genScore 两个音的上行提示音
func genScore() []byte {
	const dur = 0.25
	n := int(dur * SampleRate)
	buf := makeBuf(n)
	half := n / 2

	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		freq := 880.0
		local := i
		if i >= half {
			freq = 1318.5
			local = i - half
		}
		p := float64(local) / float64(half)
		env := adsr(p, 0.02, 0.3, 0.5, 0.4)
		s := fm(t, freq, 2.0, 1.2*env) * 0.35
		putStereo16(buf, i, softSat(s*env))
	}
	return buf
}

// ---- 辅助函数 ----

// makeBuf 分配 n 帧的 16 位立体声缓冲
func makeBuf(n int) []byte { return make([]byte, n*bytesPerFrame) }

// putStereo16 将 [-1,1] 区间的采样写入左右声道
func putStereo16(buf []byte, i int, sample float64) {
	if sample > 1 {
		sample = 1
	} else if sample < -1 {
		sample = -1
	}
	v := int16(sample * math.MaxInt16)
	buf[i*4] = byte(v)
	buf[i*4+1] = byte(v >> 8)
	buf[i*4+2] = byte(v)
	buf[i*4+3] = byte(v >> 8)
}

// softSat 柔和饱和，避免硬削波
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr 返回归一化进度 [0,1] 处的包络值
// attack/decay/release 为占总时长的比例
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm 返回一个 FM 合成采样
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg 推进 LCG 种子并返回 [-1,1] 区间的噪声采样
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}
