// Package audio 程序化合成游戏音效，并以 Ebitengine audio 可播放的 PCM 流提供
package audio

import (
	"fmt"
	"io"
)

// SampleRate 所有音效的采样率，创建 Ebitengine 音频上下文时必须使用同一值
const SampleRate = 48000

// bytesPerFrame 一帧立体声 16 位有符号小端采样
const bytesPerFrame = 4

// PCMStream 内存中的 16 位立体声 PCM 流
// 实现 io.ReadSeeker 和 Length，Ebitengine 播放器依赖它们支持 Rewind
type PCMStream struct {
	data   []byte
	offset int64
}

// NewPCMStream 包装已渲染好的 PCM 数据
// 切片共享不复制，流不会写入它
func NewPCMStream(data []byte) *PCMStream {
	return &PCMStream{data: data}
}

// Read 读取 PCM 数据到 p
// 实现 io.Reader 接口
func (s *PCMStream) Read(p []byte) (n int, err error) {
	if s.offset >= int64(len(s.data)) {
		return 0, io.EOF
	}

	n = copy(p, s.data[s.offset:])
	s.offset += int64(n)
	return n, nil
}

// Seek 设置下一次 Read 的偏移
// 实现 io.Seeker 接口
func (s *PCMStream) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64

	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = s.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(s.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}

	if newOffset < 0 {
		return 0, fmt.Errorf("negative position: %d", newOffset)
	}

	s.offset = newOffset
	return newOffset, nil
}

// Length 返回流的总字节数
func (s *PCMStream) Length() int64 {
	return int64(len(s.data))
}

// Duration 返回播放时长（秒）
func (s *PCMStream) Duration() float64 {
	return float64(len(s.data)/bytesPerFrame) / SampleRate
}
