// Package randutil 提供全局唯一的伪随机源构造
//
// 所有随机决策（障碍物生成、速度、贴图、道具类型）必须共享同一个 *rand.Rand，
// 这样给定种子即可复现整局游戏。
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const goldenRatio64 = 0x9e3779b97f4a7c15

// New 根据 seed 构造确定性的 PCG 随机源
// rand/v2 的 PCG 需要两个 64 位种子，这里统一从一个 int64 派生
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Seed 返回一个基于当前时间的种子
// 当命令行和启动配置都没有指定种子时使用
func Seed() int64 {
	return time.Now().UnixNano()
}

// mix 是 splitmix64 的终结函数
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
