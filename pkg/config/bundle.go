package config

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// 内置数据文件路径（相对嵌入文件系统根目录）
const (
	TuningPath  = "data/tuning.yaml"
	CatalogPath = "data/catalog.yaml"
)

// ReadFunc 读取数据文件，通常是 embedded.ReadFile 或 os.ReadFile
type ReadFunc func(path string) ([]byte, error)

// Bundle 启动时一次性加载的全部静态数据
type Bundle struct {
	Tuning  *Tuning
	Catalog *Catalog
}

// LoadBundle 并行解析调参和资源目录
//
// 参数:
//   - read: 读取 TuningPath 和 CatalogPath 的函数
//   - tuningOverride: 非空时改为从磁盘读取该调参文件
func LoadBundle(ctx context.Context, read ReadFunc, tuningOverride string) (*Bundle, error) {
	var bundle Bundle
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		if tuningOverride != "" {
			bundle.Tuning, err = LoadTuning(tuningOverride)
		} else {
			bundle.Tuning, err = parseWith(read, TuningPath, ParseTuning)
		}
		return err
	})

	g.Go(func() error {
		var err error
		bundle.Catalog, err = parseWith(read, CatalogPath, ParseCatalog)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}

func parseWith[T any](read ReadFunc, path string, parse func([]byte) (T, error)) (T, error) {
	var zero T
	data, err := read(path)
	if err != nil {
		return zero, fmt.Errorf("failed to read %s: %w", path, err)
	}
	v, err := parse(data)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
