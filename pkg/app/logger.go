package app

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// NewLogger 创建应用日志
//
// level 为 debug | info | warn | error，无法识别时使用 warn；
// verbose 强制 debug 级别。w 为 nil 时输出到 stderr。
func NewLogger(w io.Writer, level string, verbose bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}

	lvl, err := log.ParseLevel(level)
	if err != nil || level == "" {
		lvl = log.WarnLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
}
