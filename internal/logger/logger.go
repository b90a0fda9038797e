// 包 logger：统一初始化与获取日志器，避免各模块重复配置；通过环境变量控制日志级别与输出格式
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
)

// 默认日志器：在进程级复用，避免多处初始化导致输出不一致
var defaultLogger *slog.Logger

// 本次运行的标识，附加在每条日志上
var runID string

// Setup：初始化默认日志器
// 背景：集中化日志配置，便于按环境统一调整级别与格式；校验报告走标准输出，日志固定走标准错误以免混杂
// 约束：每次调用生成新的 run_id
func Setup() *slog.Logger {
	return SetupTo(os.Stderr)
}

// SetupTo：同 Setup，但可指定输出目标（测试中用于捕获日志）
func SetupTo(w io.Writer) *slog.Logger {
	lvl := parseLevel(os.Getenv("LOG_LEVEL"))
	var h slog.Handler
	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	}
	runID = uuid.NewString()
	defaultLogger = slog.New(h).With("run_id", runID)
	return defaultLogger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// L：获取默认日志器
// 背景：为业务代码提供快捷访问；若未初始化则回退到 Setup
func L() *slog.Logger {
	if defaultLogger == nil {
		return Setup()
	}
	return defaultLogger
}

// RunID 返回当前运行标识；未初始化时先初始化
func RunID() string {
	if defaultLogger == nil {
		Setup()
	}
	return runID
}
