// 程序入口：读取配置、执行一次部署前校验并以校验结论作为退出码；校验逻辑在 internal/check
package main

import (
	"boundou-check/internal/check"
	"boundou-check/internal/config"
	"boundou-check/internal/logger"
	"boundou-check/internal/metrics"
	"os"
)

func main() {
	// 日志初始化（stderr），报告输出到 stdout
	l := logger.Setup()
	l.Debug("log_init_ok")
	cfg := config.Load()

	o := check.NewRunner(cfg, os.Stdout).Run()

	// 指标推送失败只记录，不改变退出码
	if err := metrics.Push(cfg.PushgatewayURL, logger.RunID()); err != nil {
		l.Error("metrics_push_error", "url", cfg.PushgatewayURL, "err", err)
	} else if cfg.PushgatewayURL != "" {
		l.Info("metrics_push_ok", "url", cfg.PushgatewayURL)
	}
	os.Exit(o.ExitCode())
}
