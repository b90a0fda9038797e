// 包 check：一次完整的部署前校验；负责阶段编排、结果汇总与退出码
package check

import (
	"boundou-check/internal/boundary"
	"boundou-check/internal/config"
	"boundou-check/internal/consistency"
	"boundou-check/internal/diag"
	"boundou-check/internal/layout"
	"boundou-check/internal/logger"
	"boundou-check/internal/metrics"
	"boundou-check/internal/parcel"
	"boundou-check/internal/report"
	"io"
	"time"
)

// Outcome：各阶段的布尔结论
type Outcome struct {
	LayoutOK      bool
	BoundaryValid bool
	ParcelsValid  bool
	Consistent    bool
}

// Success 当且仅当所有阶段通过
func (o Outcome) Success() bool {
	return o.LayoutOK && o.BoundaryValid && o.ParcelsValid && o.Consistent
}

// ExitCode：成功为 0，否则为 1
func (o Outcome) ExitCode() int {
	if o.Success() {
		return 0
	}
	return 1
}

// 文档注释：校验运行器
// 背景：各阶段以函数字段注入，默认指向真实实现；测试可替换以观察调用顺序。
// 约束：同步单协程执行，不持有任何跨运行状态。
type Runner struct {
	Config config.Config
	Out    io.Writer

	CheckLayout      func(root string, files []string) layout.Result
	ValidateBoundary func(path string) boundary.Result
	ValidateParcels  func(path string) parcel.Result
	LoadOperations   func(path string) (*config.OperationTable, error)
}

// NewRunner 构建使用真实校验器的运行器
func NewRunner(cfg config.Config, out io.Writer) *Runner {
	return &Runner{
		Config:           cfg,
		Out:              out,
		CheckLayout:      layout.Check,
		ValidateBoundary: boundary.Validate,
		ValidateParcels:  parcel.Validate,
		LoadOperations:   config.LoadOperationTable,
	}
}

// 文档注释：执行一次完整校验
// 背景：结构检查是前置门槛，缺文件时直接终止，两份数据文档都不会被读取。
// 约束：一致性检查只在两份文档都有效时执行，否则视为通过；结论由 Outcome 汇总。
func (r *Runner) Run() Outcome {
	l := logger.L()
	p := report.New(r.Out, r.Config.ReportDetail)
	var o Outcome
	t0 := time.Now()
	p.Banner()

	st := time.Now()
	lr := r.CheckLayout(r.Config.Root, r.Config.LayoutFiles())
	metrics.ObserveStage("layout", lr.Diagnostics, time.Since(st))
	p.Diagnostics(lr.Diagnostics)
	if !lr.OK {
		l.Warn("layout_gate_failed", "root", r.Config.Root, "missing", lr.Missing)
		p.LayoutFailed()
		metrics.MarkRun(false)
		return o
	}
	o.LayoutOK = true

	st = time.Now()
	br := r.ValidateBoundary(r.Config.Path(r.Config.BoundaryPath))
	metrics.ObserveStage("boundary", br.Diagnostics, time.Since(st))
	metrics.BoundaryFeatures.Set(float64(br.Features))
	metrics.BoundaryCommunes.Set(float64(len(br.Names)))
	p.Diagnostics(br.Diagnostics)
	o.BoundaryValid = br.Valid
	l.Info("boundary_validate_done", "valid", br.Valid, "features", br.Features, "communes", len(br.Names), "warnings", br.Diagnostics.Count(diag.Warning))

	st = time.Now()
	pr := r.ValidateParcels(r.Config.Path(r.Config.ParcelPath))
	metrics.ObserveStage("parcels", pr.Diagnostics, time.Since(st))
	metrics.ParcelsTotal.Set(float64(pr.Stats.Total))
	p.Diagnostics(pr.Diagnostics)
	if pr.Valid {
		p.Statistics(pr.Stats)
	}
	o.ParcelsValid = pr.Valid
	l.Info("parcel_validate_done", "valid", pr.Valid, "total", pr.Stats.Total, "warnings", pr.Diagnostics.Count(diag.Warning))

	o.Consistent = true
	metrics.CommunesWithoutBoundary.Set(0)
	if br.Valid && pr.Valid {
		st = time.Now()
		cr := consistency.Check(br.Names, pr.Names)
		ds := append(cr.Diagnostics, r.operations(pr.Names)...)
		metrics.ObserveStage("consistency", ds, time.Since(st))
		metrics.CommunesWithoutBoundary.Set(float64(len(cr.OnlyInParcels)))
		p.Diagnostics(ds)
		o.Consistent = cr.Consistent
		l.Info("consistency_done", "consistent", cr.Consistent, "common", len(cr.Common), "only_in_parcels", cr.OnlyInParcels)
	}

	p.Summary(o.BoundaryValid, o.ParcelsValid, o.Consistent)
	metrics.MarkRun(o.Success())
	l.Info("run_done", "success", o.Success(), "ms", time.Since(t0).Milliseconds())
	return o
}

// operations：加载公社作业状态表并检查；表缺失时不产出诊断，表无效时降级为一条警告
func (r *Runner) operations(names []string) diag.List {
	if r.LoadOperations == nil {
		return nil
	}
	path := r.Config.Path(r.Config.CommunesConfigPath)
	tbl, err := r.LoadOperations(path)
	if err != nil {
		logger.L().Warn("communes_config_error", "path", path, "err", err)
		var out diag.List
		out.Warn("communes_config_invalid", "Configuration des communes ignorée: "+err.Error())
		return out
	}
	if tbl == nil {
		logger.L().Debug("communes_config_absent", "path", path)
	}
	return consistency.CheckOperations(names, tbl)
}
