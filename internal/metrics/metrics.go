package metrics

import (
	"boundou-check/internal/diag"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// JobName：推送到 Pushgateway 时使用的 job 名
const JobName = "boundou_check"

// Registry：独立注册表，只承载本工具的指标（不混入进程级默认指标）
var Registry = prometheus.NewRegistry()

var (
	DiagnosticsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "boundou_check_diagnostics_total",
		Help: "Diagnostics emitted by stage and severity",
	}, []string{"stage", "severity"})
	StageDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "boundou_check_stage_duration_ms",
		Help:    "Validation stage duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000, 5000},
	}, []string{"stage"})
	BoundaryFeatures = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_boundary_features",
		Help: "Number of features in the boundary collection",
	})
	BoundaryCommunes = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_boundary_communes",
		Help: "Distinct commune names resolved from the boundary collection",
	})
	ParcelsTotal = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_parcels",
		Help: "Number of entries in the parcel document",
	})
	CommunesWithoutBoundary = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_communes_without_boundary",
		Help: "Communes referenced by parcels but missing from the boundary collection",
	})
	LastRunSuccess = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_last_run_success",
		Help: "1 if the last validation run succeeded, 0 otherwise",
	})
	LastRunTimestamp = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "boundou_check_last_run_timestamp_seconds",
		Help: "Unix time of the last validation run",
	})
)

func init() {
	Registry.MustRegister(DiagnosticsTotal)
	Registry.MustRegister(StageDurationMs)
	Registry.MustRegister(BoundaryFeatures)
	Registry.MustRegister(BoundaryCommunes)
	Registry.MustRegister(ParcelsTotal)
	Registry.MustRegister(CommunesWithoutBoundary)
	Registry.MustRegister(LastRunSuccess)
	Registry.MustRegister(LastRunTimestamp)
}

// ObserveStage：记录某阶段的诊断数量与耗时
func ObserveStage(stage string, l diag.List, dur time.Duration) {
	for _, d := range l {
		DiagnosticsTotal.WithLabelValues(stage, d.Severity.String()).Inc()
	}
	StageDurationMs.WithLabelValues(stage).Observe(float64(dur.Milliseconds()))
}

// MarkRun：记录整次运行的结果
func MarkRun(success bool) {
	if success {
		LastRunSuccess.Set(1)
	} else {
		LastRunSuccess.Set(0)
	}
	LastRunTimestamp.SetToCurrentTime()
}

// 文档注释：推送指标到 Pushgateway
// 背景：校验是一次性批处理，进程结束前无法被抓取，按批处理任务的惯例主动推送。
// 约束：url 为空时不推送；推送失败只返回错误，由调用方记录日志，不影响退出码。
func Push(url, runID string) error {
	if url == "" {
		return nil
	}
	return push.New(url, JobName).
		Gatherer(Registry).
		Grouping("run_id", runID).
		Push()
}
