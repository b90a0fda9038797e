// 包 consistency：边界公社名与地块公社名之间的引用一致性检查
package consistency

import (
	"boundou-check/internal/diag"
	"boundou-check/internal/logger"
	"sort"
	"strings"
)

// 文档注释：一致性检查结果
// 约束：三个集合均已排序；Consistent 恰为 len(OnlyInParcels) == 0。
type Result struct {
	Consistent     bool
	OnlyInBoundary []string
	OnlyInParcels  []string
	Common         []string
	Diagnostics    diag.List
}

// Check：比较两侧公社名集合
// 背景：地块引用了没有边界的公社时，门户无法把这些地块画到地图上，因此判为失败；
// 反方向（有边界但无地块）只是信息性警告。
func Check(boundaryNames map[string]struct{}, parcelNames []string) Result {
	parcelSet := make(map[string]struct{}, len(parcelNames))
	for _, n := range parcelNames {
		parcelSet[n] = struct{}{}
	}
	res := Result{
		OnlyInBoundary: difference(boundaryNames, parcelSet),
		OnlyInParcels:  difference(parcelSet, boundaryNames),
		Common:         intersection(boundaryNames, parcelSet),
	}
	res.Consistent = len(res.OnlyInParcels) == 0

	res.Diagnostics.Info("consistency_start", "Vérification de la cohérence des communes")
	if len(res.OnlyInBoundary) > 0 {
		res.Diagnostics.Warn("commune_without_parcels", "Communes dans GeoJSON mais sans parcelles: "+strings.Join(res.OnlyInBoundary, ", "))
	}
	if len(res.OnlyInParcels) > 0 {
		res.Diagnostics.Error("commune_without_boundary", "Communes dans parcelles mais pas dans GeoJSON: "+strings.Join(res.OnlyInParcels, ", "))
		res.Diagnostics.Warn("parcels_not_rendered", "Ces parcelles ne s'afficheront pas sur la carte!")
	}
	if len(res.Common) > 0 {
		res.Diagnostics.Success("commune_complete", "Communes avec données complètes: "+strings.Join(res.Common, ", "))
	}
	logger.L().Debug("consistency_done", "only_boundary", len(res.OnlyInBoundary), "only_parcels", len(res.OnlyInParcels), "common", len(res.Common))
	return res
}

func difference(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func intersection(a, b map[string]struct{}) []string {
	out := []string{}
	for k := range a {
		if _, ok := b[k]; ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
