package consistency

import (
	"boundou-check/internal/config"
	"boundou-check/internal/diag"
	"fmt"
	"sort"
	"strings"
)

// CheckOperations：对照公社作业状态表检查地块引用的公社
// 背景：门户对 pending 公社不提供详情入口，这些公社下的地块即使能画出也无法查看详情。
// 约束：只产出 warning/info，不影响整体结果；tbl 为 nil 时不产出任何诊断。
func CheckOperations(parcelNames []string, tbl *config.OperationTable) diag.List {
	var out diag.List
	if tbl == nil {
		return out
	}
	counts := map[string]int{}
	for _, n := range parcelNames {
		counts[n]++
	}
	names := make([]string, 0, len(counts))
	for n := range counts {
		names = append(names, n)
	}
	sort.Strings(names)

	var unknown []string
	for _, n := range names {
		op, ok := tbl.Lookup(n)
		if !ok {
			unknown = append(unknown, n)
			continue
		}
		if !op.HasOperations() {
			out.Warn("commune_pending", fmt.Sprintf("Commune %s: %d parcelles mais statut '%s' (détails non affichés)", n, counts[n], op.Status))
		}
	}
	if len(unknown) > 0 {
		out.Info("commune_unconfigured", "Communes absentes de la configuration: "+strings.Join(unknown, ", "))
	}
	return out
}
