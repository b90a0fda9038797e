package boundary

import (
	"boundou-check/internal/diag"
	"sort"
)

// CollectionType：边界文档顶层 type 的唯一合法值
const CollectionType = "FeatureCollection"

// NameKeys：公社名称候选属性，按优先级排列；第一个存在且非空的字符串值胜出
var NameKeys = []string{"CCRCA_1", "CCRCA", "NOM"}

// 文档注释：边界文档校验结果
// 背景：只读快照，校验结束后交给一致性检查与展示层；不持有任何文件句柄。
// 约束：Names 为去重后的公社名集合；BBox 按 minLon, minLat, maxLon, maxLat 排列，仅在 HasBBox 时有效。
type Result struct {
	Valid       bool
	Features    int
	Names       map[string]struct{}
	BBox        [4]float64
	HasBBox     bool
	Diagnostics diag.List
}

// SortedNames 返回按字典序排列的公社名
func (r Result) SortedNames() []string {
	out := make([]string, 0, len(r.Names))
	for n := range r.Names {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// ResolveName：按 NameKeys 顺序解析公社名
func ResolveName(props map[string]any) (string, bool) {
	for _, k := range NameKeys {
		if v, ok := props[k].(string); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
