package parcel

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// CommuneStats：单个公社的地块汇总，与门户公社详情面板的口径一致
type CommuneStats struct {
	Parcels    int
	Superficie float64
	Nicad      int
	Deliberee  int
}

// 文档注释：地块统计
// 背景：覆盖数组中的全部条目；字段缺失只降低信息量，不影响计数口径。
// 约束：Total 恒等于输入数组长度（含非对象条目）；面积单位为公顷。
type Statistics struct {
	Total           int
	NicadOui        int
	DelibereeOui    int
	SuperficieTotal float64
	TypesUsage      map[string]int
	Communes        map[string]int
	PerCommune      map[string]*CommuneStats
}

func newStatistics(total int) Statistics {
	return Statistics{
		Total:      total,
		TypesUsage: map[string]int{},
		Communes:   map[string]int{},
		PerCommune: map[string]*CommuneStats{},
	}
}

// Percent 返回 n 占总数的百分比；Total 为 0 时返回 0
func (s Statistics) Percent(n int) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(n) / float64(s.Total) * 100
}

func (s Statistics) NicadPercent() float64     { return s.Percent(s.NicadOui) }
func (s Statistics) DelibereePercent() float64 { return s.Percent(s.DelibereeOui) }

// SortedCommunes 返回出现过的公社名（字典序）
func (s Statistics) SortedCommunes() []string {
	out := make([]string, 0, len(s.Communes))
	for k := range s.Communes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// parseSuperficie：把 superficie 转为有限浮点数
// 约束：接受 JSON 数字与数字字符串（去除首尾空白）；NaN/Inf、布尔、null 及其他类型一律不计入。
// 零与负数原样返回，不做合理性判断。
func parseSuperficie(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
