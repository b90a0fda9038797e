// 包 parcel：地块记录（parcelles.json）的结构校验、公社名提取与统计
package parcel

import (
	"boundou-check/internal/diag"
	"boundou-check/internal/docio"
	"boundou-check/internal/logger"
	"fmt"
	"strings"
	"time"
)

// RequiredFields：每条地块记录应包含的字段（按键存在性判断，值可为空）
var RequiredFields = []string{"id_parcelle", "commune", "nicad", "deliberee", "type_usag"}

// Result：地块文档校验结果
// 约束：Names 保留重复值，与记录顺序一致（每条带公社名的记录贡献一项）
type Result struct {
	Valid       bool
	Names       []string
	Stats       Statistics
	Diagnostics diag.List
}

// 文档注释：校验地块文档
// 背景：门户按 commune 字段把地块挂到公社边界上；这里确认数组形状、逐条检查必填字段并汇总统计。
// 约束：文件缺失/不可读/非 JSON、顶层非数组、数组为空时判为无效；非对象条目报错并跳过字段检查，但仍计入总数。
func Validate(path string) Result {
	t0 := time.Now()
	var res Result
	res.Diagnostics.Info("parcel_start", "Validation du fichier parcelles: "+path)

	doc, err := docio.Load(path)
	if err != nil {
		docio.Diagnose(&res.Diagnostics, path, err)
		logger.L().Debug("parcel_load_error", "path", path, "err", err)
		return res
	}
	arr, ok := doc.([]any)
	if !ok {
		res.Diagnostics.Error("wrong_type", "Format incorrect: attendu un array, trouvé "+docio.Kind(doc))
		return res
	}
	if len(arr) == 0 {
		res.Diagnostics.Error("no_parcels", "Aucune parcelle trouvée")
		return res
	}

	res.Stats = newStatistics(len(arr))
	for i, it := range arr {
		rec, ok := it.(map[string]any)
		if !ok {
			res.Diagnostics.ErrorAt(i, "entry_not_object", fmt.Sprintf("Parcelle %d: format incorrect, attendu un objet", i))
			continue
		}
		if missing := missingFields(rec); len(missing) > 0 {
			res.Diagnostics.WarnAt(i, "fields_missing", fmt.Sprintf("Parcelle %d: champs manquants: %s", i, strings.Join(missing, ", ")))
		}
		res.Names = res.Stats.add(i, rec, res.Names, &res.Diagnostics)
	}

	res.Valid = true
	res.Diagnostics.Success("parcel_ok", fmt.Sprintf("%d parcelles trouvées", res.Stats.Total))
	logger.L().Debug("parcel_validate_done", "path", path, "total", res.Stats.Total, "communes", len(res.Stats.Communes), "ms", time.Since(t0).Milliseconds())
	return res
}

func missingFields(rec map[string]any) []string {
	var out []string
	for _, f := range RequiredFields {
		if _, ok := rec[f]; !ok {
			out = append(out, f)
		}
	}
	return out
}

// add 把一条记录计入统计，返回追加公社名后的 names
func (s *Statistics) add(i int, rec map[string]any, names []string, l *diag.List) []string {
	nicad := FlagOf(rec, "nicad") == FlagOui
	delib := FlagOf(rec, "deliberee") == FlagOui
	if nicad {
		s.NicadOui++
	}
	if delib {
		s.DelibereeOui++
	}
	area, hasArea := parseSuperficie(rec["superficie"])
	if hasArea {
		s.SuperficieTotal += area
	}
	if tu, ok := rec["type_usag"].(string); ok && tu != "" {
		s.TypesUsage[tu]++
	}

	switch c := rec["commune"].(type) {
	case nil:
	case string:
		if c == "" {
			break
		}
		names = append(names, c)
		s.Communes[c]++
		cs := s.PerCommune[c]
		if cs == nil {
			cs = &CommuneStats{}
			s.PerCommune[c] = cs
		}
		cs.Parcels++
		if hasArea {
			cs.Superficie += area
		}
		if nicad {
			cs.Nicad++
		}
		if delib {
			cs.Deliberee++
		}
	default:
		l.WarnAt(i, "commune_not_text", fmt.Sprintf("Parcelle %d: commune non textuelle (%s), ignorée", i, docio.Kind(c)))
	}
	return names
}
