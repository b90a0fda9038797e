// 包 boundary：公社边界 GeoJSON 的结构校验与公社名提取
package boundary

import (
	"boundou-check/internal/docio"
	"boundou-check/internal/logger"
	"fmt"
	"strings"
	"time"
)

// 文档注释：校验边界文档
// 背景：门户按公社名把地块挂到边界上；这里只确认文档形状正确并收集公社名，供一致性检查使用。
// 约束：文件缺失/不可读/非 JSON、顶层 type 不符、features 为空时判为无效并返回空集合；
// 单个要素缺名或缺几何只产生警告，不影响有效性。
func Validate(path string) Result {
	t0 := time.Now()
	res := Result{Names: map[string]struct{}{}}
	res.Diagnostics.Info("boundary_start", "Validation du fichier GeoJSON: "+path)

	doc, err := docio.Load(path)
	if err != nil {
		docio.Diagnose(&res.Diagnostics, path, err)
		logger.L().Debug("boundary_load_error", "path", path, "err", err)
		return res
	}
	gj, _ := doc.(map[string]any)
	if tp := docio.Str(gj, "type"); tp != CollectionType {
		found := tp
		if gj == nil {
			found = "<" + docio.Kind(doc) + ">"
		}
		res.Diagnostics.Error("wrong_type", fmt.Sprintf("Type incorrect: attendu '%s', trouvé '%s'", CollectionType, found))
		return res
	}
	arr, ok := gj["features"].([]any)
	if !ok && gj["features"] != nil {
		res.Diagnostics.Error("no_features", fmt.Sprintf("Champ features invalide: attendu un array, trouvé %s", docio.Kind(gj["features"])))
		return res
	}
	if len(arr) == 0 {
		res.Diagnostics.Error("no_features", "Aucune feature trouvée")
		return res
	}

	bbox := emptyBBox()
	for i, it := range arr {
		f, ok := it.(map[string]any)
		if !ok {
			res.Diagnostics.WarnAt(i, "feature_not_object", fmt.Sprintf("Feature %d: format incorrect, attendu un objet", i))
			continue
		}
		props, _ := f["properties"].(map[string]any)
		if name, ok := ResolveName(props); ok {
			res.Names[name] = struct{}{}
		} else {
			res.Diagnostics.WarnAt(i, "name_unresolved", fmt.Sprintf("Feature %d: nom de commune non trouvé (champs %s)", i, strings.Join(NameKeys, ", ")))
		}
		g, _ := f["geometry"].(map[string]any)
		if !hasCoordinates(g) {
			res.Diagnostics.WarnAt(i, "geometry_missing", fmt.Sprintf("Feature %d: géométrie manquante", i))
			continue
		}
		extendBBox(&bbox, g)
	}

	res.Valid = true
	res.Features = len(arr)
	res.Diagnostics.Success("boundary_ok", fmt.Sprintf("%d communes trouvées dans le GeoJSON", len(arr)))
	res.Diagnostics.Info("boundary_names", "Communes: "+strings.Join(res.SortedNames(), ", "))
	if validBBox(bbox) {
		res.BBox = bbox
		res.HasBBox = true
		res.Diagnostics.Info("boundary_extent", fmt.Sprintf("Emprise: %.4f, %.4f → %.4f, %.4f", bbox[0], bbox[1], bbox[2], bbox[3]))
	}
	logger.L().Debug("boundary_validate_done", "path", path, "features", len(arr), "names", len(res.Names), "ms", time.Since(t0).Milliseconds())
	return res
}

// hasCoordinates：几何存在且 coordinates 非空
// 约束：null、缺失、空数组均视为缺失；不检查坐标本身是否合法
func hasCoordinates(g map[string]any) bool {
	if g == nil {
		return false
	}
	switch c := g["coordinates"].(type) {
	case nil:
		return false
	case []any:
		return len(c) > 0
	case string:
		return c != ""
	case bool:
		return c
	case float64:
		return c != 0
	default:
		return true
	}
}
