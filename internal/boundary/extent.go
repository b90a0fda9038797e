package boundary

import (
	"encoding/json"
	"math"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// 文档注释：整体空间范围（包围盒）
// 背景：仅作为参考信息输出，帮助确认边界数据落在预期区域；不做几何合法性判定。
// 约束：无法解码的几何静默跳过；不假定经纬度，投影坐标同样适用；合并后 b[0] <= b[2] 才表示有效。
func emptyBBox() [4]float64 {
	return [4]float64{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func extendBBox(b *[4]float64, g map[string]any) {
	raw, err := json.Marshal(g)
	if err != nil {
		return
	}
	var t geom.T
	if err := geojson.Unmarshal(raw, &t); err != nil || t == nil {
		return
	}
	gb := t.Bounds()
	if gb == nil || gb.IsEmpty() {
		return
	}
	if gb.Min(0) < b[0] {
		b[0] = gb.Min(0)
	}
	if gb.Min(1) < b[1] {
		b[1] = gb.Min(1)
	}
	if gb.Max(0) > b[2] {
		b[2] = gb.Max(0)
	}
	if gb.Max(1) > b[3] {
		b[3] = gb.Max(1)
	}
}

func validBBox(b [4]float64) bool { return b[0] <= b[2] && b[1] <= b[3] }
