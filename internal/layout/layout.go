// 包 layout：门户目录结构检查（只看文件是否存在）
package layout

import (
	"boundou-check/internal/diag"
	"os"
	"path/filepath"
)

// Result：结构检查结果；Missing 保持配置顺序
type Result struct {
	OK          bool
	Missing     []string
	Diagnostics diag.List
}

// Check：确认 root 下的每个相对路径都存在
// 约束：只做存在性判断，不读取内容；任何 Stat 失败都视为缺失；绝对路径不拼接 root
func Check(root string, files []string) Result {
	var res Result
	res.Diagnostics.Info("layout_start", "Vérification de la structure du projet")
	for _, f := range files {
		p := f
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, f)
		}
		if _, err := os.Stat(p); err != nil {
			res.Missing = append(res.Missing, f)
			continue
		}
		res.Diagnostics.Success("layout_present", f)
	}
	if len(res.Missing) > 0 {
		res.Diagnostics.Error("layout_missing", "Fichiers manquants:")
		for _, f := range res.Missing {
			res.Diagnostics.Error("layout_missing_file", "   • "+f)
		}
		return res
	}
	res.OK = true
	return res
}
