// 包 report：把校验诊断、统计与总结渲染为终端文本；校验逻辑本身不做任何输出
package report

import (
	"boundou-check/internal/diag"
	"boundou-check/internal/parcel"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// 语义色：成功/警告/错误沿用常见约定
var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#5D878F")
	colorTitle   = lipgloss.Color("#1B3B59")
)

// 阶段标题图标，按诊断 Code 取用
var icons = map[string]string{
	"layout_start":      "📁",
	"boundary_start":    "🗺️ ",
	"parcel_start":      "📦",
	"consistency_start": "🔍",
	"boundary_names":    "📋",
	"boundary_extent":   "🧭",
}

var severityIcons = map[diag.Severity]string{
	diag.Info:    "ℹ️ ",
	diag.Success: "✅",
	diag.Warning: "⚠️ ",
	diag.Error:   "❌",
}

// Printer：面向标准输出的渲染器
// 约束：颜色由 lipgloss 按输出目标自动降级，非终端时输出纯文本
type Printer struct {
	w      io.Writer
	detail bool

	title, success, warning, errorS, muted lipgloss.Style
}

// New 构建渲染器；detail 为 true 时输出逐公社明细
func New(w io.Writer, detail bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		detail:  detail,
		title:   r.NewStyle().Bold(true).Foreground(colorTitle),
		success: r.NewStyle().Foreground(colorSuccess),
		warning: r.NewStyle().Foreground(colorWarning),
		errorS:  r.NewStyle().Foreground(colorError),
		muted:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p *Printer) println(s string) { fmt.Fprintln(p.w, s) }

func (p *Printer) style(sev diag.Severity) lipgloss.Style {
	switch sev {
	case diag.Success:
		return p.success
	case diag.Warning:
		return p.warning
	case diag.Error:
		return p.errorS
	default:
		return p.muted
	}
}

// Banner 输出运行标题
func (p *Printer) Banner() {
	p.println(p.title.Render("🚀 Validation des données du portail SIG Boundou"))
	p.println(strings.Repeat("=", 50))
}

// Diagnostics 逐条输出诊断；*_start 诊断作为阶段标题，前置空行
func (p *Printer) Diagnostics(l diag.List) {
	for _, d := range l {
		if strings.HasSuffix(d.Code, "_start") {
			p.println("")
			p.println(p.title.Render(icons[d.Code] + " " + d.Message))
			continue
		}
		icon, ok := icons[d.Code]
		if !ok {
			icon = severityIcons[d.Severity]
		}
		// 续行（以空白开头）不加图标
		if strings.HasPrefix(d.Message, " ") {
			p.println(p.style(d.Severity).Render(d.Message))
			continue
		}
		p.println(p.style(d.Severity).Render(icon + " " + d.Message))
	}
}

// Statistics 输出地块统计块
func (p *Printer) Statistics(s parcel.Statistics) {
	p.println("📊 Statistiques:")
	p.println(fmt.Sprintf("   • NICAD: %d/%d (%.1f%%)", s.NicadOui, s.Total, s.NicadPercent()))
	p.println(fmt.Sprintf("   • Délibérées: %d/%d (%.1f%%)", s.DelibereeOui, s.Total, s.DelibereePercent()))
	p.println(fmt.Sprintf("   • Superficie totale: %.1f ha", s.SuperficieTotal))
	p.println(fmt.Sprintf("   • Types d'usage: %d", len(s.TypesUsage)))
	p.println(fmt.Sprintf("   • Communes: %d", len(s.Communes)))
	if !p.detail {
		return
	}
	for _, c := range s.SortedCommunes() {
		cs := s.PerCommune[c]
		p.println(p.muted.Render(fmt.Sprintf("     - %s: %d parcelles, %.1f ha, NICAD %d, délibérées %d", c, cs.Parcels, cs.Superficie, cs.Nicad, cs.Deliberee)))
	}
}

// LayoutFailed 输出结构检查失败后的终止提示
func (p *Printer) LayoutFailed() {
	p.println("")
	p.println(p.errorS.Render("❌ Structure du projet incorrecte"))
}

// Summary 输出三行总结与后续提示
func (p *Printer) Summary(boundaryOK, parcelsOK, consistent bool) {
	p.println("")
	p.println(p.title.Render("📋 Résumé de la validation"))
	p.println(strings.Repeat("=", 30))
	p.println("GeoJSON: " + p.status(boundaryOK, "✅ Valide", "❌ Erreur"))
	p.println("Parcelles: " + p.status(parcelsOK, "✅ Valide", "❌ Erreur"))
	p.println("Cohérence: " + p.status(consistent, "✅ OK", "❌ Problème"))

	if boundaryOK && parcelsOK && consistent {
		p.println("")
		p.println(p.success.Render("🎉 Validation réussie! Le portail peut utiliser vos données."))
		p.println("")
		p.println("Pour lancer le portail:")
		p.println("  python -m http.server 8000")
		p.println("  Puis ouvrez http://localhost:8000")
		return
	}
	p.println("")
	p.println(p.warning.Render("⚠️  Des problèmes ont été détectés. Veuillez les corriger avant de déployer."))
}

func (p *Printer) status(ok bool, yes, no string) string {
	if ok {
		return p.success.Render(yes)
	}
	return p.errorS.Render(no)
}
