// 包 diag：校验诊断的最小数据结构；纯数据，不做任何输出
package diag

// Severity：诊断级别，与展示层的 info/success/warning/error 四类一一对应
type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// NoIndex：诊断不指向具体条目时的索引值
const NoIndex = -1

// Diagnostic：单条诊断
// 背景：校验器只产出诊断列表，由展示层统一渲染，避免逻辑与打印交织。
// 约束：Code 为稳定的 snake_case 标识，供测试与指标标签使用；Index 为条目位置或 NoIndex。
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string
	Index    int
}

// HasIndex 报告诊断是否绑定到某个条目
func (d Diagnostic) HasIndex() bool { return d.Index >= 0 }

// List：按产生顺序保存的诊断集合
type List []Diagnostic

func (l *List) add(sev Severity, code string, idx int, msg string) {
	*l = append(*l, Diagnostic{Severity: sev, Code: code, Message: msg, Index: idx})
}

func (l *List) Info(code, msg string)    { l.add(Info, code, NoIndex, msg) }
func (l *List) Success(code, msg string) { l.add(Success, code, NoIndex, msg) }
func (l *List) Warn(code, msg string)    { l.add(Warning, code, NoIndex, msg) }
func (l *List) Error(code, msg string)   { l.add(Error, code, NoIndex, msg) }

// WarnAt 记录指向第 idx 个条目的警告
func (l *List) WarnAt(idx int, code, msg string) { l.add(Warning, code, idx, msg) }

// ErrorAt 记录指向第 idx 个条目的错误
func (l *List) ErrorAt(idx int, code, msg string) { l.add(Error, code, idx, msg) }

// Count 返回指定级别的诊断数量
func (l List) Count(sev Severity) int {
	n := 0
	for _, d := range l {
		if d.Severity == sev {
			n++
		}
	}
	return n
}

// WithCode 返回指定 Code 的诊断（保持原顺序）
func (l List) WithCode(code string) List {
	var out List
	for _, d := range l {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

// Has 报告是否存在指定 Code 的诊断
func (l List) Has(code string) bool {
	for _, d := range l {
		if d.Code == code {
			return true
		}
	}
	return false
}
