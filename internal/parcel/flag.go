package parcel

// Affirmative：标志字段唯一计为“是”的取值（区分大小写，精确匹配）
const Affirmative = "Oui"

// Flag：nicad / deliberee 等 Oui/Non 字段的三态表示
type Flag int

const (
	FlagAbsent Flag = iota // 字段缺失或为 null
	FlagOther              // 存在但不是 "Oui"（含 "oui"、"Non"、true 等）
	FlagOui
)

func (f Flag) String() string {
	switch f {
	case FlagOui:
		return "oui"
	case FlagOther:
		return "other"
	default:
		return "absent"
	}
}

// FlagOf 读取记录中的标志字段
func FlagOf(rec map[string]any, key string) Flag {
	v, ok := rec[key]
	if !ok || v == nil {
		return FlagAbsent
	}
	if s, ok := v.(string); ok && s == Affirmative {
		return FlagOui
	}
	return FlagOther
}
