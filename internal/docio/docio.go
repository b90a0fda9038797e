// 包 docio：读取单个 JSON 文档；负责文件句柄的获取与释放，并把失败归类为哨兵错误
package docio

import (
	"boundou-check/internal/diag"
	"boundou-check/internal/logger"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

var (
	// ErrNotFound：文件不存在
	ErrNotFound = errors.New("document not found")
	// ErrUnreadable：文件存在但无法读取（权限、目录、I/O）
	ErrUnreadable = errors.New("document unreadable")
	// ErrMalformed：内容不是合法 JSON
	ErrMalformed = errors.New("document malformed")
)

// Load：打开、完整读取、关闭后解析 JSON 文档
// 背景：两个校验器共享同一套失败分类，便于输出一致的诊断。
// 约束：任何退出路径都会关闭文件；返回值为 encoding/json 的通用表示（map[string]any / []any / 标量）。
func Load(path string) (any, error) {
	b, err := readAll(path)
	if err != nil {
		return nil, err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		logger.L().Debug("docio_parse_error", "path", path, "err", err)
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return v, nil
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	logger.L().Debug("docio_read_ok", "path", path, "bytes", len(b))
	return b, nil
}

// Kind 返回 JSON 值的类型名，用于“期望 X，实际 Y”类提示
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// Str 取字符串字段；缺失或非字符串时返回空串
func Str(m map[string]any, k string) string {
	if v, ok := m[k].(string); ok {
		return v
	}
	return ""
}

// Detail 去掉哨兵前缀，仅保留底层原因
func Detail(err error) string {
	msg := err.Error()
	for _, s := range []error{ErrNotFound, ErrUnreadable, ErrMalformed} {
		if errors.Is(err, s) {
			return strings.TrimPrefix(msg, s.Error()+": ")
		}
	}
	return msg
}

// Diagnose：把 Load 的失败转换为一条错误诊断
// 约束：缺失/格式错误/读取失败三类使用不同 Code 与提示文本
func Diagnose(l *diag.List, path string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		l.Error("file_missing", "Fichier non trouvé: "+path)
	case errors.Is(err, ErrMalformed):
		l.Error("json_invalid", "Erreur JSON: "+Detail(err))
	default:
		l.Error("read_error", "Erreur de lecture: "+Detail(err))
	}
}
