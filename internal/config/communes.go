package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// 公社作业状态
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
	StatusPending   = "pending"
)

// CommuneOperation：公社作业状态表中的一项
type CommuneOperation struct {
	Name   string `yaml:"name" validate:"required"`
	Status string `yaml:"status" validate:"required,oneof=active completed pending"`
}

// HasOperations：pending 状态的公社在门户中不展示地块详情
func (o CommuneOperation) HasOperations() bool { return o.Status != StatusPending }

// OperationTable：公社作业状态表（data/communes.yaml）
// 背景：门户按此表为公社着色并决定是否提供详情入口；校验时用于提示“有地块但标记为未作业”的公社。
// 约束：按名称大写匹配，与门户的查找方式一致；名称不得重复。
type OperationTable struct {
	Communes []CommuneOperation `yaml:"communes" validate:"required,min=1,unique=Name,dive"`

	byName map[string]CommuneOperation
}

var validate = validator.New()

// ErrInvalidTable：状态表内容不符合约束
var ErrInvalidTable = errors.New("invalid commune operation table")

// LoadOperationTable：读取并校验状态表
// 返回：文件不存在时返回 (nil, nil)，表示不做作业状态检查。
func LoadOperationTable(path string) (*OperationTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return ParseOperationTable(b)
}

// ParseOperationTable 从 YAML 内容构建状态表
func ParseOperationTable(b []byte) (*OperationTable, error) {
	var t OperationTable
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	if err := validate.Struct(&t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	t.byName = make(map[string]CommuneOperation, len(t.Communes))
	for _, c := range t.Communes {
		k := strings.ToUpper(c.Name)
		if _, dup := t.byName[k]; dup {
			return nil, fmt.Errorf("%w: duplicate commune %q", ErrInvalidTable, c.Name)
		}
		t.byName[k] = c
	}
	return &t, nil
}

// Lookup 按大写名称查找公社
func (t *OperationTable) Lookup(name string) (CommuneOperation, bool) {
	if t == nil {
		return CommuneOperation{}, false
	}
	c, ok := t.byName[strings.ToUpper(name)]
	return c, ok
}
