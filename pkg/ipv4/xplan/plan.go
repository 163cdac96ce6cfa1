package xplan

import (
	"fmt"
	"os"

	"github.com/omeyang/subnetkit/pkg/config/xconf"
	"github.com/omeyang/subnetkit/pkg/ipv4/xsubnet"
)

// Plan 是验证后的计划文档：每个分配的 base 与 exclude 均已解析为子网。
type Plan struct {
	// Version 文档版本，当前恒为 1。
	Version int `json:"version"`

	// Allocations 按文档顺序排列的命名分配。
	Allocations []Allocation `json:"allocations"`
}

// Allocation 是一个命名的地址分配：基础块加排除列表。
type Allocation struct {
	// Name 分配名，计划内唯一且非空。
	Name string `json:"name"`

	// Base 基础块。
	Base xsubnet.Subnet `json:"base"`

	// Exclude 要从基础块中剔除的子网，可为空。
	// 允许超出基础块的条目，求值时按无操作处理。
	Exclude []xsubnet.Subnet `json:"exclude,omitempty"`
}

// document 是解码用的原始文档模式。
type document struct {
	Version     int             `koanf:"version"`
	Allocations []documentAlloc `koanf:"allocations"`
}

type documentAlloc struct {
	Name    string   `koanf:"name"`
	Base    string   `koanf:"base"`
	Exclude []string `koanf:"exclude"`
}

// Decode 解析并验证计划文档。
//
// 验证规则：
//   - version 必须为 1，缺省的 0 视为 1
//   - 至少一个分配
//   - 分配名非空且互不重复
//   - 每个 base 与 exclude 条目都能被 [xsubnet.Parse] 解析
//
// 任何违反都返回 [ErrInvalidPlan] 包装的错误；底层解析失败
// （如 YAML 语法错误）同时保留 xconf 的错误链。
func Decode(data []byte, format xconf.Format) (*Plan, error) {
	cfg, err := xconf.NewFromBytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	var doc document
	if err := cfg.Unmarshal("", &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}

	return planFromDocument(&doc)
}

// DecodeFile 读取并解码计划文件，格式由扩展名推断，
// 规则同 [xconf.DetectFormat]。
func DecodeFile(path string) (*Plan, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	format, err := xconf.DetectFormat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xplan: read plan: %w", err)
	}
	return Decode(data, format)
}

// planFromDocument 把原始文档转换为验证后的计划。
func planFromDocument(doc *document) (*Plan, error) {
	version := doc.Version
	if version == 0 {
		version = 1
	}
	if version != 1 {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidPlan, doc.Version)
	}

	if len(doc.Allocations) == 0 {
		return nil, fmt.Errorf("%w: no allocations", ErrInvalidPlan)
	}

	seen := make(map[string]struct{}, len(doc.Allocations))
	allocs := make([]Allocation, 0, len(doc.Allocations))
	for i, da := range doc.Allocations {
		if da.Name == "" {
			return nil, fmt.Errorf("%w: allocation %d has empty name", ErrInvalidPlan, i)
		}
		if _, dup := seen[da.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate allocation name %q", ErrInvalidPlan, da.Name)
		}
		seen[da.Name] = struct{}{}

		base, err := xsubnet.Parse(da.Base)
		if err != nil {
			return nil, fmt.Errorf("%w: allocation %q: base: %w", ErrInvalidPlan, da.Name, err)
		}

		var exclude []xsubnet.Subnet
		if len(da.Exclude) > 0 {
			exclude = make([]xsubnet.Subnet, 0, len(da.Exclude))
			for _, raw := range da.Exclude {
				s, err := xsubnet.Parse(raw)
				if err != nil {
					return nil, fmt.Errorf("%w: allocation %q: exclude %q: %w", ErrInvalidPlan, da.Name, raw, err)
				}
				exclude = append(exclude, s)
			}
		}

		allocs = append(allocs, Allocation{Name: da.Name, Base: base, Exclude: exclude})
	}

	return &Plan{Version: version, Allocations: allocs}, nil
}
