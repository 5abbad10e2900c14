package equation

import (
	"fmt"
	"kirchhoff/types"
	"slices"
)

// Status 未知量状态
// labels[i] 为元件 i 拥有的全局未知量下标,按元件顺序连续分配
type Status struct {
	variables []types.Variable // 全部未知量
	isFix     []bool           // 是否为状态量(电荷/电压)
	labels    [][]int          // 元件未知量下标块
}

// NewStatus 遍历元件分配未知量
func NewStatus(c *types.Circuit) *Status {
	status := &Status{
		variables: make([]types.Variable, 0, c.UnknownCount()),
		isFix:     make([]bool, 0, c.UnknownCount()),
		labels:    make([][]int, len(c.Elements)),
	}
	for eid, e := range c.Elements {
		start := len(status.variables)
		for _, v := range e.Variables() {
			status.variables = append(status.variables, v)
			status.isFix = append(status.isFix, v.Fixed())
		}
		label := make([]int, 0, len(status.variables)-start)
		for index := start; index < len(status.variables); index++ {
			label = append(label, index)
		}
		status.labels[eid] = label
	}
	return status
}

// Len 未知量数量
func (status *Status) Len() int { return len(status.variables) }

// Variables 全部未知量
func (status *Status) Variables() []types.Variable { return slices.Clone(status.variables) }

// IsFix 状态量标记
func (status *Status) IsFix() []bool { return slices.Clone(status.isFix) }

// Labels 元件未知量下标块
func (status *Status) Labels() [][]int {
	labels := make([][]int, len(status.labels))
	for i, l := range status.labels {
		labels[i] = slices.Clone(l)
	}
	return labels
}

// Label 元件 eid 的未知量下标块
func (status *Status) Label(eid types.ElementID) []int { return slices.Clone(status.labels[eid]) }

// FreeCount 电流未知量数量
func (status *Status) FreeCount() (n int) {
	for _, fix := range status.isFix {
		if !fix {
			n++
		}
	}
	return n
}

// String 格式化输出
func (status *Status) String() string {
	return fmt.Sprintf("Status\n%v\n%v\n%v\n", status.variables, status.isFix, status.labels)
}
