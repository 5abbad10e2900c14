package types

import (
	"fmt"
	"math"
	"strings"
)

// NodeID 节点,从1开始编号
type NodeID = int

// ElementID 元件在电路中的位置
type ElementID = int

// Connection 元件连接,电流正方向 From -> To
type Connection struct {
	From NodeID // 流出节点
	To   NodeID // 流入节点
}

// Circuit 解析后的电路
// Elements、Connections、Labels 按元件位置一一对应
type Circuit struct {
	Elements    []Element    // 元件列表
	Connections []Connection // 连接列表
	Labels      []int        // 显示编号,如 R3 -> 3
}

// Add 追加元件
func (c *Circuit) Add(e Element, from, to NodeID, label int) {
	c.Elements = append(c.Elements, e)
	c.Connections = append(c.Connections, Connection{From: from, To: to})
	c.Labels = append(c.Labels, label)
}

// Len 元件数量
func (c *Circuit) Len() int { return len(c.Elements) }

// NodeCount 节点数量,即出现过的最大节点编号
func (c *Circuit) NodeCount() int {
	n := 0
	for _, conn := range c.Connections {
		n = max(n, conn.From, conn.To)
	}
	return n
}

// UnknownCount 全部未知量数量
func (c *Circuit) UnknownCount() (n int) {
	for _, e := range c.Elements {
		n += e.UnknownCount()
	}
	return n
}

// Validate 校验电路结构
// 节点编号必须从1开始连续,否则节点方程会出现空行
func (c *Circuit) Validate() error {
	if len(c.Elements) != len(c.Connections) || len(c.Elements) != len(c.Labels) {
		return fmt.Errorf("%w: 元件(%d)、连接(%d)、编号(%d)数量不一致",
			ErrInput, len(c.Elements), len(c.Connections), len(c.Labels))
	}
	if len(c.Elements) == 0 {
		return fmt.Errorf("%w: 电路为空", ErrInput)
	}
	type name struct {
		kind  ElementType
		label int
	}
	names := make(map[name]int, len(c.Elements))
	for i, e := range c.Elements {
		n := name{kind: e.Type(), label: c.Labels[i]}
		if prev, ok := names[n]; ok {
			return fmt.Errorf("%w: 元件 %s%d 重复定义(第 %d 与第 %d 个元件)",
				ErrInput, e.Type(), c.Labels[i], prev+1, i+1)
		}
		names[n] = i
	}
	used := make([]bool, c.NodeCount()+1)
	for i, conn := range c.Connections {
		if conn.From < FirstNodeID || conn.To < FirstNodeID {
			return fmt.Errorf("%w: 元件 %d 节点编号必须从%d开始: %d,%d",
				ErrInput, i, FirstNodeID, conn.From, conn.To)
		}
		used[conn.From] = true
		used[conn.To] = true
	}
	for node := FirstNodeID; node < len(used); node++ {
		if !used[node] {
			return fmt.Errorf("%w: 节点 %d 未被任何元件连接", ErrInput, node)
		}
	}
	for i, e := range c.Elements {
		for _, v := range e.VoltageDrop() {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: 元件 %s%d 参数无效: %g", ErrInput, e.Type(), c.Labels[i], e.Value())
			}
		}
	}
	return nil
}

// String 电路连接列表
func (c *Circuit) String() string {
	var sb strings.Builder
	for i, e := range c.Elements {
		fmt.Fprintf(&sb, "%s%d(%.2f) is connected between %d, %d\n",
			e.Type(), c.Labels[i], e.Value(), c.Connections[i].From, c.Connections[i].To)
	}
	return sb.String()
}
