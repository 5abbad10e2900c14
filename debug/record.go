package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"kirchhoff/equation"
	"kirchhoff/types"
)

// Record 组装结果快照
type Record struct {
	Elements    []string    `json:"elements"`    // 元件列表,如 R1
	Connections [][2]int    `json:"connections"` // 连接信息
	Nodes       int         `json:"nodes"`       // 节点数量
	Variables   []string    `json:"variables"`   // 未知量
	IsFix       []bool      `json:"is_fix"`      // 状态量标记
	Labels      [][]int     `json:"labels"`      // 元件未知量下标块
	NodeRows    int         `json:"node_rows"`   // 节点方程行数
	Loops       [][]string  `json:"loops"`       // 独立回路
	Kirchhoff   [][]float64 `json:"kirchhoff"`   // 基尔霍夫矩阵
	Mitigation  [][]float64 `json:"mitigation"`  // 本构矩阵
}

// NewRecord 记录电路与方程组
func NewRecord(c *types.Circuit, p *equation.Problem) *Record {
	record := &Record{
		Elements:    make([]string, len(c.Elements)),
		Connections: make([][2]int, len(c.Connections)),
		Nodes:       c.NodeCount(),
		IsFix:       p.Status().IsFix(),
		Labels:      p.Status().Labels(),
		NodeRows:    p.NodeRows(),
		Kirchhoff:   p.KirchhoffRows(),
		Mitigation:  p.MitigationRows(),
	}
	for i, e := range c.Elements {
		record.Elements[i] = elementName(c, i)
		record.Connections[i] = [2]int{c.Connections[i].From, c.Connections[i].To}
		for _, v := range e.Variables() {
			record.Variables = append(record.Variables, fmt.Sprintf("%s_%s", v.Kind, record.Elements[i]))
		}
	}
	for _, loop := range p.Loops() {
		steps := make([]string, len(loop))
		for i, s := range loop {
			sign := "+"
			if !s.Aligned {
				sign = "-"
			}
			steps[i] = sign + record.Elements[s.Element]
		}
		record.Loops = append(record.Loops, steps)
	}
	return record
}

// Render 格式和输出内容
func (record *Record) Render(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(record)
}

// elementName 元件显示名称
func elementName(c *types.Circuit, eid types.ElementID) string {
	return fmt.Sprintf("%s%d", c.Elements[eid].Type(), c.Labels[eid])
}
