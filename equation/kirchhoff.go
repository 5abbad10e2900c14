package equation

import (
	"fmt"
	"kirchhoff/graph"
	"kirchhoff/types"

	"gonum.org/v1/gonum/mat"
)

// KirchhoffMatrix 组装基尔霍夫矩阵
// 前 N-1 行为节点电流方程,最大编号节点作为参考节点省略;
// 其后每个独立回路一行电压方程。
// 连通电路共 E 行,列数为全部未知量数量
func KirchhoffMatrix(c *types.Circuit, status *Status, loops []graph.Loop) *mat.Dense {
	nodes := c.NodeCount()
	loopRow := nodes - 1
	m := mat.NewDense(loopRow+len(loops), status.Len(), nil)
	// 节点方程
	for eid, e := range c.Elements {
		col := status.labels[eid][e.CurrentIndex()]
		conn := c.Connections[eid]
		stampNode(m, nodes, conn.From, col, 1)
		stampNode(m, nodes, conn.To, col, -1)
	}
	// 回路方程
	for i, loop := range loops {
		row := loopRow + i
		for _, step := range loop {
			label := status.labels[step.Element]
			drop := c.Elements[step.Element].VoltageDrop()
			if len(drop) != len(label) {
				panic(fmt.Errorf("元件 %d 压降系数(%d)与未知量(%d)数量不一致", step.Element, len(drop), len(label)))
			}
			for k, v := range drop {
				if !step.Aligned {
					v = -v
				}
				m.Set(row, label[k], v)
			}
		}
	}
	return m
}

// stampNode 在节点行叠加电流系数,参考节点忽略
func stampNode(m *mat.Dense, reference, node types.NodeID, col int, v float64) {
	if node == reference {
		return
	}
	row := node - types.FirstNodeID
	m.Set(row, col, m.At(row, col)+v)
}
