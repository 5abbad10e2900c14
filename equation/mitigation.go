package equation

import (
	"fmt"
	"kirchhoff/types"

	"gonum.org/v1/gonum/mat"
)

// MitigationMatrix 组装本构矩阵
// 每个元件的本构块按其未知量下标放在对角块上,
// 块的第 r 行表示第 r 个未知量对时间的导数
func MitigationMatrix(c *types.Circuit, status *Status) *mat.Dense {
	n := status.Len()
	m := mat.NewDense(n, n, nil)
	for eid, e := range c.Elements {
		label := status.labels[eid]
		block := e.MitigationBlock()
		if len(block) != len(label) {
			panic(fmt.Errorf("元件 %d 本构块(%d)与未知量(%d)数量不一致", eid, len(block), len(label)))
		}
		for r, row := range block {
			for k, v := range row {
				m.Set(label[r], label[k], v)
			}
		}
	}
	return m
}
