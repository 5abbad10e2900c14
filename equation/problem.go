package equation

import (
	"fmt"
	"kirchhoff/graph"
	"kirchhoff/types"
	"slices"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Problem 组装完成的方程组
// 构建完成后只读
type Problem struct {
	status     *Status      // 未知量状态
	nodeRows   int          // 节点方程行数
	loops      []graph.Loop // 独立回路
	kirchhoff  *mat.Dense   // 基尔霍夫矩阵
	mitigation *mat.Dense   // 本构矩阵
}

// NewProblem 由电路组装方程组
// 电路应已通过 types.Circuit.Validate 校验
func NewProblem(c *types.Circuit) *Problem {
	status := NewStatus(c)
	loops := graph.NewGraph(c).FindLoops()
	return &Problem{
		status:     status,
		nodeRows:   c.NodeCount() - 1,
		loops:      loops,
		kirchhoff:  KirchhoffMatrix(c, status, loops),
		mitigation: MitigationMatrix(c, status),
	}
}

// Status 未知量状态
func (p *Problem) Status() *Status { return p.status }

// NodeRows 节点方程行数
func (p *Problem) NodeRows() int { return p.nodeRows }

// LoopRows 回路方程行数
func (p *Problem) LoopRows() int { return len(p.loops) }

// Loops 独立回路
func (p *Problem) Loops() []graph.Loop {
	loops := make([]graph.Loop, len(p.loops))
	for i, l := range p.loops {
		loops[i] = slices.Clone(l)
	}
	return loops
}

// Kirchhoff 基尔霍夫矩阵副本
func (p *Problem) Kirchhoff() *mat.Dense { return mat.DenseCopyOf(p.kirchhoff) }

// Mitigation 本构矩阵副本
func (p *Problem) Mitigation() *mat.Dense { return mat.DenseCopyOf(p.mitigation) }

// KirchhoffRows 基尔霍夫矩阵按行输出
func (p *Problem) KirchhoffRows() [][]float64 { return Rows(p.kirchhoff) }

// MitigationRows 本构矩阵按行输出
func (p *Problem) MitigationRows() [][]float64 { return Rows(p.mitigation) }

// String 格式化输出
func (p *Problem) String() string {
	var sb strings.Builder
	sb.WriteString(p.status.String())
	sb.WriteString("Kirchhoff matrix\n")
	writeMatrix(&sb, p.kirchhoff)
	sb.WriteString("Mitigation matrix\n")
	writeMatrix(&sb, p.mitigation)
	return sb.String()
}

// Rows 将矩阵转换为按行的二维切片
func Rows(m mat.Matrix) [][]float64 {
	r, c := m.Dims()
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := range rows[i] {
			rows[i][j] = m.At(i, j)
		}
	}
	return rows
}

func writeMatrix(sb *strings.Builder, m mat.Matrix) {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			fmt.Fprintf(sb, "%+.2f    ", m.At(i, j))
		}
		sb.WriteByte('\n')
	}
}
