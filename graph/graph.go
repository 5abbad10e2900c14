package graph

import (
	"fmt"
	"kirchhoff/types"
	"strings"
)

// Step 回路中经过的一个元件
type Step struct {
	Element types.ElementID // 元件位置
	Aligned bool            // 是否沿元件参考方向(From -> To)经过
}

// Loop 独立回路,按遍历顺序记录
type Loop []Step

// String 格式化输出, + 表示同向, - 表示反向
func (loop Loop) String() string {
	parts := make([]string, len(loop))
	for i, s := range loop {
		sign := '+'
		if !s.Aligned {
			sign = '-'
		}
		parts[i] = fmt.Sprintf("%d%c", s.Element, sign)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Assign 元件分配状态
type Assign uint8

const (
	Unassigned Assign = iota // 未处理
	Tree                     // 生成树边
	Chord                    // 闭合回路的弦
)

// Graph 元件-节点关联图
// 节点为顶点,元件为边的无向多重图
type Graph struct {
	Connections []types.Connection // 元件连接
	NodeList    [][]Step           // NodeList[node] 为连接到该节点的元件,下标0不使用
}

// NewGraph 创建图
// 按元件顺序插入,同一元件先插入 From 再插入 To
func NewGraph(c *types.Circuit) *Graph {
	graph := &Graph{
		Connections: c.Connections,
		NodeList:    make([][]Step, c.NodeCount()+1),
	}
	for eid, conn := range c.Connections {
		graph.NodeList[conn.From] = append(graph.NodeList[conn.From], Step{Element: eid, Aligned: true})
		graph.NodeList[conn.To] = append(graph.NodeList[conn.To], Step{Element: eid, Aligned: false})
	}
	return graph
}

// NodeCount 节点数量
func (graph *Graph) NodeCount() int { return len(graph.NodeList) - 1 }

// ElementCount 元件数量
func (graph *Graph) ElementCount() int { return len(graph.Connections) }

// far 经过元件后到达的节点
func (graph *Graph) far(step Step) types.NodeID {
	if step.Aligned {
		return graph.Connections[step.Element].To
	}
	return graph.Connections[step.Element].From
}

// FindLoops 查找全部独立回路
// 每次取编号最小的未分配元件作为起点搜索,找到回路则该元件成为弦,
// 否则成为生成树边。连通图得到 E-N+1 个回路。
// 回路以其中编号最小的元件开头,且该元件沿参考方向经过
func (graph *Graph) FindLoops() []Loop {
	assign := make([]Assign, graph.ElementCount())
	loops := make([]Loop, 0)
	for {
		seed, ok := nextSeed(assign)
		if !ok {
			break
		}
		if loop, found := graph.search(seed, assign); found {
			assign[seed] = Chord
			loops = append(loops, loop.normalize())
		} else {
			assign[seed] = Tree
		}
	}
	return loops
}

// normalize 调整回路方向与起点
// 编号最小的元件反向经过时整体反转回路,再旋转使其位于第一步
func (loop Loop) normalize() Loop {
	first := 0
	for i, s := range loop {
		if s.Element < loop[first].Element {
			first = i
		}
	}
	out := make(Loop, 0, len(loop))
	if loop[first].Aligned {
		out = append(out, loop[first:]...)
		return append(out, loop[:first]...)
	}
	// 反向遍历: 从 first 开始依次向前
	for k := 0; k < len(loop); k++ {
		s := loop[(first-k+len(loop))%len(loop)]
		out = append(out, Step{Element: s.Element, Aligned: !s.Aligned})
	}
	return out
}

// nextSeed 编号最小的未分配元件
func nextSeed(assign []Assign) (types.ElementID, bool) {
	for eid, a := range assign {
		if a == Unassigned {
			return eid, true
		}
	}
	return 0, false
}

// search 从起点元件出发深度优先搜索回到起点的路径
// 只允许经过已分配为生成树边的元件,路径栈显式保存
func (graph *Graph) search(seed types.ElementID, assign []Assign) (Loop, bool) {
	if conn := graph.Connections[seed]; conn.From == conn.To {
		// 自环元件自身构成回路
		return Loop{{Element: seed, Aligned: true}}, true
	}
	visit := make([]bool, len(assign))
	visit[seed] = true
	stack := []Loop{{{Element: seed, Aligned: true}}}
	for len(stack) > 0 {
		path := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(path) == 0 {
			panic(fmt.Errorf("回路搜索出现空路径: 起点 %d", seed))
		}
		for _, next := range graph.NodeList[graph.far(path[len(path)-1])] {
			if next.Element == seed {
				// 回到起点流出节点
				if next.Aligned && len(path) > 1 {
					return path, true
				}
				continue
			}
			if visit[next.Element] || assign[next.Element] != Tree {
				continue
			}
			visit[next.Element] = true
			stack = append(stack, append(path[:len(path):len(path)], next))
		}
	}
	return nil, false
}
