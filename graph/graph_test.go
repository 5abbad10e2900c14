package graph

import (
	"kirchhoff/types"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCircuit 由连接列表创建电阻电路
func newCircuit(conns ...[2]int) *types.Circuit {
	c := &types.Circuit{}
	for i, conn := range conns {
		c.Add(types.Resistor{Resistance: 1}, conn[0], conn[1], i+1)
	}
	return c
}

// assertClosed 校验回路首尾相接
func assertClosed(t *testing.T, g *Graph, loop Loop) {
	t.Helper()
	require.NotEmpty(t, loop)
	near := func(s Step) types.NodeID {
		if s.Aligned {
			return g.Connections[s.Element].From
		}
		return g.Connections[s.Element].To
	}
	for i, s := range loop {
		next := loop[(i+1)%len(loop)]
		assert.Equal(t, near(next), g.far(s), "回路 %v 在第 %d 步断开", loop, i)
	}
}

func TestNewGraphNodeList(t *testing.T) {
	g := NewGraph(newCircuit([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}))
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 3, g.ElementCount())
	assert.Empty(t, g.NodeList[0])
	assert.Equal(t, []Step{{0, true}, {2, false}}, g.NodeList[1])
	assert.Equal(t, []Step{{0, false}, {1, true}}, g.NodeList[2])
	assert.Equal(t, []Step{{1, false}, {2, true}}, g.NodeList[3])
}

func TestFindLoopsSeries(t *testing.T) {
	// R: 1->2, V: 2->1
	g := NewGraph(newCircuit([2]int{1, 2}, [2]int{2, 1}))
	loops := g.FindLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, Loop{{0, true}, {1, true}}, loops[0])
	assertClosed(t, g, loops[0])
}

func TestFindLoopsBridge(t *testing.T) {
	// 三角形回路加一条悬挂的桥
	g := NewGraph(newCircuit([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{3, 4}))
	loops := g.FindLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, Loop{{0, true}, {1, true}, {2, true}}, loops[0])
	for _, s := range loops[0] {
		assert.NotEqual(t, 3, s.Element, "桥不应出现在回路中")
	}
}

func TestFindLoopsParallel(t *testing.T) {
	g := NewGraph(newCircuit([2]int{1, 2}, [2]int{1, 2}, [2]int{1, 2}))
	loops := g.FindLoops()
	require.Len(t, loops, 2)
	assert.Equal(t, Loop{{0, true}, {1, false}}, loops[0])
	assert.Equal(t, Loop{{0, true}, {2, false}}, loops[1])
	for _, l := range loops {
		assertClosed(t, g, l)
	}
}

func TestFindLoopsSelfLoop(t *testing.T) {
	g := NewGraph(newCircuit([2]int{1, 1}, [2]int{1, 2}, [2]int{2, 1}))
	loops := g.FindLoops()
	require.Len(t, loops, 2)
	assert.Equal(t, Loop{{0, true}}, loops[0])
	assert.Equal(t, Loop{{1, true}, {2, true}}, loops[1])
}

func TestFindLoopsDisconnected(t *testing.T) {
	g := NewGraph(newCircuit([2]int{1, 2}, [2]int{2, 1}, [2]int{3, 4}, [2]int{4, 3}))
	loops := g.FindLoops()
	require.Len(t, loops, 2)
	assert.Equal(t, Loop{{0, true}, {1, true}}, loops[0])
	assert.Equal(t, Loop{{2, true}, {3, true}}, loops[1])
}

func TestFindLoopsTwoEars(t *testing.T) {
	// 方形回路上两条经过中间节点的弦,需要 8-6+1 个独立回路
	g := NewGraph(newCircuit(
		[2]int{1, 2}, [2]int{2, 3}, [2]int{3, 4}, [2]int{4, 1},
		[2]int{1, 5}, [2]int{5, 3}, [2]int{2, 6}, [2]int{6, 4},
	))
	loops := g.FindLoops()
	require.Len(t, loops, 3)
	for _, l := range loops {
		assertClosed(t, g, l)
	}
}

func TestFindLoopsOrientation(t *testing.T) {
	// 元件0与回路方向相反: 2->1, 2->3, 3->1
	g := NewGraph(newCircuit([2]int{2, 1}, [2]int{2, 3}, [2]int{3, 1}))
	loops := g.FindLoops()
	require.Len(t, loops, 1)
	assert.Equal(t, Loop{{0, true}, {2, false}, {1, false}}, loops[0])
	assertClosed(t, g, loops[0])
}

func TestLoopNormalize(t *testing.T) {
	tests := []struct {
		name string
		loop Loop
		want Loop
	}{
		{"已规范", Loop{{0, true}, {1, false}}, Loop{{0, true}, {1, false}}},
		{"旋转", Loop{{2, true}, {0, true}, {1, true}}, Loop{{0, true}, {1, true}, {2, true}}},
		{"反转", Loop{{1, true}, {0, false}}, Loop{{0, true}, {1, false}}},
		{"反转并旋转", Loop{{2, true}, {0, false}, {1, true}}, Loop{{0, true}, {2, false}, {1, false}}},
		{"自环", Loop{{3, true}}, Loop{{3, true}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loop.normalize())
		})
	}
}

func TestFindLoopsDeterministic(t *testing.T) {
	c := newCircuit([2]int{1, 2}, [2]int{2, 3}, [2]int{3, 1}, [2]int{1, 3}, [2]int{2, 1})
	assert.Equal(t, NewGraph(c).FindLoops(), NewGraph(c).FindLoops())
}

func TestFindLoopsRandom(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		nodes := 2 + r.Intn(8)
		edges := 1 + r.Intn(16)
		conns := make([][2]int, 0, edges)
		for i := 0; i < edges; i++ {
			from := 1 + r.Intn(nodes)
			to := 1 + r.Intn(nodes)
			conns = append(conns, [2]int{from, to})
		}
		c := newCircuit(conns...)
		g := NewGraph(c)
		loops := g.FindLoops()
		// 期望回路数 E - N + C, 孤立节点各自算一个连通分量
		parent := make([]int, c.NodeCount()+1)
		for i := range parent {
			parent[i] = i
		}
		var find func(int) int
		find = func(x int) int {
			if parent[x] != x {
				parent[x] = find(parent[x])
			}
			return parent[x]
		}
		components := c.NodeCount()
		for _, conn := range c.Connections {
			if a, b := find(conn.From), find(conn.To); a != b {
				parent[a] = b
				components--
			}
		}
		want := len(conns) - c.NodeCount() + components
		require.Len(t, loops, want, "第 %d 轮: %v", round, conns)
		for _, l := range loops {
			assertClosed(t, g, l)
			assert.True(t, l[0].Aligned, "回路 %v 首元件应同向", l)
			for _, s := range l[1:] {
				assert.Less(t, l[0].Element, s.Element, "回路 %v 应以最小编号元件开头", l)
			}
		}
	}
}

func TestLoopString(t *testing.T) {
	assert.Equal(t, "[1+ 0-]", Loop{{1, true}, {0, false}}.String())
}
