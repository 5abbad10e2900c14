package load

import (
	"bytes"
	"kirchhoff/types"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seriesNetlist = `R1(2) : 1,2
V2(5) : 2,1
`

func TestLoadString(t *testing.T) {
	c, err := LoadString(seriesNetlist)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, types.Resistor{Resistance: 2}, c.Elements[0])
	assert.Equal(t, types.VoltageSource{Voltage: 5}, c.Elements[1])
	assert.Equal(t, []types.Connection{{From: 1, To: 2}, {From: 2, To: 1}}, c.Connections)
	assert.Equal(t, []int{1, 2}, c.Labels)
}

func TestLoadCommentsAndSpacing(t *testing.T) {
	c, err := LoadString(`# 串联 RC
// 注释

  C3( 1e-3 ) :  1 , 2
r4(0.5):2,1
`)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	assert.Equal(t, types.Capacitor{Capacitance: 1e-3}, c.Elements[0])
	assert.Equal(t, types.Resistor{Resistance: 0.5}, c.Elements[1])
	assert.Equal(t, []int{3, 4}, c.Labels)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		netlist string
	}{
		{"未知类型", "X1(2) : 1,2\nR2(1) : 2,1"},
		{"格式错误", "R1 2 : 1,2"},
		{"缺少节点", "R1(2) : 1"},
		{"节点为0", "R1(2) : 0,1\nR2(2) : 1,0"},
		{"节点不连续", "R1(2) : 1,3\nR2(2) : 3,1"},
		{"电容为0", "C1(0) : 1,2\nR2(2) : 2,1"},
		{"空网表", "\n# 空\n"},
		{"编号重复", "R1(2) : 1,2\nR1(3) : 2,1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadString(tt.netlist)
			assert.ErrorIs(t, err, types.ErrInput)
		})
	}
}

func TestLoadErrorLine(t *testing.T) {
	_, err := LoadString("R1(2) : 1,2\n\nbad line\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "第 3 行")
}

func TestExportRoundTrip(t *testing.T) {
	c, err := LoadString("V1(10) : 1,2\nR2(100) : 2,3\nC3(1e-06) : 3,1\n")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Export(&buf, c))
	assert.Equal(t, "V1(10) : 1,2\nR2(100) : 2,3\nC3(1e-06) : 3,1\n", buf.String())
	again, err := LoadString(buf.String())
	require.NoError(t, err)
	assert.Equal(t, c, again)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte(seriesNetlist), 0o644))
	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.ErrorIs(t, err, types.ErrInput)
}
