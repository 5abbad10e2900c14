package debug

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	etypes "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页图表
type Charts struct {
	*Record
}

// NewCharts 创建图表
func NewCharts(record *Record) *Charts { return &Charts{Record: record} }

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(
		c.circuitGraph(),
		c.heatMap("基尔霍夫矩阵", "节点电流方程与回路电压方程", c.Kirchhoff, c.equationNames()),
		c.heatMap("本构矩阵", "元件本构方程", c.Mitigation, c.Variables),
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

// Error 输出错误
func (c *Charts) Error(err error) { slog.Error("图表渲染失败", "err", err) }

// circuitGraph 电路连接网络图
func (c *Charts) circuitGraph() *charts.Graph {
	graph := charts.NewGraph()
	graph.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: etypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "电路节点信息",
			Subtitle: "电路连接节点网络图",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
	)
	graph.SetSeriesOptions(
		charts.WithEmphasisOpts(opts.Emphasis{
			Label: &opts.Label{
				Show:     opts.Bool(true),
				Color:    "black",
				Position: "left",
			},
		}),
		charts.WithLineStyleOpts(opts.LineStyle{
			Curveness: 0.3,
		}),
	)
	graphNodes := make([]opts.GraphNode, 0, len(c.Elements)+c.Nodes)
	graphLink := make([]opts.GraphLink, 0, 2*len(c.Elements))
	for _, name := range c.Elements {
		graphNodes = append(graphNodes, opts.GraphNode{
			Name:     name,
			Category: 0,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
	}
	for node := 1; node <= c.Nodes; node++ {
		graphNodes = append(graphNodes, opts.GraphNode{
			Name:     nodeName(node),
			Category: 1,
			Tooltip:  &opts.Tooltip{Show: opts.Bool(true)},
		})
	}
	for i, conn := range c.Connections {
		// 电流从 From 流入元件,从元件流向 To
		graphLink = append(graphLink,
			opts.GraphLink{Source: nodeName(conn[0]), Target: c.Elements[i], Value: 1},
			opts.GraphLink{Source: c.Elements[i], Target: nodeName(conn[1]), Value: -1},
		)
	}
	graph.AddSeries("电路列表", graphNodes, graphLink,
		charts.WithGraphChartOpts(opts.GraphChart{
			Categories: []*opts.GraphCategory{
				{Name: "元件", ItemStyle: &opts.ItemStyle{Color: "#c71979b7"}},
				{Name: "节点", ItemStyle: &opts.ItemStyle{Color: "#1987c7b7"}},
			},
			Roam:               opts.Bool(true),
			Force:              &opts.GraphForce{Repulsion: 80},
			EdgeLabel:          &opts.EdgeLabel{Show: opts.Bool(true)},
			FocusNodeAdjacency: opts.Bool(true),
		}))
	return graph
}

// heatMap 矩阵热力图,列为未知量,行为方程
func (c *Charts) heatMap(title, subtitle string, rows [][]float64, rowNames []string) *charts.HeatMap {
	items := make([]opts.HeatMapData, 0)
	lo, hi := 0.0, 0.0
	for i, row := range rows {
		for j, v := range row {
			lo, hi = min(lo, v), max(hi, v)
			items = append(items, opts.HeatMapData{Value: [3]interface{}{j, i, v}})
		}
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: etypes.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "category",
			Data: c.Variables,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "category",
			Data: rowNames,
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(lo),
			Max:        float32(hi),
			InRange: &opts.VisualMapInRange{
				Color: []string{"#313695", "#ffffbf", "#a50026"},
			},
		}),
	)
	hm.SetXAxis(c.Variables).AddSeries(title, items)
	return hm
}

// equationNames 基尔霍夫矩阵行名称
func (c *Charts) equationNames() []string {
	names := make([]string, len(c.Kirchhoff))
	for i := range names {
		if i < c.NodeRows {
			names[i] = nodeName(i + 1)
		} else {
			names[i] = fmt.Sprintf("Loop(%d)", i-c.NodeRows+1)
		}
	}
	return names
}

func nodeName(node int) string { return fmt.Sprintf("Node(%d)", node) }
