package debug

import (
	"io"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// grid 将矩阵适配为热力图网格,第0行在最上方
type grid struct{ m mat.Matrix }

func (g grid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g grid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g grid) X(c int) float64 { return float64(c) }
func (g grid) Y(r int) float64 { return float64(r) }

// PlotOptions 图像参数
type PlotOptions struct {
	Title  string    // 标题
	Width  vg.Length // 宽度
	Height vg.Length // 高度
	Format string    // png, svg, pdf ...
}

// PlotMatrix 输出矩阵热力图
func PlotMatrix(w io.Writer, m mat.Matrix, options PlotOptions) error {
	p := plot.New()
	p.Title.Text = options.Title
	p.X.Label.Text = "unknown"
	p.Y.Label.Text = "equation"
	h := plotter.NewHeatMap(grid{m: m}, palette.Heat(12, 1))
	if h.Min == h.Max {
		// 全零矩阵时调色板区间为空
		h.Min, h.Max = h.Min-1, h.Max+1
	}
	p.Add(h)
	writer, err := p.WriterTo(options.Width, options.Height, options.Format)
	if err != nil {
		return err
	}
	_, err = writer.WriteTo(w)
	return err
}
