// Package kirchhoff 将电路网表转换为描述电路瞬时状态的线性方程组。
//
// 组装流程: 网表 -> types.Circuit -> equation.Status -> 基尔霍夫矩阵 + 本构矩阵 -> equation.Problem
package kirchhoff

import (
	"bufio"
	"fmt"
	"io"
	"kirchhoff/config"
	"kirchhoff/debug"
	"kirchhoff/equation"
	"kirchhoff/load"
	"kirchhoff/types"
	"log/slog"
	"os"

	"gonum.org/v1/plot/vg"
)

// Circuit 电路方程组装器
type Circuit struct {
	*types.Circuit
	logger *slog.Logger
}

// NewCircuit 初始化
func NewCircuit(logger *slog.Logger) *Circuit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Circuit{Circuit: &types.Circuit{}, logger: logger}
}

// Load 加载网表文件
func (cir *Circuit) Load(filename string) error {
	c, err := load.LoadFile(filename)
	if err != nil {
		return err
	}
	cir.Circuit = c
	cir.logger.Debug("网表加载完成", "file", filename, "elements", c.Len(), "nodes", c.NodeCount())
	return nil
}

// LoadReader 加载网表
func (cir *Circuit) LoadReader(r io.Reader) error {
	c, err := load.LoadReader(r)
	if err != nil {
		return err
	}
	cir.Circuit = c
	return nil
}

// Export 导出网表文件
func (cir *Circuit) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	return load.Export(file, cir.Circuit)
}

// Problem 组装方程组
func (cir *Circuit) Problem() (*equation.Problem, error) {
	if err := cir.Validate(); err != nil {
		return nil, err
	}
	p := equation.NewProblem(cir.Circuit)
	rows, cols := p.Kirchhoff().Dims()
	cir.logger.Debug("方程组装完成",
		"unknowns", p.Status().Len(),
		"node_rows", p.NodeRows(),
		"loop_rows", p.LoopRows(),
		"kirchhoff", fmt.Sprintf("%dx%d", rows, cols))
	if rows != p.Status().FreeCount() {
		cir.logger.Warn("电路不连通,方程行数与电流未知量数量不一致",
			"rows", rows, "currents", p.Status().FreeCount())
	}
	return p, nil
}

// Render 按格式输出方程组
func (cir *Circuit) Render(w io.Writer, p *equation.Problem, format string, plot config.Plot) error {
	switch format {
	case config.FormatText:
		writer := bufio.NewWriter(w)
		if err := debug.WriteText(writer, cir.Circuit, p); err != nil {
			return err
		}
		return writer.Flush()
	case config.FormatJSON:
		return debug.NewRecord(cir.Circuit, p).Render(w)
	case config.FormatHTML:
		return debug.NewCharts(debug.NewRecord(cir.Circuit, p)).Render(w)
	case config.FormatPNG, config.FormatSVG:
		return debug.PlotMatrix(w, p.Kirchhoff(), debug.PlotOptions{
			Title:  "Kirchhoff matrix",
			Width:  vg.Length(plot.Width) * vg.Centimeter,
			Height: vg.Length(plot.Height) * vg.Centimeter,
			Format: format,
		})
	}
	return fmt.Errorf("%w: 未知输出格式 %q", config.ErrConfig, format)
}

// Run 按配置加载、组装并输出
func Run(cfg *config.Config, w io.Writer, logger *slog.Logger) error {
	cir := NewCircuit(logger)
	if err := cir.Load(cfg.Input); err != nil {
		return err
	}
	p, err := cir.Problem()
	if err != nil {
		return err
	}
	if cfg.Output == "" {
		return cir.Render(w, p, cfg.Format, cfg.Plot)
	}
	file, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	if err := cir.Render(file, p, cfg.Format, cfg.Plot); err != nil {
		file.Close()
		return err
	}
	cir.logger.Info("结果已写入", "file", cfg.Output, "format", cfg.Format)
	return file.Close()
}
