package main

import (
	"log/slog"

	"kirchhoff"
	"kirchhoff/config"

	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	configPath string
	format     string
	output     string
	logLevel   string
	addr       string

	cfg    *config.Config
	logger *slog.Logger

	rootCmd = &cobra.Command{
		Use:   "kirchhoff",
		Short: "将电路网表组装为基尔霍夫方程组",
		Long: `kirchhoff 读取由电阻、电容、理想电压源组成的电路网表,
输出未知量列表、基尔霍夫矩阵(节点电流方程与独立回路电压方程)以及元件本构矩阵。`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadConfig,
	}

	assembleCmd = &cobra.Command{
		Use:     "assemble [netlist]",
		Short:   "组装方程组并输出",
		Aliases: []string{"a"},
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return kirchhoff.Run(cfg, cmd.OutOrStdout(), logger)
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch [netlist]",
		Short: "监视网表文件,变化时重新组装",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return watch(cmd.Context(), cfg, cmd.OutOrStdout(), logger)
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve [netlist]",
		Short: "以网页发布电路图与矩阵热力图",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), cfg, addr, logger)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultFile, "配置文件")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "日志级别 (debug/info/warn/error)")
	for _, cmd := range []*cobra.Command{assembleCmd, watchCmd} {
		cmd.Flags().StringVarP(&format, "format", "f", "", "输出格式 (text/json/html/png/svg)")
		cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件")
	}
	serveCmd.Flags().StringVar(&addr, "addr", "localhost:8080", "监听地址")
	rootCmd.AddCommand(assembleCmd, watchCmd, serveCmd)
}

// loadConfig 读取配置文件并应用命令行参数
func loadConfig(cmd *cobra.Command, args []string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if len(args) > 0 {
		c.Input = args[0]
	}
	if format != "" {
		c.Format = format
	}
	if output != "" {
		c.Output = output
	}
	if logLevel != "" {
		c.Log.Level = logLevel
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	logger = setupLogger(cfg.Level(), cfg.Log.Color)
	logger.Debug("配置加载完成", "config", configPath, "input", cfg.Input, "format", cfg.Format)
	return nil
}
