package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"

	"kirchhoff/types"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if errors.Is(err, types.ErrInput) {
			slog.Error("Input Error", "err", err)
		} else {
			slog.Error("执行失败", "err", err)
		}
		os.Exit(1)
	}
}

// setupLogger 初始化彩色日志
func setupLogger(level slog.Level, color bool) *slog.Logger {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !color || !isatty.IsTerminal(os.Stderr.Fd()),
	}))
	slog.SetDefault(logger)
	return logger
}
