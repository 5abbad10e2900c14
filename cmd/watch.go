package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"kirchhoff"
	"kirchhoff/config"
	"kirchhoff/types"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow 合并编辑器连续写入
const debounceWindow = 100 * time.Millisecond

// watch 监视网表所在目录,网表变化后重新组装
// 输入错误只记录日志,继续监视
func watch(ctx context.Context, cfg *config.Config, w io.Writer, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	target, err := filepath.Abs(cfg.Input)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	run := func() {
		err := kirchhoff.Run(cfg, w, logger)
		switch {
		case errors.Is(err, types.ErrInput):
			logger.Warn("Input Error", "file", cfg.Input, "err", err)
		case err != nil:
			logger.Error("组装失败", "file", cfg.Input, "err", err)
		}
	}
	run()
	logger.Info("开始监视网表", "file", target)
	timer := time.NewTimer(debounceWindow)
	timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || !event.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			logger.Debug("网表变化", "op", event.Op.String())
			timer.Reset(debounceWindow)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("监视出错", "err", err)
		case <-timer.C:
			run()
		}
	}
}
