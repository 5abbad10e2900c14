package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"kirchhoff"
	"kirchhoff/config"
	"kirchhoff/debug"
)

// chartsHandler 每次请求重新加载网表并输出图表页面
func chartsHandler(cfg *config.Config, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cir := kirchhoff.NewCircuit(logger)
		if err := cir.Load(cfg.Input); err != nil {
			logger.Warn("网表加载失败", "file", cfg.Input, "err", err)
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		p, err := cir.Problem()
		if err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		debug.NewCharts(debug.NewRecord(cir.Circuit, p)).Handler(w, r)
	}
}

// serve 监听 addr 发布图表页面,直到 ctx 结束
func serve(ctx context.Context, cfg *config.Config, addr string, logger *slog.Logger) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return serveListener(ctx, cfg, listener, logger)
}

// serveListener 在已建立的监听上提供服务,返回时监听已关闭
func serveListener(ctx context.Context, cfg *config.Config, listener net.Listener, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", chartsHandler(cfg, logger))
	server := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- server.Serve(listener) }()
	logger.Info("图表服务已启动", "addr", listener.Addr().String(), "file", cfg.Input)
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdown, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdown); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
