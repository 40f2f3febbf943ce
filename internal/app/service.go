package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Service 可托管的后台服务
type Service interface {
	Name() string
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// Runner 统一管理服务的启动与优雅退出
type Runner struct {
	services        []Service
	logger          *zap.SugaredLogger
	signals         []os.Signal
	shutdownTimeout time.Duration
	cleanup         func()
}

// NewRunner 创建服务运行器
func NewRunner(services []Service, opts Options) *Runner {
	opts = normalizeOptions(opts)
	signals := opts.Signals
	if len(signals) == 0 {
		signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	return &Runner{
		services:        services,
		logger:          opts.Logger,
		signals:         signals,
		shutdownTimeout: opts.ShutdownTimeout,
	}
}

// OnShutdown 注册退出时执行的清理函数
func (r *Runner) OnShutdown(fn func()) {
	r.cleanup = fn
}

// Run 启动全部服务并阻塞到信号或任一服务失败
func (r *Runner) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), r.signals...)
	defer stop()

	errCh := make(chan error, len(r.services))
	for _, svc := range r.services {
		svc := svc
		r.logger.Infow("service_start", "service", svc.Name())
		go func() {
			if err := svc.Start(ctx); err != nil {
				errCh <- fmt.Errorf("%s: %w", svc.Name(), err)
			}
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		r.logger.Infow("shutdown_signal_received")
	case err := <-errCh:
		runErr = err
		r.logger.Errorw("service_failed", "error", err)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), r.shutdownTimeout)
	defer cancel()
	for i := len(r.services) - 1; i >= 0; i-- {
		svc := r.services[i]
		if err := svc.Stop(stopCtx); err != nil {
			r.logger.Warnw("service_stop_failed", "service", svc.Name(), "error", err)
		} else {
			r.logger.Infow("service_stopped", "service", svc.Name())
		}
	}
	if r.cleanup != nil {
		r.cleanup()
	}
	return runErr
}
