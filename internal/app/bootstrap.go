package app

import (
	"context"
	"fmt"

	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/provider"
	"github.com/myshop-next/internal/router"
	"github.com/myshop-next/internal/worker"
)

// BuildRunner 按运行模式装配服务
func BuildRunner(opts Options) (*Runner, error) {
	opts = normalizeOptions(opts)
	cfg := opts.Config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	ctx := context.Background()
	container := provider.NewContainer(ctx, cfg)

	if err := container.CatalogService.Load(ctx); err != nil {
		logger.Warnw("catalog_load_failed", "error", err)
	}
	container.CartService.StartSweeper(ctx)

	var services []Service
	if opts.Mode == ModeAll || opts.Mode == ModeAPI {
		engine := router.SetupRouter(cfg, container)
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		services = append(services, NewHTTPService("api", addr, engine))
	}
	if opts.Mode == ModeAll || opts.Mode == ModeWorker {
		if container.QueueClient != nil && container.QueueClient.Enabled() {
			consumer := worker.NewConsumer(container)
			workerSvc, err := worker.NewService(&cfg.Queue, consumer)
			if err != nil {
				container.Close()
				return nil, fmt.Errorf("build worker: %w", err)
			}
			services = append(services, workerSvc)
		} else {
			logger.Warnw("worker_disabled", "reason", "queue not configured")
		}
	}
	if len(services) == 0 {
		container.Close()
		return nil, fmt.Errorf("no services for mode %q", opts.Mode)
	}

	runner := NewRunner(services, opts)
	runner.OnShutdown(container.Close)
	return runner, nil
}

// Run 装配并运行应用
func Run(opts Options) error {
	runner, err := BuildRunner(opts)
	if err != nil {
		return err
	}
	return runner.Run()
}
