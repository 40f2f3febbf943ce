package worker

import (
	"context"
	"encoding/json"

	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/provider"
	"github.com/myshop-next/internal/queue"
	"github.com/myshop-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderNotify, c.handleOrderNotify)
}

func (c *Consumer) handleOrderNotify(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_notify_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_notify_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == "" {
		logger.Debugw("worker_order_notify_skip_invalid_payload", "order_number", payload.OrderNumber)
		return nil
	}
	err := c.NotificationService.NotifyByOrderID(ctx, payload.OrderID)
	if err == service.ErrNotificationDisabled || err == service.ErrOrderNotFound {
		// 配置缺失或订单已被删，重试也不会成功
		logger.Warnw("worker_order_notify_dropped", "order_id", payload.OrderID, "reason", err)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_order_notify_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}
