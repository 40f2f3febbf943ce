package queue

import (
	"encoding/json"

	"github.com/myshop-next/internal/constants"

	"github.com/hibiken/asynq"
)

// TaskOrderNotify 新订单 Telegram 通知任务
const TaskOrderNotify = constants.TaskOrderNotify

// OrderNotifyPayload 新订单通知任务载荷
type OrderNotifyPayload struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
}

// NewOrderNotifyTask 创建新订单通知任务
func NewOrderNotifyTask(payload OrderNotifyPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderNotify, body), nil
}
