package main

import (
	"context"
	"errors"

	"github.com/myshop-next/internal/config"
	"github.com/myshop-next/internal/logger"
	"github.com/myshop-next/internal/models"
	"github.com/myshop-next/internal/store"
)

// 向远程文档库写入示例商品与默认店铺设置，重复运行不会产生重复数据。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	ctx := context.Background()
	client, err := store.NewClient(ctx, cfg.Firestore)
	if err != nil {
		if errors.Is(err, store.ErrDisabled) {
			stdLog.Fatalf("远程库未配置，请先设置 firestore.project_id")
		}
		stdLog.Fatalf("远程库连接失败: %v", err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			stdLog.Printf("警告: 关闭远程库失败: %v", err)
		}
	}()

	products := client.Products()
	existing, err := products.List(ctx)
	if err != nil {
		stdLog.Fatalf("读取商品集合失败: %v", err)
	}
	existingTitles := make(map[string]bool, len(existing))
	for _, p := range existing {
		existingTitles[p.Title] = true
	}

	created := 0
	for _, p := range models.SampleProducts() {
		if existingTitles[p.Title] {
			stdLog.Printf("商品已存在: %s", p.Title)
			continue
		}
		p := p
		id, err := products.Create(ctx, &p)
		if err != nil {
			stdLog.Printf("警告: 写入商品失败 %s: %v", p.Title, err)
			continue
		}
		stdLog.Printf("已创建商品: %s (%s)", p.Title, id)
		created++
	}

	// 店铺设置只在文档缺失时写入默认值，避免覆盖线上修改
	configStore := client.Config()
	if _, err := configStore.GetShopSettings(ctx); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			stdLog.Fatalf("读取店铺设置失败: %v", err)
		}
		settings := models.DefaultShopSettings()
		if err := configStore.SaveShopSettings(ctx, &settings); err != nil {
			stdLog.Fatalf("写入默认店铺设置失败: %v", err)
		}
		stdLog.Printf("已写入默认店铺设置")
	} else {
		stdLog.Printf("店铺设置已存在，跳过")
	}

	stdLog.Printf("完成: 新增商品 %d 个", created)
}
