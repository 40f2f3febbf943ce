package repository

import (
	"errors"

	"github.com/myshop-next/internal/models"

	"gorm.io/gorm"
)

// SettingMirrorRepository 店铺设置本地镜像数据访问接口
type SettingMirrorRepository interface {
	GetByKey(key string) (*models.CachedSetting, error)
	Upsert(key, value string) error
}

// GormSettingMirrorRepository GORM 实现
type GormSettingMirrorRepository struct {
	db *gorm.DB
}

// NewSettingMirrorRepository 创建设置镜像仓库
func NewSettingMirrorRepository(db *gorm.DB) *GormSettingMirrorRepository {
	return &GormSettingMirrorRepository{db: db}
}

// GetByKey 获取设置镜像，未命中返回 nil
func (r *GormSettingMirrorRepository) GetByKey(key string) (*models.CachedSetting, error) {
	var setting models.CachedSetting
	if err := r.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Upsert 更新或创建设置镜像
func (r *GormSettingMirrorRepository) Upsert(key, value string) error {
	setting, err := r.GetByKey(key)
	if err != nil {
		return err
	}
	if setting == nil {
		return r.db.Create(&models.CachedSetting{Key: key, Value: value}).Error
	}
	setting.Value = value
	return r.db.Save(setting).Error
}
