package settings

import (
	"errors"

	"scout/app/models"
	"scout/core/emitter"
	"scout/core/logger"

	"gorm.io/gorm"
)

const (
	UpdateSettingsEvent = "settings.update"
)

type SettingsService struct {
	DB      *gorm.DB
	Emitter *emitter.Emitter
	Logger  logger.Logger
}

func NewSettingsService(db *gorm.DB, emitter *emitter.Emitter, logger logger.Logger) *SettingsService {
	return &SettingsService{
		DB:      db,
		Logger:  logger,
		Emitter: emitter,
	}
}

// Configuration helper methods for modules to retrieve settings

// GetSettingString retrieves a string setting value by key
func (s *SettingsService) GetSettingString(key string, defaultValue string) string {
	var setting models.Settings
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		s.Logger.Warn("setting not found, using default",
			logger.String("key", key),
			logger.String("default", defaultValue))
		return defaultValue
	}
	return setting.ValueString
}

// GetSettingInt retrieves an integer setting value by key
func (s *SettingsService) GetSettingInt(key string, defaultValue int) int {
	var setting models.Settings
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		s.Logger.Warn("setting not found, using default",
			logger.String("key", key),
			logger.Int("default", defaultValue))
		return defaultValue
	}
	return setting.ValueInt
}

// GetSettingBool retrieves a boolean setting value by key
func (s *SettingsService) GetSettingBool(key string, defaultValue bool) bool {
	var setting models.Settings
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		s.Logger.Warn("setting not found, using default",
			logger.String("key", key),
			logger.Bool("default", defaultValue))
		return defaultValue
	}
	return setting.ValueBool
}

// GetSettingFloat retrieves a float setting value by key
func (s *SettingsService) GetSettingFloat(key string, defaultValue float64) float64 {
	var setting models.Settings
	if err := s.DB.Where("setting_key = ?", key).First(&setting).Error; err != nil {
		s.Logger.Warn("setting not found, using default",
			logger.String("key", key),
			logger.Float64("default", defaultValue))
		return defaultValue
	}
	return setting.ValueFloat
}

// GetSettingsByGroup retrieves all settings for a specific group
func (s *SettingsService) GetSettingsByGroup(group string) ([]*models.Settings, error) {
	var settings []*models.Settings
	if err := s.DB.Where("\"group\" = ?", group).Find(&settings).Error; err != nil {
		s.Logger.Error("failed to get settings by group",
			logger.String("group", group),
			logger.String("error", err.Error()))
		return nil, err
	}
	return settings, nil
}

// UpsertSetting creates or updates a setting by key
func (s *SettingsService) UpsertSetting(setting *models.Settings) error {
	var existing models.Settings
	result := s.DB.Where("setting_key = ?", setting.SettingKey).First(&existing)

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		if err := s.DB.Create(setting).Error; err != nil {
			s.Logger.Error("failed to create setting",
				logger.String("key", setting.SettingKey),
				logger.String("error", err.Error()))
			return err
		}
	} else {
		setting.Id = existing.Id
		setting.CreatedAt = existing.CreatedAt
		if err := s.DB.Save(setting).Error; err != nil {
			s.Logger.Error("failed to update setting",
				logger.String("key", setting.SettingKey),
				logger.String("error", err.Error()))
			return err
		}
	}

	s.Emitter.Emit(UpdateSettingsEvent, setting)
	return nil
}
