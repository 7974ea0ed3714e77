package settings

import (
	"scout/app/models"
	"scout/core/module"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB      *gorm.DB
	Service *SettingsService
}

// Init creates and initializes the Settings module with all dependencies
func Init(deps module.Dependencies) module.Module {
	service := NewSettingsService(deps.DB, deps.Emitter, deps.Logger)

	mod := &Module{
		DB:      deps.DB,
		Service: service,
	}

	return mod
}

func (m *Module) Init() error {
	return m.Migrate()
}

func (m *Module) Migrate() error {
	return m.DB.AutoMigrate(&models.Settings{})
}

func (m *Module) GetModels() []any {
	return []any{
		&models.Settings{},
	}
}
