package search

import (
	"scout/core/module"
	"scout/core/router"

	"gorm.io/gorm"
)

type Module struct {
	module.DefaultModule
	DB         *gorm.DB
	Service    *SearchService
	Controller *SearchController
	Registry   *SearchRegistry
}

// Init creates and initializes the Search module with all dependencies.
// The registry comes from app/init.go, which owns the searchable-model
// configuration; a nil registry yields an empty (but functional) module
func Init(deps module.Dependencies, registry *SearchRegistry) module.Module {
	if registry == nil {
		registry = NewSearchRegistry()
	}

	service := NewSearchService(deps.DB, deps.Emitter, deps.Logger, registry, deps.DB.Dialector.Name())
	if deps.Config != nil {
		if deps.Config.SearchDefaultLimit > 0 {
			service.DefaultLimit = deps.Config.SearchDefaultLimit
		}
		service.CaseSensitive = deps.Config.SearchCaseSensitive
	}
	controller := NewSearchController(service)

	return &Module{
		DB:         deps.DB,
		Service:    service,
		Controller: controller,
		Registry:   registry,
	}
}

// Routes registers the module routes
func (m *Module) Routes(router *router.RouterGroup) {
	m.Controller.Routes(router)
}
