package app

import (
	"scout/core/app/search"
	"scout/core/module"
)

// CoreModules implements module.CoreModuleProvider interface
type CoreModules struct {
	SearchRegistry *search.SearchRegistry
}

// GetCoreModules returns the list of core modules to initialize.
// This is the only function that needs to be updated when adding new core modules
func (cm *CoreModules) GetCoreModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	// Global search over every model registered in app/init.go
	modules["search"] = search.Init(deps, cm.SearchRegistry)

	return modules
}

// NewCoreModules creates a new core modules provider
func NewCoreModules(searchRegistry *search.SearchRegistry) *CoreModules {
	return &CoreModules{
		SearchRegistry: searchRegistry,
	}
}
