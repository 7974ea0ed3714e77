package app

import (
	"scout/app/models"
	"scout/app/posts"
	"scout/app/settings"
	"scout/core/app/search"
	"scout/core/module"
)

// AppModules implements module.AppModuleProvider interface
type AppModules struct{}

// GetAppModules returns the list of app modules to initialize.
// This is the only function that needs to be updated when adding new app modules
func (am *AppModules) GetAppModules(deps module.Dependencies) map[string]module.Module {
	modules := make(map[string]module.Module)

	modules["posts"] = posts.Init(deps)
	modules["settings"] = settings.Init(deps)

	return modules
}

// NewAppModules creates a new app modules provider
func NewAppModules() *AppModules {
	return &AppModules{}
}

// GetSearchRegistry declares which app tables the global search covers.
// Models implementing search.SearchableModel register themselves; plain
// tables register with RegisterSimple
func GetSearchRegistry() *search.SearchRegistry {
	registry := search.NewSearchRegistry()

	registry.Register("posts", &models.Post{})

	registry.RegisterSimple("settings", search.SimpleSearchConfig{
		Table:  "settings",
		Fields: []string{"setting_key", "label", "description"},
		Type:   "setting",
	})

	return registry
}
