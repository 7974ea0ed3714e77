package module

import (
	"fmt"
	"sync"

	"scout/core/config"
	"scout/core/emitter"
	"scout/core/logger"
	"scout/core/router"

	"gorm.io/gorm"
)

// Module is the marker interface implemented by every framework module.
// Modules opt into lifecycle hooks by implementing any of:
//
//	Init() error
//	Migrate() error
//	Routes(*router.RouterGroup)
type Module interface{}

// DefaultModule provides no-op lifecycle hooks for embedding
type DefaultModule struct{}

func (DefaultModule) Init() error    { return nil }
func (DefaultModule) Migrate() error { return nil }

// Dependencies carries everything a module may need at initialization
type Dependencies struct {
	DB      *gorm.DB
	Router  *router.RouterGroup
	Logger  logger.Logger
	Emitter *emitter.Emitter
	Config  *config.Config
}

var (
	registryMu sync.Mutex
	registry   = make(map[string]Module)
)

// RegisterModule records an initialized module by name. Registering the same
// name twice is an error
func RegisterModule(name string, mod Module) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		return fmt.Errorf("module %q already registered", name)
	}
	registry[name] = mod
	return nil
}

// GetModule returns a registered module by name
func GetModule(name string) (Module, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	mod, ok := registry[name]
	return mod, ok
}

// Initializer runs the init/migrate/routes lifecycle over a set of modules
type Initializer struct {
	logger logger.Logger
}

// NewInitializer creates a module initializer
func NewInitializer(log logger.Logger) *Initializer {
	return &Initializer{logger: log}
}

// Initialize runs the full lifecycle for each module, skipping (and logging)
// any module whose hooks fail
func (i *Initializer) Initialize(modules map[string]Module, deps Dependencies) []Module {
	var initialized []Module

	for name, mod := range modules {
		if err := RegisterModule(name, mod); err != nil {
			i.logger.Error("Failed to register module",
				logger.String("module", name),
				logger.String("error", err.Error()))
			continue
		}

		if initModule, ok := mod.(interface{ Init() error }); ok {
			if err := initModule.Init(); err != nil {
				i.logger.Error("Failed to initialize module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if migrator, ok := mod.(interface{ Migrate() error }); ok {
			if err := migrator.Migrate(); err != nil {
				i.logger.Error("Failed to migrate module",
					logger.String("module", name),
					logger.String("error", err.Error()))
				continue
			}
		}

		if routeModule, ok := mod.(interface{ Routes(*router.RouterGroup) }); ok {
			routeModule.Routes(deps.Router)
		}

		initialized = append(initialized, mod)
	}

	return initialized
}
