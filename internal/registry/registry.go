// Package registry provides a global registry for autoplay strategies.
// Strategies register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/wizard-td/internal/engine"
)

// Strategy decides what a headless player does between waves.
// Strategies only issue commands through the Simulation; they never
// touch its internals.
type Strategy interface {
	// Name returns a unique identifier (e.g., "greedy", "frugal").
	// Used for CLI arguments and run history.
	Name() string

	// Description returns a one-line summary for listings.
	Description() string

	// Plan is called before each wave starts. It may place defenders,
	// collect drops or do nothing.
	Plan(sim *engine.Simulation)
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	Name        string
	Description string
}

// Factory is a function that creates a new instance of a strategy.
type Factory func() Strategy

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Panics if a strategy with the same name is already registered.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = f().Description()
}

// List returns information about all registered strategies, sorted by name.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for name := range factories {
		result = append(result, StrategyInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a new strategy by name.
func Create(name string) (Strategy, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", name)
	}

	return f(), nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
