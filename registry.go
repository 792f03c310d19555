package gilded

import (
	"sync"
)

var (
	registry   = make(map[string]*Schema)
	registryMu sync.RWMutex
)

// Use returns the named cached schema, building it on first use.
//
// Schemas are constructed once per configuration and are immutable, so
// callers that share one (model, relation map, casing policy, new-object
// flag) combination should share one instance. The cache is keyed by a
// caller-chosen name because relation maps are not comparable.
func Use(name string, build func() (*Schema, error)) (*Schema, error) {
	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[name]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[name]; ok {
		return cached, nil
	}

	schema, err := build()
	if err != nil {
		return nil, err
	}

	registry[name] = schema
	return schema, nil
}

// Reset clears the schema registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*Schema)
}
