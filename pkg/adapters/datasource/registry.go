package datasource

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// AdapterInfo describes a registered adapter for discovery endpoints.
type AdapterInfo struct {
	Type        string `json:"type"`         // "postgres", "sqlserver"
	DisplayName string `json:"display_name"` // "PostgreSQL", "Microsoft SQL Server"
	Description string `json:"description"`
}

// AdapterRegistration couples adapter info with its connection-string
// matcher and constructor. The connection string is opaque to callers;
// Matches lets each adapter claim the shapes it understands.
type AdapterRegistration struct {
	Info    AdapterInfo
	Matches func(connStr string) bool
	New     func(ctx context.Context, connStr string, logger *zap.Logger) (Adapter, error)
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]AdapterRegistration)
)

// Register is called by each adapter's init() function.
// Thread-safe for concurrent init() calls.
func Register(reg AdapterRegistration) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[reg.Info.Type] = reg
}

// RegisteredAdapters returns info for all registered adapters, sorted by
// type for stable API output.
func RegisteredAdapters() []AdapterInfo {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]AdapterInfo, 0, len(registry))
	for _, reg := range registry {
		result = append(result, reg.Info)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Type < result[j].Type })
	return result
}

// match returns the registration claiming the connection string, or false
// when no registered adapter understands it.
func match(connStr string) (AdapterRegistration, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	// Iterate in sorted order so overlapping matchers resolve
	// deterministically.
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	sort.Strings(types)

	for _, t := range types {
		if reg := registry[t]; reg.Matches != nil && reg.Matches(connStr) {
			return reg, true
		}
	}
	return AdapterRegistration{}, false
}
