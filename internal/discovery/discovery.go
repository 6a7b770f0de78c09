// Package discovery resolves well-known service names to instance base URLs.
// The registry is static, populated from the environment at startup; a
// richer backend can replace it behind the same Lookup contract.
package discovery

import (
	"fmt"
	"sync"
)

// UserAuthService is the well-known name of the identity service.
const UserAuthService = "user-auth-service"

// Registry maps service names to their known instance base URLs.
type Registry struct {
	mu        sync.RWMutex
	instances map[string][]string
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{instances: make(map[string][]string)}
}

// Register records the instance URLs for a service name, replacing any
// previous entry.
func (r *Registry) Register(name string, urls []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.instances[name] = urls
}

// Lookup returns the instance URLs registered for name. An unknown name or
// an empty instance list is an error; callers treat it as a processing
// fault, not a client error.
func (r *Registry) Lookup(name string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	urls := r.instances[name]
	if len(urls) == 0 {
		return nil, fmt.Errorf("no instances registered for service %q", name)
	}
	return urls, nil
}
