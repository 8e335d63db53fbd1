package config

import "context"

// resolverKey is the context key for Resolver
type resolverKey struct{}

// Resolver provides lazy per-dataset config resolution with caching.
// It loads and merges sidecar files with the global config on demand.
type Resolver struct {
	global *Config
	cache  map[string]*Config // dataset path -> merged config
}

// NewResolver creates a new Resolver backed by the given global config.
func NewResolver(global *Config) *Resolver {
	return &Resolver{
		global: global,
		cache:  make(map[string]*Config),
	}
}

// ConfigFor returns the effective config for a dataset file, merging its
// sidecar (if any) with the global config. Results are cached per path.
func (r *Resolver) ConfigFor(datasetPath string) (*Config, error) {
	if cached, ok := r.cache[datasetPath]; ok {
		return cached, nil
	}

	local, err := LoadLocal(datasetPath)
	if err != nil {
		return nil, err
	}

	merged := MergeLocal(r.global, local)
	r.cache[datasetPath] = merged
	return merged, nil
}

// Global returns the global config (without any local overrides).
func (r *Resolver) Global() *Config {
	return r.global
}

// WithResolver returns a new context with the Resolver stored in it.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, resolverKey{}, r)
}

// ResolverFromContext returns the Resolver from context.
// Returns a resolver over Default() if none is stored.
func ResolverFromContext(ctx context.Context) *Resolver {
	if r, ok := ctx.Value(resolverKey{}).(*Resolver); ok {
		return r
	}
	cfg := Default()
	return NewResolver(&cfg)
}
