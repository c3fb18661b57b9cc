package shapegraph

import "log/slog"

// Option configures Graph construction behavior.
type Option func(*graphConfig)

type graphConfig struct {
	logger *slog.Logger
}

// WithLogger enables debug logging for graph mutation operations.
//
// When set, the graph logs detail about node and edge creation as
// events are applied. Pass nil to disable logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *graphConfig) {
		cfg.logger = logger
	}
}
