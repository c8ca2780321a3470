package repository

import "github.com/gravelgod/agf/pkg/logger"

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithRoot sets the base athletes directory.
func WithRoot(root string) Option {
	return func(s *Store) {
		if root != "" {
			s.root = root
		}
	}
}

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}
