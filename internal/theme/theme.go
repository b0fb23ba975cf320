// Package theme owns the dark/light preference.
//
// The preference is the only piece of session state that survives a
// restart: it is read once when the Controller is built and written back
// on every Toggle.
package theme

import (
	"context"
	"sync"

	"github.com/Laisky/errors/v2"
	logSDK "github.com/Laisky/go-utils/v6/log"
	"github.com/Laisky/zap"

	"github.com/Aftab073/Ai-search-tool/library/log"
)

// Store persists the dark mode flag.
type Store interface {
	// LoadDarkMode returns the stored flag, false when nothing was stored.
	LoadDarkMode(ctx context.Context) (bool, error)
	SaveDarkMode(ctx context.Context, dark bool) error
	// ResetDarkMode forgets the flag and reports whether one was stored.
	ResetDarkMode(ctx context.Context) (bool, error)
}

// Option customises a Controller.
type Option func(*Controller)

// WithLogger overrides the controller logger.
func WithLogger(logger logSDK.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Controller tracks the current theme.
type Controller struct {
	mu     sync.RWMutex
	store  Store
	dark   bool
	logger logSDK.Logger
}

// NewController rehydrates the preference from store.
// A store failure is logged and leaves light mode on.
func NewController(ctx context.Context, store Store, opts ...Option) *Controller {
	c := &Controller{
		store:  store,
		logger: log.Logger.Named("theme"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if store == nil {
		return c
	}

	dark, err := store.LoadDarkMode(ctx)
	if err != nil {
		c.logger.Warn("load dark mode preference", zap.Error(err))
		return c
	}
	c.dark = dark

	return c
}

// DarkMode reports whether the dark palette is active.
func (c *Controller) DarkMode() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dark
}

// Toggle flips the preference, persists it and returns the new value.
// Persisting is best effort, the flip itself always happens.
func (c *Controller) Toggle(ctx context.Context) bool {
	c.mu.Lock()
	c.dark = !c.dark
	dark := c.dark
	c.mu.Unlock()

	if c.store != nil {
		if err := c.store.SaveDarkMode(ctx, dark); err != nil {
			c.logger.Warn("save dark mode preference", zap.Error(err), zap.Bool("dark", dark))
		}
	}

	c.logger.Debug("toggle theme", zap.Bool("dark", dark))
	return dark
}

// Reset drops the stored preference and returns to light mode.
// It reports whether a preference had been stored.
func (c *Controller) Reset(ctx context.Context) (bool, error) {
	c.mu.Lock()
	c.dark = false
	c.mu.Unlock()

	if c.store == nil {
		return false, nil
	}

	removed, err := c.store.ResetDarkMode(ctx)
	if err != nil {
		return false, errors.Wrap(err, "reset dark mode preference")
	}

	c.logger.Debug("reset theme", zap.Bool("removed", removed))
	return removed, nil
}
