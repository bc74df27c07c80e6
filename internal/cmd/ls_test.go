package cmd

import (
	"testing"

	"github.com/docdeck/docdeck/internal/config"
)

func TestEffectiveLimit(t *testing.T) {
	cfg = config.DefaultConfig()

	t.Run("unset flag falls back to the configured page size", func(t *testing.T) {
		if got := effectiveLimit(0); got != cfg.PageSize {
			t.Errorf("got %d, want %d", got, cfg.PageSize)
		}
	})

	t.Run("explicit flag wins", func(t *testing.T) {
		if got := effectiveLimit(25); got != 25 {
			t.Errorf("got %d, want 25", got)
		}
	})
}
