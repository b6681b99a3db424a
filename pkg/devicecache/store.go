package devicecache

import (
	"context"

	"github.com/dmitrymomot/categorizr/pkg/categorizr"
)

// Store persists classification results by key. A miss is reported as
// (zero Device, false, nil).
type Store interface {
	Get(ctx context.Context, key string) (categorizr.Device, bool, error)
	Set(ctx context.Context, key string, device categorizr.Device) error
}

// NopStore never stores anything; every lookup is a miss.
type NopStore struct{}

func (NopStore) Get(context.Context, string) (categorizr.Device, bool, error) {
	return categorizr.Device{}, false, nil
}

func (NopStore) Set(context.Context, string, categorizr.Device) error { return nil }
