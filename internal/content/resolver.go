package content

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Resolver produces page content through a three-tier fallback chain:
// relational store, bundled file, hard-coded default. It is total: one of
// the tiers always yields a value, and no tier writes back to another.
type Resolver struct {
	// Store is consulted first when non-nil (relational read mode).
	Store *Store
	// Dir is the bundled content directory holding <pageType>.json files.
	Dir string
}

// Resolve never fails; a missing blob and a missing file both fall through
// to the default object for the page type.
func (r *Resolver) Resolve(ctx context.Context, pageType string) json.RawMessage {
	if r.Store != nil {
		raw, err := r.Store.Get(ctx, pageType)
		if err == nil && len(raw) > 0 && string(raw) != "null" {
			return raw
		}
		if err != nil && err != ErrNotFound {
			logrus.WithError(err).WithField("pageType", pageType).Warn("content store read failed, falling back")
		}
	}

	if raw, ok := r.fromFile(pageType); ok {
		return raw
	}

	return DefaultFor(pageType)
}

func (r *Resolver) fromFile(pageType string) (json.RawMessage, bool) {
	if r.Dir == "" {
		return nil, false
	}
	b, err := os.ReadFile(filepath.Join(r.Dir, pageType+".json"))
	if err != nil {
		return nil, false
	}
	if !json.Valid(b) {
		logrus.WithField("pageType", pageType).Warn("bundled content file is not valid JSON, falling back")
		return nil, false
	}
	return json.RawMessage(b), true
}
