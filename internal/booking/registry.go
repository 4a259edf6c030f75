package booking

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/skybook/skybook-web/pkg/logger"
	"github.com/skybook/skybook-web/pkg/metrics"
)

const (
	// DefaultDraftTTL is how long an untouched workflow is kept.
	DefaultDraftTTL = 30 * time.Minute

	workflowKeyPrefix = "booking:flight:"
	cacheName         = "booking_drafts"
	cleanupInterval   = time.Minute
)

// Registry keeps one workflow per flight. Workflows idle for longer than
// the TTL are dropped.
type Registry struct {
	cache *gocache.Cache
	deps  Deps
}

func NewRegistry(deps Deps, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultDraftTTL
	}
	r := &Registry{
		cache: gocache.New(ttl, cleanupInterval),
		deps:  deps,
	}
	r.cache.OnEvicted(func(key string, _ interface{}) {
		logger.Debug("Booking draft discarded", zap.String("key", key))
		r.recordSize()
	})
	return r
}

// Open starts a fresh workflow for flightID, replacing any existing one.
func (r *Registry) Open(flightID string) *Workflow {
	w := New(flightID, r.deps)
	r.cache.SetDefault(workflowKeyPrefix+flightID, w)
	r.recordSize()
	return w
}

// Get returns the workflow for flightID and resets its idle timer.
func (r *Registry) Get(flightID string) (*Workflow, bool) {
	key := workflowKeyPrefix + flightID
	item, found := r.cache.Get(key)
	if !found {
		return nil, false
	}
	w, ok := item.(*Workflow)
	if !ok {
		return nil, false
	}
	r.cache.SetDefault(key, w)
	return w, true
}

func (r *Registry) Discard(flightID string) {
	r.cache.Delete(workflowKeyPrefix + flightID)
}

// FindByReference returns the workflow whose payment or booking carries
// reference.
func (r *Registry) FindByReference(reference string) (*Workflow, bool) {
	if reference == "" {
		return nil, false
	}
	for _, item := range r.cache.Items() {
		w, ok := item.Object.(*Workflow)
		if !ok {
			continue
		}
		if w.PaymentReference() == reference {
			return w, true
		}
		if b := w.Booking(); b != nil && b.BookingReference == reference {
			return w, true
		}
	}
	return nil, false
}

// Complete finishes the open workflow whose payment or booking carries
// reference and drops it, so the next visit to the flight starts a new
// draft. found is false when no open workflow matches. A failed
// verification keeps the workflow for another attempt.
func (r *Registry) Complete(ctx context.Context, reference string) (w *Workflow, found bool, err error) {
	w, found = r.FindByReference(reference)
	if !found {
		return nil, false, nil
	}
	if _, err = w.Complete(ctx, reference); err != nil {
		return w, true, err
	}
	r.Discard(w.FlightID())
	logger.Debug("Booking draft completed", zap.String("flight_id", w.FlightID()), zap.String("reference", reference))
	return w, true, nil
}

func (r *Registry) Len() int {
	return r.cache.ItemCount()
}

func (r *Registry) recordSize() {
	metrics.CacheSize.WithLabelValues(cacheName).Set(float64(r.cache.ItemCount()))
}
