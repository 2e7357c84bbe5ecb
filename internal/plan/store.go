package plan

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/lumenmd/lead-dashboard/internal/observability/metrics"
	"github.com/lumenmd/lead-dashboard/internal/records"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

var storeTracer = otel.Tracer("leaddash/plan")

// Store holds one patient's plan list and persists it whole through the
// record store. Mutations are optimistic: local state updates first, the
// persist call follows, and a failure rolls local state back to the
// pre-mutation list. The last successful persist wins — concurrent
// sessions editing the same patient are not reconciled.
type Store struct {
	client   records.Client
	table    string
	recordID string
	logger   *logging.Logger
	metrics  *metrics.PlanMetrics

	mu        sync.Mutex
	items     []Item
	onRefresh func()
}

// NewStore creates a plan store for one patient record.
func NewStore(client records.Client, table, recordID string, logger *logging.Logger, m *metrics.PlanMetrics) *Store {
	if logger == nil {
		logger = logging.Default()
	}
	return &Store{
		client:   client,
		table:    table,
		recordID: recordID,
		logger:   logger,
		metrics:  m,
	}
}

// OnRefresh registers a callback fired after every successful persist, so
// other views of the same patient stay consistent.
func (s *Store) OnRefresh(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

// Hydrate decodes the raw plan field into local state and returns the
// resulting list.
func (s *Store) Hydrate(raw string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = Decode(s.recordID, raw)
	return copyItems(s.items)
}

// Items returns a copy of the current list.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// Add appends built items and persists the full list.
func (s *Store) Add(ctx context.Context, items ...Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(copyItems(s.items), items...)
	return s.mutate(ctx, "add", next)
}

// Edit replaces an item's treatment/product/timeline/notes by id and
// persists the full list.
func (s *Store) Edit(ctx context.Context, id string, patch ItemPatch) error {
	if patch.Treatment != nil && *patch.Treatment == "" {
		return ErrEmptyTreatment
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := copyItems(s.items)
	found := false
	for i := range next {
		if next[i].ID != id {
			continue
		}
		found = true
		if patch.Treatment != nil {
			next[i].Treatment = *patch.Treatment
		}
		if patch.Product != nil {
			next[i].Product = *patch.Product
		}
		if patch.Timeline != nil {
			next[i].Timeline = *patch.Timeline
		}
		if patch.Notes != nil {
			next[i].Notes = *patch.Notes
		}
		break
	}
	if !found {
		return ErrItemNotFound
	}
	return s.mutate(ctx, "edit", next)
}

// Remove deletes one item by id and persists the full list.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]Item, 0, len(s.items))
	found := false
	for _, item := range s.items {
		if item.ID == id {
			found = true
			continue
		}
		next = append(next, item)
	}
	if !found {
		return ErrItemNotFound
	}
	return s.mutate(ctx, "remove", next)
}

// mutate applies the optimistic-update protocol. Caller holds the lock.
func (s *Store) mutate(ctx context.Context, action string, next []Item) error {
	ctx, span := storeTracer.Start(ctx, "plan.persist")
	defer span.End()
	span.SetAttributes(
		attribute.String("plan.action", action),
		attribute.String("plan.record_id", s.recordID),
	)

	prev := s.items
	s.items = next

	if err := s.persist(ctx); err != nil {
		s.items = prev
		s.metrics.ObserveRollback()
		s.metrics.ObservePersist(action, "error")
		s.logger.Error("plan persist failed, local state reverted",
			"action", action,
			"record_id", s.recordID,
			"error", err,
		)
		return fmt.Errorf("plan: persist %s: %w", action, err)
	}

	s.metrics.ObservePersist(action, "ok")
	if s.onRefresh != nil {
		s.onRefresh()
	}
	return nil
}

func (s *Store) persist(ctx context.Context) error {
	encoded, err := Encode(s.items)
	if err != nil {
		return err
	}
	return s.client.Update(ctx, s.table, s.recordID, map[string]any{
		PlanField: encoded,
	})
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}
