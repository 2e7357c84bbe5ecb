package patients

import (
	"context"
	"errors"
	"fmt"

	"github.com/lumenmd/lead-dashboard/internal/observability/metrics"
	"github.com/lumenmd/lead-dashboard/internal/records"
	"github.com/lumenmd/lead-dashboard/pkg/logging"
)

// ErrPatientNotFound is returned when no record exists for the id
var ErrPatientNotFound = errors.New("patient not found")

// Repository defines patient lookup for the handlers.
type Repository interface {
	Get(ctx context.Context, id string) (*Patient, error)
	List(ctx context.Context, filter string) ([]*Patient, error)
	Invalidate(ctx context.Context, id string)
}

// RecordRepository reads patients from the record store through an optional
// Redis cache.
type RecordRepository struct {
	client  records.Client
	table   string
	cache   *Cache
	logger  *logging.Logger
	metrics *metrics.PlanMetrics
}

// NewRecordRepository creates a repository over the record store client.
// cache may be nil.
func NewRecordRepository(client records.Client, table string, cache *Cache, logger *logging.Logger, m *metrics.PlanMetrics) *RecordRepository {
	if logger == nil {
		logger = logging.Default()
	}
	return &RecordRepository{
		client:  client,
		table:   table,
		cache:   cache,
		logger:  logger,
		metrics: m,
	}
}

// Get fetches one patient, serving from cache when possible.
func (r *RecordRepository) Get(ctx context.Context, id string) (*Patient, error) {
	if cached, err := r.cache.Get(ctx, id); err != nil {
		// Cache trouble is not fatal; fall through to the record store.
		r.logger.Warn("patient cache read failed", "patient_id", id, "error", err)
	} else if cached != nil {
		r.metrics.ObserveRecordFetch("cache", "ok")
		return cached, nil
	}

	rec, err := r.client.Get(ctx, r.table, id)
	if err != nil {
		r.metrics.ObserveRecordFetch("remote", "error")
		if errors.Is(err, records.ErrNotFound) {
			return nil, ErrPatientNotFound
		}
		return nil, fmt.Errorf("patients: get %s: %w", id, err)
	}
	r.metrics.ObserveRecordFetch("remote", "ok")

	p := FromRecord(rec)
	if err := r.cache.Set(ctx, p); err != nil {
		r.logger.Warn("patient cache write failed", "patient_id", id, "error", err)
	}
	return p, nil
}

// List fetches patients matching a proxy filter expression.
func (r *RecordRepository) List(ctx context.Context, filter string) ([]*Patient, error) {
	recs, err := r.client.List(ctx, r.table, filter)
	if err != nil {
		return nil, fmt.Errorf("patients: list: %w", err)
	}
	out := make([]*Patient, 0, len(recs))
	for i := range recs {
		out = append(out, FromRecord(&recs[i]))
	}
	return out, nil
}

// Invalidate drops the cached entry after a plan mutation persists.
func (r *RecordRepository) Invalidate(ctx context.Context, id string) {
	if err := r.cache.Invalidate(ctx, id); err != nil {
		r.logger.Warn("patient cache invalidate failed", "patient_id", id, "error", err)
	}
}
