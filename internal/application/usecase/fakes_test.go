package usecase_test

import (
	"context"
	"sync"

	"github.com/jhoicas/gestione-fascicoli/internal/domain/entity"
	"github.com/jhoicas/gestione-fascicoli/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes compartidos por los tests del paquete
// ──────────────────────────────────────────────────────────────────────────────

type spyCache struct {
	mu          sync.Mutex
	invalidated []string
}

func (s *spyCache) Invalidate(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidated = append(s.invalidated, path)
}

type spyMetrics struct {
	calls []string
}

func (s *spyMetrics) ObserveMutation(operation, outcome string) {
	s.calls = append(s.calls, operation+":"+outcome)
}

type fakeFascicoli struct {
	created   []*entity.Fascicolo
	updated   []*entity.Fascicolo
	deleted   []string
	rows      []repository.FascicoloRow
	form      *repository.FascicoloForm
	count     int
	err       error
	lastLimit int
	lastOff   int
	lastQuery string
}

func (f *fakeFascicoli) Create(_ context.Context, x *entity.Fascicolo) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, x)
	return nil
}

func (f *fakeFascicoli) Update(_ context.Context, x *entity.Fascicolo) error {
	if f.err != nil {
		return f.err
	}
	f.updated = append(f.updated, x)
	return nil
}

func (f *fakeFascicoli) Delete(_ context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeFascicoli) GetFormByID(context.Context, string) (*repository.FascicoloForm, error) {
	return f.form, f.err
}

func (f *fakeFascicoli) ListFiltered(_ context.Context, q string, limit, offset int) ([]repository.FascicoloRow, error) {
	f.lastQuery, f.lastLimit, f.lastOff = q, limit, offset
	return f.rows, f.err
}

func (f *fakeFascicoli) CountFiltered(_ context.Context, q string) (int, error) {
	f.lastQuery = q
	return f.count, f.err
}

func (f *fakeFascicoli) Count(context.Context) (int, error) { return f.count, f.err }

type fakeCustomers struct {
	created  []*entity.Customer
	all      []repository.CustomerField
	summary  []repository.CustomerSummary
	count    int
	err      error
	lastOff  int
	lastSize int
}

func (f *fakeCustomers) Create(_ context.Context, c *entity.Customer) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, c)
	return nil
}

func (f *fakeCustomers) ListAll(context.Context) ([]repository.CustomerField, error) {
	return f.all, f.err
}

func (f *fakeCustomers) ListFiltered(_ context.Context, _ string, limit, offset int) ([]repository.CustomerSummary, error) {
	f.lastSize, f.lastOff = limit, offset
	return f.summary, f.err
}

func (f *fakeCustomers) CountFiltered(context.Context, string) (int, error) { return f.count, f.err }

func (f *fakeCustomers) Count(context.Context) (int, error) { return f.count, f.err }
