// Package testutil provides mock implementations for testing the
// ticket application layer.
package testutil

import (
	"context"
	"sync"

	"helpdesk/internal/application/ticket/dto"
	"helpdesk/internal/domain/asset"
	"helpdesk/internal/domain/requester"
	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/valueobjects"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// MockTicketRepository is an in-memory ticket.TicketRepository.
type MockTicketRepository struct {
	mu      sync.RWMutex
	tickets map[uint]*ticket.Ticket
	nextID  uint

	// Error injection
	SaveError             error
	UpdateError           error
	FindError             error
	UpdateTechnicianError error
}

func NewMockTicketRepository() *MockTicketRepository {
	return &MockTicketRepository{tickets: make(map[uint]*ticket.Ticket)}
}

func (m *MockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}

	if t.ID() == 0 {
		m.nextID++
		if err := t.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateError != nil {
		return m.UpdateError
	}

	m.tickets[t.ID()] = t
	return nil
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}

	t, ok := m.tickets[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("ticket not found")
	}
	return t, nil
}

func (m *MockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*ticket.Ticket
	for _, t := range m.tickets {
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, t) {
			continue
		}
		if filter.RequesterID != nil && t.RequesterID() != *filter.RequesterID {
			continue
		}
		if filter.AssetID != nil && t.AssetID() != *filter.AssetID {
			continue
		}
		result = append(result, t)
	}
	return result, nil
}

func containsStatus(statuses []vo.Status, t *ticket.Ticket) bool {
	for _, s := range statuses {
		if t.Status() == s {
			return true
		}
	}
	return false
}

func (m *MockTicketRepository) UpdateTechnician(ctx context.Context, id uint, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateTechnicianError != nil {
		return m.UpdateTechnicianError
	}

	if t, ok := m.tickets[id]; ok {
		t.AttributeTo(name)
	}
	return nil
}

func (m *MockTicketRepository) UpdateDocumentPath(ctx context.Context, id uint, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.tickets[id]; ok {
		t.SetDocumentPath(path)
	}
	return nil
}

func (m *MockTicketRepository) CountByStatus(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, t := range m.tickets {
		counts[t.Status().String()]++
	}
	return counts, nil
}

func (m *MockTicketRepository) ClosedCountByTechnician(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, t := range m.tickets {
		if t.Status().IsClosed() && t.Technician() != "" {
			counts[t.Technician()]++
		}
	}
	return counts, nil
}

func (m *MockTicketRepository) CountByDamageType(ctx context.Context) (map[string]int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[string]int64)
	for _, t := range m.tickets {
		if t.DamageType() != "" {
			counts[t.DamageType()]++
		}
	}
	return counts, nil
}

func (m *MockTicketRepository) TopAssetTypes(ctx context.Context, limit int) ([]ticket.AssetTypeCount, error) {
	return nil, nil
}

// MockRequesterRepository is an in-memory requester.RequesterRepository.
type MockRequesterRepository struct {
	mu         sync.RWMutex
	requesters map[uint]*requester.Requester
	nextID     uint

	SaveError error
	FindError error
}

func NewMockRequesterRepository() *MockRequesterRepository {
	return &MockRequesterRepository{requesters: make(map[uint]*requester.Requester)}
}

func (m *MockRequesterRepository) Add(r *requester.Requester) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requesters[r.ID()] = r
}

func (m *MockRequesterRepository) Save(ctx context.Context, r *requester.Requester) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}

	if r.ID() == 0 {
		m.nextID++
		if err := r.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.requesters[r.ID()] = r
	return nil
}

func (m *MockRequesterRepository) Update(ctx context.Context, r *requester.Requester) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requesters[r.ID()] = r
	return nil
}

func (m *MockRequesterRepository) FindByID(ctx context.Context, id uint) (*requester.Requester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}

	r, ok := m.requesters[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("requester not found")
	}
	return r, nil
}

func (m *MockRequesterRepository) FindByIdentification(ctx context.Context, identification string) (*requester.Requester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, r := range m.requesters {
		if r.Identification() == identification {
			return r, nil
		}
	}
	return nil, apperrors.NewNotFoundError("requester not found")
}

func (m *MockRequesterRepository) List(ctx context.Context) ([]*requester.Requester, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*requester.Requester, 0, len(m.requesters))
	for _, r := range m.requesters {
		result = append(result, r)
	}
	return result, nil
}

func (m *MockRequesterRepository) Exists(ctx context.Context, id uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.requesters[id]
	return ok, nil
}

func (m *MockRequesterRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.requesters[id]; !ok {
		return apperrors.NewNotFoundError("requester not found")
	}
	delete(m.requesters, id)
	return nil
}

// MockAssetRepository is an in-memory asset.AssetRepository.
type MockAssetRepository struct {
	mu     sync.RWMutex
	assets map[uint]*asset.Asset
	nextID uint

	SaveError error
	FindError error
}

func NewMockAssetRepository() *MockAssetRepository {
	return &MockAssetRepository{assets: make(map[uint]*asset.Asset)}
}

func (m *MockAssetRepository) Add(a *asset.Asset) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID()] = a
}

func (m *MockAssetRepository) Save(ctx context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SaveError != nil {
		return m.SaveError
	}

	if a.ID() == 0 {
		m.nextID++
		if err := a.SetID(m.nextID); err != nil {
			return err
		}
	}
	m.assets[a.ID()] = a
	return nil
}

func (m *MockAssetRepository) Update(ctx context.Context, a *asset.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[a.ID()] = a
	return nil
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uint) (*asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.FindError != nil {
		return nil, m.FindError
	}

	a, ok := m.assets[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("asset not found")
	}
	return a, nil
}

func (m *MockAssetRepository) FindBySerial(ctx context.Context, serial string) (*asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.assets {
		if a.Serial() == serial {
			return a, nil
		}
	}
	return nil, apperrors.NewNotFoundError("asset not found")
}

func (m *MockAssetRepository) List(ctx context.Context) ([]*asset.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*asset.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		result = append(result, a)
	}
	return result, nil
}

func (m *MockAssetRepository) Exists(ctx context.Context, id uint) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.assets[id]
	return ok, nil
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.assets[id]; !ok {
		return apperrors.NewNotFoundError("asset not found")
	}
	delete(m.assets, id)
	return nil
}

// MockRenderer records render calls and returns a fixed path.
type MockRenderer struct {
	mu        sync.Mutex
	snapshots []dto.DocumentSnapshot

	Path  string
	Error error
}

func NewMockRenderer() *MockRenderer {
	return &MockRenderer{Path: "/tmp/ticket_test.pdf"}
}

func (m *MockRenderer) Render(snap dto.DocumentSnapshot) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Error != nil {
		return "", m.Error
	}
	m.snapshots = append(m.snapshots, snap)
	return m.Path, nil
}

func (m *MockRenderer) Snapshots() []dto.DocumentSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]dto.DocumentSnapshot(nil), m.snapshots...)
}

// DispatchCall records one dispatcher invocation.
type DispatchCall struct {
	Subject        string
	Body           string
	Recipients     []string
	AttachmentPath string
}

// MockDispatcher records notification sends.
type MockDispatcher struct {
	mu    sync.Mutex
	calls []DispatchCall

	Error error
}

func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Send(subject, body string, recipients []string, attachmentPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Error != nil {
		return m.Error
	}
	m.calls = append(m.calls, DispatchCall{
		Subject:        subject,
		Body:           body,
		Recipients:     recipients,
		AttachmentPath: attachmentPath,
	})
	return nil
}

func (m *MockDispatcher) Calls() []DispatchCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]DispatchCall(nil), m.calls...)
}

// MockLogger discards log output while satisfying logger.Interface.
type MockLogger struct{}

func NewMockLogger() *MockLogger { return &MockLogger{} }

func (m *MockLogger) Debug(msg string, args ...any)                   {}
func (m *MockLogger) Info(msg string, args ...any)                    {}
func (m *MockLogger) Warn(msg string, args ...any)                    {}
func (m *MockLogger) Error(msg string, args ...any)                   {}
func (m *MockLogger) With(args ...any) logger.Interface               { return m }
func (m *MockLogger) Named(name string) logger.Interface              { return m }
func (m *MockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *MockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *MockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *MockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
