// Copyright The Linux Foundation and each contributor to LFX.
// SPDX-License-Identifier: MIT

package mock

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/econsultation/econsultation-service/internal/domain/model"
	"github.com/econsultation/econsultation-service/internal/domain/port"
	"github.com/econsultation/econsultation-service/pkg/errors"
)

// draftPageSize matches the backend's default pagination
const draftPageSize = 10

// Global mock backend instance shared by everything wired in mock mode
var (
	globalMockBackend     *MockBackend
	globalMockBackendOnce = &sync.Once{}
)

// MockBackend is an in-memory port.Backend. It enforces the same rules the
// real backend does, reporting violations as Remote errors.
type MockBackend struct {
	institutions      map[string]*model.Institution
	regions           map[string]*model.Region
	sectors           map[string]*model.Sector
	users             map[string]*model.User
	drafts            map[string]*model.Draft
	commentRequests   map[string]*model.CommentRequest
	assignments       map[string]*model.CommenterAssignment // comment request id -> assignment
	reflections       map[string][]*model.Reflection        // comment request id -> reflections
	openingRejections map[string]*model.OpeningRejection    // draft id -> rejection
	globalError       error
	operationErrors   map[string]error
	resourceErrors    map[string]error
	mu                sync.RWMutex // Protect concurrent access to maps
}

var _ port.Backend = (*MockBackend)(nil)

// NewSharedMockBackend returns the process-wide mock backend, seeding it on first use
func NewSharedMockBackend() *MockBackend {
	globalMockBackendOnce.Do(func() {
		globalMockBackend = NewMockBackend()
	})
	return globalMockBackend
}

// NewMockBackend creates an isolated mock backend with sample data
func NewMockBackend() *MockBackend {
	m := &MockBackend{}
	m.ClearAll()
	m.seed(time.Now().UTC())
	return m
}

func (m *MockBackend) seed(now time.Time) {
	for _, r := range []*model.Region{
		{ID: "1", Name: "Federal"},
		{ID: "2", Name: "Addis Ababa"},
		{ID: "3", Name: "Oromia"},
	} {
		m.regions[r.ID] = r
	}

	for _, s := range []*model.Sector{
		{ID: "1", Name: "Finance"},
		{ID: "2", Name: "Education"},
		{ID: "3", Name: "Health"},
	} {
		m.sectors[s.ID] = s
	}

	for _, in := range []*model.Institution{
		{ID: "1", Name: "Ministry of Finance", InstitutionType: "federal", RegionID: "1", SectorID: "1"},
		{ID: "2", Name: "Ministry of Education", InstitutionType: "federal", RegionID: "1", SectorID: "2"},
		{ID: "3", Name: "Addis Ababa Health Bureau", InstitutionType: "regional", RegionID: "2", SectorID: "3"},
	} {
		m.institutions[in.ID] = in
	}

	for _, u := range []*model.User{
		{ID: "1", Name: "System Administrator", Email: "admin@econsult.gov.et", Role: model.RoleSuperAdmin},
		{ID: "10", Name: "Hana Tesfaye", Email: "hana.tesfaye@mof.gov.et", Role: model.RoleUploader, InstitutionID: "1", RegionID: "1"},
		{ID: "11", Name: "Dawit Bekele", Email: "dawit.bekele@mof.gov.et", Role: model.RoleApprover, InstitutionID: "1", RegionID: "1"},
		{ID: "20", Name: "Selam Girma", Email: "selam.girma@moe.gov.et", Role: model.RoleFederalInstitutionsAdmin, InstitutionID: "2", RegionID: "1"},
		{ID: "21", Name: "Yonas Alemu", Email: "yonas.alemu@moe.gov.et", Role: model.RoleCommenter, InstitutionID: "2", RegionID: "1"},
		{ID: "22", Name: "Meron Haile", Email: "meron.haile@moe.gov.et", Role: model.RoleCommenter, InstitutionID: "2", RegionID: "1"},
		{ID: "30", Name: "Abebe Kebede", Email: "abebe.kebede@aahb.gov.et", Role: model.RoleRegionalInstitutionsAdmin, InstitutionID: "3", RegionID: "2"},
		{ID: "31", Name: "Tigist Worku", Email: "tigist.worku@aahb.gov.et", Role: model.RoleCommenter, InstitutionID: "3", RegionID: "2"},
	} {
		m.users[u.ID] = u
	}

	for _, d := range []*model.Draft{
		{ID: "42", ShortTitle: "Investment Proclamation", InstitutionID: "1", Sectors: []string{"1"}, Tags: []string{"investment"}, Status: "published", Summary: "Revision of the investment proclamation"},
		{ID: "43", ShortTitle: "Education Development Roadmap", InstitutionID: "2", Sectors: []string{"2"}, Status: "published"},
		{ID: "44", ShortTitle: "Public Health Emergency Directive", InstitutionID: "3", Sectors: []string{"3"}, IsPrivate: true, Status: "draft"},
	} {
		m.drafts[d.ID] = d
	}

	accepted := &model.CommentRequest{
		ID: "7", DraftID: "43", InstitutionID: "3", State: model.RequestStateAccepted,
		CommentOpeningDate: now.Format("2006-01-02"), CommentClosingDate: now.AddDate(0, 1, 0).Format("2006-01-02"),
		CreatedAt: now.Add(-48 * time.Hour), UpdatedAt: now.Add(-24 * time.Hour),
	}
	m.commentRequests[accepted.ID] = accepted
}

// ================== error simulation ==================

// SetGlobalError makes every operation fail with err
func (m *MockBackend) SetGlobalError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalError = err
}

// SetErrorForOperation makes the named operation (e.g. "AcceptCommentRequest") fail with err
func (m *MockBackend) SetErrorForOperation(operation string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operationErrors[operation] = err
}

// SetErrorForResource makes every operation on the given id fail with err
func (m *MockBackend) SetErrorForResource(id string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resourceErrors[id] = err
}

// ClearErrorSimulation removes every configured error
func (m *MockBackend) ClearErrorSimulation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.globalError = nil
	m.operationErrors = make(map[string]error)
	m.resourceErrors = make(map[string]error)
}

// simulatedError returns the configured error for the call, if any.
// Global errors win over operation errors, which win over resource errors.
// Callers must hold at least a read lock.
func (m *MockBackend) simulatedError(operation, resourceID string) error {
	if m.globalError != nil {
		return m.globalError
	}
	if err, ok := m.operationErrors[operation]; ok {
		return err
	}
	if resourceID != "" {
		if err, ok := m.resourceErrors[resourceID]; ok {
			return err
		}
	}
	return nil
}

// rejected mimics the backend refusing a request
func rejected(format string, args ...any) error {
	return errors.NewRemote(http.StatusUnprocessableEntity, fmt.Sprintf(format, args...))
}

// ================== utilities for tests ==================

// AddDraft stores a draft
func (m *MockBackend) AddDraft(d *model.Draft) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.drafts[d.ID] = d
}

// AddUser stores a user
func (m *MockBackend) AddUser(u *model.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.ID] = u
}

// AddInstitution stores an institution
func (m *MockBackend) AddInstitution(in *model.Institution) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.institutions[in.ID] = in
}

// AddCommentRequest stores a comment request as is
func (m *MockBackend) AddCommentRequest(cr *model.CommentRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commentRequests[cr.ID] = cr
}

// OpeningRejection returns the last opening rejection recorded for a draft
func (m *MockBackend) OpeningRejection(draftID string) (*model.OpeningRejection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.openingRejections[draftID]
	return r, ok
}

// ClearAll clears all mock data (useful for testing)
func (m *MockBackend) ClearAll() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.institutions = make(map[string]*model.Institution)
	m.regions = make(map[string]*model.Region)
	m.sectors = make(map[string]*model.Sector)
	m.users = make(map[string]*model.User)
	m.drafts = make(map[string]*model.Draft)
	m.commentRequests = make(map[string]*model.CommentRequest)
	m.assignments = make(map[string]*model.CommenterAssignment)
	m.reflections = make(map[string][]*model.Reflection)
	m.openingRejections = make(map[string]*model.OpeningRejection)
	m.globalError = nil
	m.operationErrors = make(map[string]error)
	m.resourceErrors = make(map[string]error)
}

// IsReady checks if the backend is ready (always returns nil unless an error is simulated)
func (m *MockBackend) IsReady(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.simulatedError("IsReady", ""); err != nil {
		return err
	}
	slog.DebugContext(ctx, "mock backend ready check: always ready")
	return nil
}

// sortedKeys returns map keys in a stable order for deterministic listings
func sortedKeys[V any](in map[string]V) []string {
	keys := make([]string, 0, len(in))
	for k := range in {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int {
		if len(a) != len(b) {
			return len(a) - len(b)
		}
		return strings.Compare(a, b)
	})
	return keys
}

func newID() string {
	return uuid.New().String()
}
