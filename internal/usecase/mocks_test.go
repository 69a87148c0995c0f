package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/pkg/apperror"
)

// In-memory fakes for the store contracts. Documents are stored by value so
// callers cannot mutate the "persisted" state through returned pointers.

type mockDocsRepo struct {
	docs     map[uuid.UUID]domain.ResumeDocument
	failNext error
	createdN int
	updatedN int
}

func newMockDocsRepo() *mockDocsRepo {
	return &mockDocsRepo{docs: map[uuid.UUID]domain.ResumeDocument{}}
}

func (m *mockDocsRepo) FindOne(_ context.Context, ownerID, id uuid.UUID) (*domain.ResumeDocument, error) {
	doc, ok := m.docs[id]
	if !ok || doc.OwnerID != ownerID {
		return nil, apperror.NotFound("resume")
	}
	doc.Data.Normalize()
	out := doc
	return &out, nil
}

func (m *mockDocsRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]domain.ResumeDocument, error) {
	out := []domain.ResumeDocument{}
	for _, d := range m.docs {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (m *mockDocsRepo) Create(_ context.Context, doc *domain.ResumeDocument, maxDocs int) error {
	if m.failNext != nil {
		err := m.failNext
		m.failNext = nil
		return err
	}
	if maxDocs > 0 {
		count := 0
		for _, d := range m.docs {
			if d.OwnerID == doc.OwnerID {
				count++
			}
		}
		if count >= maxDocs {
			return apperror.PlanLimit(maxDocs)
		}
	}
	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now
	m.docs[doc.ID] = *doc
	m.createdN++
	return nil
}

func (m *mockDocsRepo) Update(_ context.Context, doc *domain.ResumeDocument) error {
	stored, ok := m.docs[doc.ID]
	if !ok || stored.OwnerID != doc.OwnerID {
		return apperror.NotFound("resume")
	}
	doc.UpdatedAt = time.Now().UTC()
	m.docs[doc.ID] = *doc
	m.updatedN++
	return nil
}

func (m *mockDocsRepo) Delete(_ context.Context, ownerID, id uuid.UUID) error {
	doc, ok := m.docs[id]
	if !ok || doc.OwnerID != ownerID {
		return apperror.NotFound("resume")
	}
	delete(m.docs, id)
	return nil
}

func (m *mockDocsRepo) CountByOwner(_ context.Context, ownerID uuid.UUID) (int, error) {
	count := 0
	for _, d := range m.docs {
		if d.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

type mockUsersRepo struct {
	users map[uuid.UUID]domain.User
}

func newMockUsersRepo() *mockUsersRepo {
	return &mockUsersRepo{users: map[uuid.UUID]domain.User{}}
}

func (m *mockUsersRepo) addUser(plan string) uuid.UUID {
	id := uuid.New()
	m.users[id] = domain.User{ID: id, Email: id.String() + "@example.com", Plan: plan}
	return id
}

func (m *mockUsersRepo) Create(_ context.Context, u *domain.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return apperror.Conflict("email already registered")
		}
	}
	u.ID = uuid.New()
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.users[u.ID] = *u
	return nil
}

func (m *mockUsersRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, apperror.NotFound("user")
}

func (m *mockUsersRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, apperror.NotFound("user")
	}
	out := u
	return &out, nil
}

type mockRenderer struct {
	pdf  []byte
	err  error
	seen string
}

func (m *mockRenderer) RenderHTMLToPDF(_ context.Context, html string) ([]byte, error) {
	m.seen = html
	if m.err != nil {
		return nil, m.err
	}
	if m.pdf != nil {
		return m.pdf, nil
	}
	return []byte("%PDF-1.4 fake"), nil
}

var errBoom = errors.New("boom")

func testLogger() *zap.Logger { return zap.NewNop() }
