package usecase

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
	"resume-builder/pkg/apperror"
)

// DocumentsRepo is the document store contract consumed by the core. FindOne,
// Update and Delete are ownership-scoped: a document that exists but belongs
// to another user is indistinguishable from an absent one.
type DocumentsRepo interface {
	FindOne(ctx context.Context, ownerID, id uuid.UUID) (*domain.ResumeDocument, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ResumeDocument, error)
	// Create persists a new document. When maxDocs > 0 the insert and the
	// owner count check run in one transaction, so concurrent creations
	// cannot exceed the cap; apperror.ErrPlanLimit is returned at the cap.
	Create(ctx context.Context, doc *domain.ResumeDocument, maxDocs int) error
	Update(ctx context.Context, doc *domain.ResumeDocument) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}

// UsersRepo is the identity store contract consumed by the core.
type UsersRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// DocumentService implements the resume document operations. Identity is an
// explicit parameter on every call; there is no ambient session state.
type DocumentService struct {
	docs      DocumentsRepo
	users     UsersRepo
	freeLimit int
	log       *zap.Logger
}

func NewDocumentService(docs DocumentsRepo, users UsersRepo, freeLimit int, log *zap.Logger) *DocumentService {
	return &DocumentService{docs: docs, users: users, freeLimit: freeLimit, log: log}
}

func (s *DocumentService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.ResumeDocument, error) {
	return s.docs.ListByOwner(ctx, ownerID)
}

func (s *DocumentService) Get(ctx context.Context, ownerID, id uuid.UUID) (*domain.ResumeDocument, error) {
	return s.docs.FindOne(ctx, ownerID, id)
}

// CreateParams carries the optional fields of a create request; zero values
// fall back to the document defaults.
type CreateParams struct {
	Title    string
	Template string
	Data     *model.ResumeData
}

// Create builds a default-populated draft, applies the free-plan cap and
// persists it. The cap check happens before any write.
func (s *DocumentService) Create(ctx context.Context, ownerID uuid.UUID, p CreateParams) (*domain.ResumeDocument, error) {
	doc := &domain.ResumeDocument{
		OwnerID:  ownerID,
		Title:    p.Title,
		Template: p.Template,
		Data:     model.NewResumeData(),
	}
	if doc.Title == "" {
		doc.Title = model.DefaultTitle
	}
	if !model.ValidTemplate(doc.Template) {
		doc.Template = model.TemplateModern
	}
	if p.Data != nil {
		doc.Data = *p.Data
		doc.Data.Normalize()
	}

	maxDocs := 0
	user, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if user.Plan == domain.PlanFree {
		maxDocs = s.freeLimit
	}

	if err := s.docs.Create(ctx, doc, maxDocs); err != nil {
		return nil, err
	}
	s.log.Info("resume created",
		zap.String("resume_id", doc.ID.String()),
		zap.String("owner_id", ownerID.String()))
	return doc, nil
}

// UpdateParams carries a partial document update; nil fields are left
// untouched. A save persists the whole document atomically as one write.
type UpdateParams struct {
	Title    *string
	Template *string
	Data     *model.ResumeData
	IsPublic *bool
}

func (s *DocumentService) Update(ctx context.Context, ownerID, id uuid.UUID, p UpdateParams) (*domain.ResumeDocument, error) {
	doc, err := s.docs.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		doc.Title = *p.Title
		if doc.Title == "" {
			doc.Title = model.DefaultTitle
		}
	}
	if p.Template != nil {
		if !model.ValidTemplate(*p.Template) {
			return nil, apperror.ValidationFailed("template", "unknown template "+*p.Template)
		}
		doc.Template = *p.Template
	}
	if p.Data != nil {
		doc.Data = *p.Data
		doc.Data.Normalize()
	}
	if p.IsPublic != nil {
		doc.IsPublic = *p.IsPublic
	}
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Delete is a hard delete; there is no tombstone state.
func (s *DocumentService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.docs.Delete(ctx, ownerID, id)
}

// AddEntry appends a default entry to the named repeatable section and
// persists the document. Returns the new entry and the updated document.
func (s *DocumentService) AddEntry(ctx context.Context, ownerID, id uuid.UUID, section string) (interface{}, *domain.ResumeDocument, error) {
	if !model.ValidSection(section) {
		return nil, nil, apperror.ValidationFailed("section", "unknown section "+section)
	}
	doc, err := s.docs.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, nil, err
	}
	entry, err := doc.Data.AddEntry(section)
	if err != nil {
		return nil, nil, apperror.ValidationFailed("section", err.Error())
	}
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, nil, err
	}
	return entry, doc, nil
}

// UpdateEntryField replaces one named field on a section entry and persists
// the document. An unknown entry id is a silent no-op on the stored state.
func (s *DocumentService) UpdateEntryField(ctx context.Context, ownerID, id uuid.UUID, section, entryID, field, value string) (*domain.ResumeDocument, error) {
	if !model.ValidSection(section) {
		return nil, apperror.ValidationFailed("section", "unknown section "+section)
	}
	doc, err := s.docs.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	found, err := doc.Data.UpdateEntryField(section, entryID, field, value)
	if err != nil {
		return nil, apperror.ValidationFailed(field, err.Error())
	}
	if !found {
		return doc, nil
	}
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// RemoveEntry filters an entry out of a section and persists the document.
// Removing a nonexistent id leaves the document unchanged.
func (s *DocumentService) RemoveEntry(ctx context.Context, ownerID, id uuid.UUID, section, entryID string) (*domain.ResumeDocument, error) {
	if !model.ValidSection(section) {
		return nil, apperror.ValidationFailed("section", "unknown section "+section)
	}
	doc, err := s.docs.FindOne(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	removed, err := doc.Data.RemoveEntry(section, entryID)
	if err != nil {
		return nil, apperror.ValidationFailed("section", err.Error())
	}
	if !removed {
		return doc, nil
	}
	if err := s.docs.Update(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DecodeData parses and schema-validates a raw resume data payload.
func DecodeData(raw json.RawMessage) (*model.ResumeData, error) {
	if err := model.ValidateDataJSON(raw); err != nil {
		return nil, apperror.ValidationFailed("data", err.Error())
	}
	var data model.ResumeData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, apperror.ValidationFailed("data", err.Error())
	}
	data.Normalize()
	return &data, nil
}
