package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"resume-builder/internal/domain"
	"resume-builder/pkg/apperror"
)

// DocumentsRepo stores resume documents in Postgres. The data column is
// JSONB mirroring model.ResumeData; Normalize runs on every load so rows
// written before the certifications section existed read back with an empty
// slice instead of null.
type DocumentsRepo struct {
	pool *pgxpool.Pool
}

func NewDocumentsRepo(pool *pgxpool.Pool) *DocumentsRepo {
	return &DocumentsRepo{pool: pool}
}

const documentColumns = `id, user_id, title, template, data, is_public, created_at, updated_at`

func scanDocument(row pgx.Row) (*domain.ResumeDocument, error) {
	var doc domain.ResumeDocument
	var dataB []byte
	err := row.Scan(&doc.ID, &doc.OwnerID, &doc.Title, &doc.Template, &dataB,
		&doc.IsPublic, &doc.CreatedAt, &doc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(dataB) > 0 {
		if err := json.Unmarshal(dataB, &doc.Data); err != nil {
			return nil, fmt.Errorf("decode resume data: %w", err)
		}
	}
	doc.Data.Normalize()
	return &doc, nil
}

// FindOne is ownership-scoped: a row owned by another user scans the same
// as a missing row.
func (r *DocumentsRepo) FindOne(ctx context.Context, ownerID, id uuid.UUID) (*domain.ResumeDocument, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+documentColumns+` FROM resumes WHERE id = $1 AND user_id = $2`, id, ownerID)
	doc, err := scanDocument(row)
	if err == pgx.ErrNoRows {
		return nil, apperror.NotFound("resume")
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (r *DocumentsRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.ResumeDocument, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+documentColumns+` FROM resumes WHERE user_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ResumeDocument{}
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *doc)
	}
	return out, rows.Err()
}

// Create inserts a new document, assigning id and timestamps. When maxDocs
// is positive the owner's user row is locked first, so the count check and
// the insert are atomic against concurrent creations from the same account.
func (r *DocumentsRepo) Create(ctx context.Context, doc *domain.ResumeDocument, maxDocs int) error {
	dataB, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode resume data: %w", err)
	}

	doc.ID = uuid.New()
	now := time.Now().UTC()
	doc.CreatedAt = now
	doc.UpdatedAt = now

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if maxDocs > 0 {
		var dummy uuid.UUID
		err := tx.QueryRow(ctx, `SELECT id FROM users WHERE id = $1 FOR UPDATE`, doc.OwnerID).Scan(&dummy)
		if err == pgx.ErrNoRows {
			return apperror.NotFound("user")
		}
		if err != nil {
			return err
		}
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, doc.OwnerID).Scan(&count); err != nil {
			return err
		}
		if count >= maxDocs {
			return apperror.PlanLimit(maxDocs)
		}
	}

	_, err = tx.Exec(ctx, `INSERT INTO resumes (id, user_id, title, template, data, is_public, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		doc.ID, doc.OwnerID, doc.Title, doc.Template, dataB, doc.IsPublic, doc.CreatedAt, doc.UpdatedAt)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// Update persists the whole document as one write.
func (r *DocumentsRepo) Update(ctx context.Context, doc *domain.ResumeDocument) error {
	dataB, err := json.Marshal(doc.Data)
	if err != nil {
		return fmt.Errorf("encode resume data: %w", err)
	}
	doc.UpdatedAt = time.Now().UTC()

	tag, err := r.pool.Exec(ctx, `UPDATE resumes
		SET title = $3, template = $4, data = $5, is_public = $6, updated_at = $7
		WHERE id = $1 AND user_id = $2`,
		doc.ID, doc.OwnerID, doc.Title, doc.Template, dataB, doc.IsPublic, doc.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("resume")
	}
	return nil
}

// Delete hard-deletes a document owned by ownerID.
func (r *DocumentsRepo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperror.NotFound("resume")
	}
	return nil
}

func (r *DocumentsRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, ownerID).Scan(&count)
	return count, err
}
