package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/careerforge/resume-tailor/internal/types"
)

// CreateDocument inserts an uploaded document record. The ID and upload
// timestamp are assigned by the database and written back into doc.
func (db *DB) CreateDocument(ctx context.Context, doc *types.RawDocument) error {
	skillsJSON, err := json.Marshal(doc.SkillsIdentified)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	err = db.pool.QueryRow(ctx,
		`INSERT INTO raw_documents (owner_id, filename, mime_class, byte_size, storage_path, skills_identified, confidence_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, uploaded_at`,
		doc.OwnerID, doc.Filename, string(doc.MimeClass), doc.ByteSize, doc.StoragePath, skillsJSON, doc.ConfidenceScore,
	).Scan(&doc.ID, &doc.UploadedAt)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID, scoped to its owner
func (db *DB) GetDocument(ctx context.Context, ownerID, id uuid.UUID) (*types.RawDocument, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, filename, mime_class, byte_size, storage_path, skills_identified, confidence_score, uploaded_at
		 FROM raw_documents WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	doc, err := scanDocument(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// ListDocuments retrieves all documents for an owner, newest first
func (db *DB) ListDocuments(ctx context.Context, ownerID uuid.UUID) ([]types.RawDocument, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, filename, mime_class, byte_size, storage_path, skills_identified, confidence_score, uploaded_at
		 FROM raw_documents WHERE owner_id = $1 ORDER BY uploaded_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []types.RawDocument
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document: %w", err)
		}
		docs = append(docs, *doc)
	}
	return docs, rows.Err()
}

// DeleteDocument removes a document and cascades to the experiences that
// were extracted solely from it. Experiences with other source documents
// keep their remaining sources. Returns whether a document was deleted.
func (db *DB) DeleteDocument(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM raw_documents WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete document: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	// Experiences whose only source was this document go with it.
	_, err = tx.Exec(ctx,
		`DELETE FROM experiences
		 WHERE owner_id = $1 AND extracted_from <@ ARRAY[$2]::uuid[] AND cardinality(extracted_from) > 0`,
		ownerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to cascade experiences: %w", err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE experiences SET extracted_from = array_remove(extracted_from, $2)
		 WHERE owner_id = $1 AND $2 = ANY(extracted_from)`,
		ownerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("failed to detach experiences: %w", err)
	}

	if err := renumberExperiences(ctx, tx, ownerID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}

// rowScanner covers pgx.Row and pgx.Rows for shared scan helpers.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*types.RawDocument, error) {
	var (
		doc        types.RawDocument
		mimeClass  string
		skillsJSON []byte
	)
	err := row.Scan(&doc.ID, &doc.OwnerID, &doc.Filename, &mimeClass, &doc.ByteSize,
		&doc.StoragePath, &skillsJSON, &doc.ConfidenceScore, &doc.UploadedAt)
	if err != nil {
		return nil, err
	}
	doc.MimeClass = types.MimeClass(mimeClass)
	if err := json.Unmarshal(skillsJSON, &doc.SkillsIdentified); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	return &doc, nil
}
