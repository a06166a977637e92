package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/careerforge/resume-tailor/internal/types"
)

// CreateApplication records a tracked application. The ID and date are
// assigned by the database and written back into app.
func (db *DB) CreateApplication(ctx context.Context, app *types.Application) error {
	err := db.pool.QueryRow(ctx,
		`INSERT INTO applications (owner_id, company, role, status, resume_version, key_emphasis, match_score, feedback)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, date`,
		app.OwnerID, app.Company, app.Role, statusOrDefault(app.Status),
		app.ResumeVersion, app.KeyEmphasis, app.MatchScore, app.Feedback,
	).Scan(&app.ID, &app.Date)
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	app.Status = statusOrDefault(app.Status)
	return nil
}

// GetApplication retrieves one application, scoped to its owner
func (db *DB) GetApplication(ctx context.Context, ownerID, id uuid.UUID) (*types.Application, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, company, role, date, status, resume_version, key_emphasis, match_score, feedback
		 FROM applications WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	app, err := scanApplication(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListApplications retrieves all applications for an owner, newest first
func (db *DB) ListApplications(ctx context.Context, ownerID uuid.UUID) ([]types.Application, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, company, role, date, status, resume_version, key_emphasis, match_score, feedback
		 FROM applications WHERE owner_id = $1 ORDER BY date DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []types.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

// UpdateApplicationStatus changes the status and optionally the feedback of
// an application. Returns whether a row was updated.
func (db *DB) UpdateApplicationStatus(ctx context.Context, ownerID, id uuid.UUID, status, feedback string) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE applications SET status = $1, feedback = COALESCE(NULLIF($2, ''), feedback)
		 WHERE id = $3 AND owner_id = $4`,
		status, feedback, id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update application: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteApplication removes an application. Returns whether a row was
// deleted.
func (db *DB) DeleteApplication(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM applications WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete application: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanApplication(row rowScanner) (*types.Application, error) {
	var app types.Application
	err := row.Scan(&app.ID, &app.OwnerID, &app.Company, &app.Role, &app.Date,
		&app.Status, &app.ResumeVersion, &app.KeyEmphasis, &app.MatchScore, &app.Feedback)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func statusOrDefault(status string) string {
	if status == "" {
		return "draft"
	}
	return status
}
