package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/careerforge/resume-tailor/internal/types"
)

// CreateExperience inserts an experience at the end of the owner's display
// ordering, together with its accomplishments. IDs are assigned by the
// database and written back into exp.
func (db *DB) CreateExperience(ctx context.Context, exp *types.Experience) error {
	skillsJSON, err := json.Marshal(exp.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO experiences (owner_id, organization, role, period, type, skills, display_order, extracted_from)
		 VALUES ($1, $2, $3, $4, $5, $6,
		         (SELECT COALESCE(MAX(display_order) + 1, 0) FROM experiences WHERE owner_id = $1),
		         $7)
		 RETURNING id, display_order`,
		exp.OwnerID, exp.Organization, exp.Role, exp.Period, string(exp.Type), skillsJSON, extractedFromArray(exp.ExtractedFrom),
	).Scan(&exp.ID, &exp.DisplayOrder)
	if err != nil {
		return fmt.Errorf("failed to create experience: %w", err)
	}

	for i := range exp.Accomplishments {
		a := &exp.Accomplishments[i]
		a.ExperienceID = exp.ID
		if err := insertAccomplishment(ctx, tx, a); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// GetExperience retrieves one experience with its accomplishments loaded
func (db *DB) GetExperience(ctx context.Context, ownerID, id uuid.UUID) (*types.Experience, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT id, owner_id, organization, role, period, type, skills, display_order, extracted_from
		 FROM experiences WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	exp, err := scanExperience(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get experience: %w", err)
	}

	accs, err := db.listAccomplishments(ctx, []uuid.UUID{exp.ID})
	if err != nil {
		return nil, err
	}
	exp.Accomplishments = accs[exp.ID]
	return exp, nil
}

// ListExperiences retrieves all experiences for an owner in display order,
// with accomplishments loaded
func (db *DB) ListExperiences(ctx context.Context, ownerID uuid.UUID) ([]types.Experience, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, owner_id, organization, role, period, type, skills, display_order, extracted_from
		 FROM experiences WHERE owner_id = $1 ORDER BY display_order`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	var (
		exps []types.Experience
		ids  []uuid.UUID
	)
	for rows.Next() {
		exp, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		exps = append(exps, *exp)
		ids = append(ids, exp.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	accs, err := db.listAccomplishments(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range exps {
		exps[i].Accomplishments = accs[exps[i].ID]
	}
	return exps, nil
}

// DeleteExperience removes an experience and closes the gap in the owner's
// display ordering. Returns whether a row was deleted.
func (db *DB) DeleteExperience(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM experiences WHERE id = $1 AND owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := renumberExperiences(ctx, tx, ownerID); err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}

// UpdateDisplayOrder persists a full reordering in one transaction. The
// slice must carry the owner's experiences with their new DisplayOrder
// values already assigned.
func (db *DB) UpdateDisplayOrder(ctx context.Context, ownerID uuid.UUID, ordered []types.Experience) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, exp := range ordered {
		_, err := tx.Exec(ctx,
			`UPDATE experiences SET display_order = $1 WHERE id = $2 AND owner_id = $3`,
			exp.DisplayOrder, exp.ID, ownerID,
		)
		if err != nil {
			return fmt.Errorf("failed to update display order: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// UpdateExperienceSkills replaces the skill evidence list on an experience
func (db *DB) UpdateExperienceSkills(ctx context.Context, ownerID, id uuid.UUID, skills []types.SkillEvidence) error {
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	_, err = db.pool.Exec(ctx,
		`UPDATE experiences SET skills = $1 WHERE id = $2 AND owner_id = $3`,
		skillsJSON, id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to update experience skills: %w", err)
	}
	return nil
}

// AddSourceDocument records that an experience was also observed in the
// given document
func (db *DB) AddSourceDocument(ctx context.Context, ownerID, id, docID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE experiences SET extracted_from = array_append(extracted_from, $1)
		 WHERE id = $2 AND owner_id = $3 AND NOT ($1 = ANY(extracted_from))`,
		docID, id, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to add source document: %w", err)
	}
	return nil
}

// AddAccomplishments inserts new accomplishments under an experience.
// Duplicates of already-stored descriptions are skipped by the unique
// index rather than rejected. IDs are written back into accs.
func (db *DB) AddAccomplishments(ctx context.Context, experienceID uuid.UUID, accs []types.Accomplishment) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for i := range accs {
		accs[i].ExperienceID = experienceID
		if err := insertAccomplishment(ctx, tx, &accs[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

// DeleteAccomplishment removes one accomplishment, scoped to the owner
// through its experience. Returns whether a row was deleted.
func (db *DB) DeleteAccomplishment(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM accomplishments a USING experiences e
		 WHERE a.id = $1 AND a.experience_id = e.id AND e.owner_id = $2`,
		id, ownerID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete accomplishment: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func insertAccomplishment(ctx context.Context, tx pgx.Tx, a *types.Accomplishment) error {
	tagsJSON, err := json.Marshal(tagsOrEmpty(a.Tags))
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	err = tx.QueryRow(ctx,
		`INSERT INTO accomplishments (experience_id, description, category, tags)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (experience_id, lower(trim(description))) DO UPDATE SET category = accomplishments.category
		 RETURNING id`,
		a.ExperienceID, a.Description, categoryOrDefault(a.Category), tagsJSON,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("failed to insert accomplishment: %w", err)
	}
	return nil
}

// listAccomplishments loads accomplishments for a set of experiences in a
// single query, grouped by experience ID in insertion order.
func (db *DB) listAccomplishments(ctx context.Context, experienceIDs []uuid.UUID) (map[uuid.UUID][]types.Accomplishment, error) {
	if len(experienceIDs) == 0 {
		return map[uuid.UUID][]types.Accomplishment{}, nil
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, experience_id, description, category, tags
		 FROM accomplishments WHERE experience_id = ANY($1) ORDER BY created_at, id`,
		experienceIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list accomplishments: %w", err)
	}
	defer rows.Close()

	var accs []types.Accomplishment
	for rows.Next() {
		var (
			a        types.Accomplishment
			tagsJSON []byte
		)
		if err := rows.Scan(&a.ID, &a.ExperienceID, &a.Description, &a.Category, &tagsJSON); err != nil {
			return nil, fmt.Errorf("failed to scan accomplishment: %w", err)
		}
		if err := json.Unmarshal(tagsJSON, &a.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
		accs = append(accs, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groupAccomplishments(accs), nil
}

func groupAccomplishments(accs []types.Accomplishment) map[uuid.UUID][]types.Accomplishment {
	grouped := make(map[uuid.UUID][]types.Accomplishment)
	for _, a := range accs {
		grouped[a.ExperienceID] = append(grouped[a.ExperienceID], a)
	}
	return grouped
}

// renumberExperiences compacts display_order back to a dense 0..N-1
// sequence after a deletion.
func renumberExperiences(ctx context.Context, tx pgx.Tx, ownerID uuid.UUID) error {
	_, err := tx.Exec(ctx,
		`UPDATE experiences e SET display_order = r.rn
		 FROM (SELECT id, ROW_NUMBER() OVER (ORDER BY display_order) - 1 AS rn
		       FROM experiences WHERE owner_id = $1) r
		 WHERE e.id = r.id AND e.display_order <> r.rn`,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to renumber experiences: %w", err)
	}
	return nil
}

func scanExperience(row rowScanner) (*types.Experience, error) {
	var (
		exp        types.Experience
		expType    string
		skillsJSON []byte
	)
	err := row.Scan(&exp.ID, &exp.OwnerID, &exp.Organization, &exp.Role, &exp.Period,
		&expType, &skillsJSON, &exp.DisplayOrder, &exp.ExtractedFrom)
	if err != nil {
		return nil, err
	}
	exp.Type = types.ExperienceType(expType)
	if err := json.Unmarshal(skillsJSON, &exp.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	return &exp, nil
}

func extractedFromArray(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}

func categoryOrDefault(category string) string {
	if category == "" {
		return "general"
	}
	return category
}

func tagsOrEmpty(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
