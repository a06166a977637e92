package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/careerforge/resume-tailor/internal/types"
)

// GetSkillProfile retrieves the owner's skill profile, or nil if none has
// been accumulated yet
func (db *DB) GetSkillProfile(ctx context.Context, ownerID uuid.UUID) (*types.SkillProfile, error) {
	var skillsJSON []byte
	err := db.pool.QueryRow(ctx,
		`SELECT skills FROM skill_profiles WHERE owner_id = $1`,
		ownerID,
	).Scan(&skillsJSON)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get skill profile: %w", err)
	}

	profile := types.SkillProfile{OwnerID: ownerID}
	if err := json.Unmarshal(skillsJSON, &profile.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skill profile: %w", err)
	}
	return &profile, nil
}

// UpsertSkillProfile writes the owner's skill profile, replacing any
// previous snapshot
func (db *DB) UpsertSkillProfile(ctx context.Context, profile *types.SkillProfile) error {
	skillsJSON, err := json.Marshal(profile.Skills)
	if err != nil {
		return fmt.Errorf("failed to marshal skill profile: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO skill_profiles (owner_id, skills)
		 VALUES ($1, $2)
		 ON CONFLICT (owner_id) DO UPDATE SET skills = $2, updated_at = NOW()`,
		profile.OwnerID, skillsJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert skill profile: %w", err)
	}
	return nil
}
