package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"muse/internal/infra"
	"muse/internal/profile"
	"muse/internal/sqlinline"
)

// ProfileRepositoryPG stores one style-profile snapshot per client as a jsonb
// document.
type ProfileRepositoryPG struct {
	db infra.SQLExecutor
}

func NewProfileRepository(db infra.SQLExecutor) *ProfileRepositoryPG {
	return &ProfileRepositoryPG{db: db}
}

func (r *ProfileRepositoryPG) Load(ctx context.Context, clientID string) (*profile.StyleProfile, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, sqlinline.QSelectProfile, clientID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	var p profile.StyleProfile
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode profile snapshot: %w", err)
	}
	return &p, nil
}

func (r *ProfileRepositoryPG) Save(ctx context.Context, clientID string, p profile.StyleProfile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile snapshot: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlinline.QUpsertProfile, clientID, payload); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (r *ProfileRepositoryPG) Delete(ctx context.Context, clientID string) error {
	if _, err := r.db.Exec(ctx, sqlinline.QDeleteProfile, clientID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}

var _ profile.Repository = (*ProfileRepositoryPG)(nil)
