package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"muse/internal/cart"
	"muse/internal/infra"
	"muse/internal/sqlinline"
)

// CartRepositoryPG stores one cart snapshot per client as a jsonb document.
// It mirrors the in-memory semantics: deleting the row is how an emptied cart
// disappears.
type CartRepositoryPG struct {
	db infra.SQLExecutor
}

func NewCartRepository(db infra.SQLExecutor) *CartRepositoryPG {
	return &CartRepositoryPG{db: db}
}

func (r *CartRepositoryPG) Load(ctx context.Context, clientID string) (*cart.Cart, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, sqlinline.QSelectCart, clientID).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	var c cart.Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		return nil, fmt.Errorf("decode cart snapshot: %w", err)
	}
	return &c, nil
}

func (r *CartRepositoryPG) Save(ctx context.Context, clientID string, c cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart snapshot: %w", err)
	}
	if _, err := r.db.Exec(ctx, sqlinline.QUpsertCart, clientID, payload); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (r *CartRepositoryPG) Delete(ctx context.Context, clientID string) error {
	if _, err := r.db.Exec(ctx, sqlinline.QDeleteCart, clientID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

var _ cart.Repository = (*CartRepositoryPG)(nil)
