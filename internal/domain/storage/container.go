package storage

import (
	"context"
	"fmt"

	"safespot/internal/domain/places"
	"safespot/internal/domain/reviews"
	"safespot/internal/infra/dbx"
)

type Container struct {
	pool    dbx.Beginner // required by WithReviewTx
	Places  *places.Repository
	Reviews *reviews.Repository
}

func NewContainer(db dbx.Beginner) *Container {
	return &Container{
		pool:    db,
		Places:  places.NewRepository(db),
		Reviews: reviews.NewRepository(db),
	}
}

// WithReviewTx runs a review unit-of-work atomically: fn gets a reviews store
// bound to one transaction which is committed only if fn returns nil.
func (c *Container) WithReviewTx(ctx context.Context, fn func(reviews.Store) error) error {
	if c.pool == nil {
		return fmt.Errorf("storage container pool is nil")
	}

	tx, err := c.pool.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(reviews.NewRepository(tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit(ctx)
}
