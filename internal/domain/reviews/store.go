package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"safespot/internal/infra/dbx"
	"safespot/internal/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store interface {
	List(ctx context.Context, placeID *uuid.UUID) ([]ReviewWithTags, error)
	Insert(ctx context.Context, review *Review) error
	InsertTags(ctx context.Context, reviewID uuid.UUID, tags []string) error
	IncrementHelpful(ctx context.Context, reviewID uuid.UUID) (int, error)
}

// TxRunner runs fn against a Store bound to one transaction, committing
// when fn returns nil and rolling back otherwise.
type TxRunner interface {
	WithReviewTx(ctx context.Context, fn func(Store) error) error
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

// List returns reviews newest first, optionally only those of one place.
func (r *Repository) List(ctx context.Context, placeID *uuid.UUID) (_ []ReviewWithTags, err error) {
	defer metrics.ObserveQuery("reviews.list", time.Now(), &err)

	query := `
	SELECT r.id, r.place_id, r.user_id, r.author_name, r.rating, r.safety_score,
	       r.review_text, r.visit_time, r.would_recommend, r.helpful_count,
	       r.created_at, r.updated_at,
	       ARRAY(
	           SELECT rt.tag FROM review_tags rt
	           WHERE rt.review_id = r.id
	           ORDER BY rt.position
	       ) AS tags
	FROM reviews r`

	var args []any
	if placeID != nil {
		query += "\n\tWHERE r.place_id = $1"
		args = append(args, *placeID)
	}
	query += "\n\tORDER BY r.created_at DESC, r.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	out := make([]ReviewWithTags, 0)
	for rows.Next() {
		var rv ReviewWithTags
		if err := rows.Scan(
			&rv.ID,
			&rv.PlaceID,
			&rv.UserID,
			&rv.AuthorName,
			&rv.Rating,
			&rv.SafetyScore,
			&rv.ReviewText,
			&rv.VisitTime,
			&rv.WouldRecommend,
			&rv.HelpfulCount,
			&rv.CreatedAt,
			&rv.UpdatedAt,
			&rv.Tags,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		if rv.Tags == nil {
			rv.Tags = []string{}
		}
		out = append(out, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Insert stores review and fills in its id, counter and timestamps.
func (r *Repository) Insert(ctx context.Context, review *Review) (err error) {
	defer metrics.ObserveQuery("reviews.insert", time.Now(), &err)

	query := `
        INSERT INTO reviews (
            place_id, user_id, author_name, rating, safety_score,
            review_text, visit_time, would_recommend
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, helpful_count, created_at, updated_at
    `
	err = r.db.QueryRow(ctx, query,
		review.PlaceID,
		review.UserID,
		review.AuthorName,
		review.Rating,
		review.SafetyScore,
		review.ReviewText,
		review.VisitTime,
		review.WouldRecommend,
	).Scan(&review.ID, &review.HelpfulCount, &review.CreatedAt, &review.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return ErrUnknownPlace
		}
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// InsertTags stores one review_tags row per tag with a single statement.
// position records the submitted order; reads sort by it.
func (r *Repository) InsertTags(ctx context.Context, reviewID uuid.UUID, tags []string) (err error) {
	defer metrics.ObserveQuery("reviews.insert_tags", time.Now(), &err)

	query := `
        INSERT INTO review_tags (review_id, tag, position)
        SELECT $1, t.tag, t.ord
        FROM unnest($2::text[]) WITH ORDINALITY AS t(tag, ord)
    `
	tag, err := r.db.Exec(ctx, query, reviewID, tags)
	if err != nil {
		return fmt.Errorf("failed to insert review tags: %w", err)
	}
	if n := tag.RowsAffected(); n != int64(len(tags)) {
		return fmt.Errorf("inserted %d of %d review tags", n, len(tags))
	}
	return nil
}

// IncrementHelpful adds one to the helpful counter in a single statement so
// concurrent votes are never lost, and returns the new value.
func (r *Repository) IncrementHelpful(ctx context.Context, reviewID uuid.UUID) (_ int, err error) {
	defer metrics.ObserveQuery("reviews.increment_helpful", time.Now(), &err)

	query := `
        UPDATE reviews
        SET helpful_count = helpful_count + 1
        WHERE id = $1
        RETURNING helpful_count
    `
	var count int
	if err = r.db.QueryRow(ctx, query, reviewID).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrReviewNotFound
		}
		return 0, fmt.Errorf("failed to increment helpful count: %w", err)
	}
	return count, nil
}
