package places

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"safespot/internal/infra/dbx"
	"safespot/internal/metrics"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Store interface {
	List(ctx context.Context, filter Filter) ([]PlaceRow, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PlaceRow, error)
	Create(ctx context.Context, place *Place) error
}

type Repository struct {
	db dbx.Querier
}

func NewRepository(q dbx.Querier) *Repository {
	return &Repository{db: q}
}

// reviewsJSON aggregates a place's reviews, oldest first, each with its tags
// in submitted order.
const reviewsJSON = `
	COALESCE((
		SELECT json_agg(json_build_object(
			'id', r.id,
			'rating', r.rating,
			'safety_score', r.safety_score,
			'created_at', r.created_at,
			'tags', COALESCE((
				SELECT json_agg(rt.tag ORDER BY rt.position) FROM review_tags rt WHERE rt.review_id = r.id
			), '[]'::json)
		) ORDER BY r.created_at ASC)
		FROM reviews r
		WHERE r.place_id = p.id
	), '[]'::json)`

const placeColumns = `
	p.id, p.name, p.category, p.location, p.description,
	p.coordinates::text, p.hours, p.image_url, p.created_at, p.updated_at`

// List returns places matching filter, newest first, each joined with its
// reviews and their tags.
func (r *Repository) List(ctx context.Context, filter Filter) (_ []PlaceRow, err error) {
	defer metrics.ObserveQuery("places.list", time.Now(), &err)

	filter = filter.normalize()

	var (
		where      []string
		args       []any
		argCounter = 1
	)

	if filter.Category != "" {
		where = append(where, fmt.Sprintf("p.category = $%d", argCounter))
		args = append(args, filter.Category)
		argCounter++
	}

	if filter.Search != "" {
		where = append(where, fmt.Sprintf(
			"(p.name ILIKE $%d OR p.location ILIKE $%d)", argCounter, argCounter,
		))
		args = append(args, likePattern(filter.Search))
		argCounter++
	}

	query := "SELECT" + placeColumns + "," + reviewsJSON + " AS reviews\nFROM places p"
	if len(where) > 0 {
		query += "\nWHERE " + strings.Join(where, " AND ")
	}
	query += "\nORDER BY p.created_at DESC, p.id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying places: %w", err)
	}
	defer rows.Close()

	out := make([]PlaceRow, 0)
	for rows.Next() {
		var (
			row         PlaceRow
			coordinates sql.NullString
			reviews     []byte
		)
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Category,
			&row.Location,
			&row.Description,
			&coordinates,
			&row.Hours,
			&row.ImageURL,
			&row.CreatedAt,
			&row.UpdatedAt,
			&reviews,
		); err != nil {
			return nil, fmt.Errorf("error scanning place row: %w", err)
		}
		if coordinates.Valid {
			row.Coordinates = &coordinates.String
		}
		if row.Reviews, err = decodeReviews(reviews); err != nil {
			return nil, fmt.Errorf("place %s: %w", row.ID, err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows places: %w", err)
	}

	return out, nil
}

// GetByID returns one place with its reviews, their tags and its images.
// It returns ErrPlaceNotFound when no row matches.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (_ *PlaceRow, err error) {
	defer metrics.ObserveQuery("places.get", time.Now(), &err)

	query := "SELECT" + placeColumns + "," + reviewsJSON + ` AS reviews,
	ARRAY(
		SELECT pi.image_url FROM place_images pi
		WHERE pi.place_id = p.id
		ORDER BY pi.created_at
	) AS images
FROM places p
WHERE p.id = $1`

	var (
		row         PlaceRow
		coordinates sql.NullString
		reviews     []byte
	)
	err = r.db.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.Name,
		&row.Category,
		&row.Location,
		&row.Description,
		&coordinates,
		&row.Hours,
		&row.ImageURL,
		&row.CreatedAt,
		&row.UpdatedAt,
		&reviews,
		&row.Images,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPlaceNotFound
		}
		return nil, fmt.Errorf("error fetching place: %w", err)
	}
	if coordinates.Valid {
		row.Coordinates = &coordinates.String
	}
	if row.Reviews, err = decodeReviews(reviews); err != nil {
		return nil, fmt.Errorf("place %s: %w", row.ID, err)
	}
	if row.Images == nil {
		row.Images = []string{}
	}

	return &row, nil
}

// Create inserts place and fills in the generated id and timestamps.
func (r *Repository) Create(ctx context.Context, place *Place) (err error) {
	defer metrics.ObserveQuery("places.create", time.Now(), &err)

	const query = `
	INSERT INTO places (
		name, category, location, description,
		coordinates, hours, image_url
	) VALUES (
		$1, $2, $3, $4, $5::text::point, $6, $7
	)
	RETURNING id, created_at, updated_at
	`
	err = r.db.QueryRow(ctx, query,
		place.Name,
		place.Category,
		place.Location,
		place.Description,
		place.Coordinates,
		place.Hours,
		place.ImageURL,
	).Scan(&place.ID, &place.CreatedAt, &place.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting place: %w", err)
	}
	return nil
}

func decodeReviews(raw []byte) ([]ReviewRow, error) {
	reviews := make([]ReviewRow, 0)
	if len(raw) == 0 {
		return reviews, nil
	}
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("decode joined reviews: %w", err)
	}
	return reviews, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a "contains" ILIKE pattern, escaping wildcards in s.
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
