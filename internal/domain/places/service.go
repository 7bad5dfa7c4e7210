package places

import (
	"context"
	"errors"
	"strings"

	"safespot/internal/cache"
	"safespot/internal/geo"
	"safespot/internal/stats"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service answers place queries with derived statistics and keeps the query
// cache consistent with place writes.
type Service struct {
	store  Store
	cache  *cache.Cache
	agg    *stats.Aggregator
	logger *zap.SugaredLogger
}

func NewService(store Store, c *cache.Cache, agg *stats.Aggregator, logger *zap.SugaredLogger) *Service {
	return &Service{store: store, cache: c, agg: agg, logger: logger}
}

// ListPlaces returns the places matching filter with at most
// stats.ListTagLimit tags each. Order is newest place first.
func (s *Service) ListPlaces(ctx context.Context, filter Filter) ([]PlaceWithStats, error) {
	filter = filter.normalize()
	key := cache.NewKey(cache.FamilyPlaces, filter.Category, strings.ToLower(filter.Search))

	return cache.Load(ctx, s.cache, key, func(ctx context.Context) ([]PlaceWithStats, error) {
		rows, err := s.store.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		out := make([]PlaceWithStats, 0, len(rows))
		for i := range rows {
			out = append(out, s.withStats(&rows[i], stats.ListTagLimit))
		}
		s.logger.Debugw("places listed", "category", filter.Category, "search", filter.Search, "count", len(out))
		return out, nil
	})
}

// GetPlace returns one place with every tag and its images, or nil when the
// place does not exist.
func (s *Service) GetPlace(ctx context.Context, id uuid.UUID) (*PlaceWithStats, error) {
	key := cache.NewKey(cache.FamilyPlace, id.String())

	return cache.Load(ctx, s.cache, key, func(ctx context.Context) (*PlaceWithStats, error) {
		row, err := s.store.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrPlaceNotFound) {
				return nil, nil
			}
			return nil, err
		}

		p := s.withStats(row, stats.NoTagLimit)
		p.Images = row.Images
		return &p, nil
	})
}

// CreatePlace stores a new place. Coordinates, when given, are persisted in
// the store's "(lng,lat)" form.
func (s *Service) CreatePlace(ctx context.Context, in NewPlace) (*Place, error) {
	place := &Place{
		Name:        in.Name,
		Category:    in.Category,
		Location:    in.Location,
		Description: in.Description,
		Hours:       in.Hours,
		ImageURL:    in.ImageURL,
	}
	if in.Coordinates != nil {
		encoded := geo.Encode(in.Coordinates.Lat, in.Coordinates.Lng)
		place.Coordinates = &encoded
	}

	if err := s.store.Create(ctx, place); err != nil {
		return nil, err
	}

	s.cache.InvalidateFamily(cache.FamilyPlaces)
	s.logger.Infow("place created", "place_id", place.ID, "category", place.Category)

	return place, nil
}

func (s *Service) withStats(row *PlaceRow, tagLimit int) PlaceWithStats {
	samples := make([]stats.Sample, 0, len(row.Reviews))
	for _, r := range row.Reviews {
		samples = append(samples, stats.Sample{
			Rating:      r.Rating,
			SafetyScore: r.SafetyScore,
			CreatedAt:   r.CreatedAt,
			Tags:        r.Tags,
		})
	}
	summary := s.agg.Summarize(row.UpdatedAt, samples, tagLimit)

	if row.Coordinates != nil && *row.Coordinates != "" {
		if _, ok := geo.Parse(*row.Coordinates); !ok {
			s.logger.Debugw("malformed coordinates, using (0,0)", "place_id", row.ID, "raw", *row.Coordinates)
		}
	}

	return PlaceWithStats{
		ID:           row.ID,
		Name:         row.Name,
		Category:     row.Category,
		Location:     row.Location,
		Description:  row.Description,
		Coordinates:  geo.Decode(row.Coordinates).Pair(),
		Hours:        row.Hours,
		ImageURL:     row.ImageURL,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		Rating:       summary.Rating,
		SafetyScore:  summary.SafetyScore,
		TotalReviews: summary.TotalReviews,
		Tags:         summary.Tags,
		LastUpdated:  summary.LastUpdated,
	}
}
