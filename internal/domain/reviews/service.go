package reviews

import (
	"context"
	"fmt"

	"safespot/internal/cache"
	"safespot/internal/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	store  Store
	tx     TxRunner
	cache  *cache.Cache
	logger *zap.SugaredLogger
}

func NewService(store Store, tx TxRunner, c *cache.Cache, logger *zap.SugaredLogger) *Service {
	return &Service{store: store, tx: tx, cache: c, logger: logger}
}

func reviewsKey(placeID *uuid.UUID) cache.Key {
	if placeID == nil {
		return cache.NewKey(cache.FamilyReviews, "")
	}
	return cache.NewKey(cache.FamilyReviews, placeID.String())
}

// ListReviews returns reviews newest first, restricted to one place when
// placeID is set.
func (s *Service) ListReviews(ctx context.Context, placeID *uuid.UUID) ([]ReviewWithTags, error) {
	return cache.Load(ctx, s.cache, reviewsKey(placeID), func(ctx context.Context) ([]ReviewWithTags, error) {
		return s.store.List(ctx, placeID)
	})
}

// CreateReview stores review and its tags as one unit. When the tag insert
// fails the review is rolled back and the error wraps ErrTagsNotSaved.
func (s *Service) CreateReview(ctx context.Context, review *Review, tags []string) (*ReviewWithTags, error) {
	err := s.tx.WithReviewTx(ctx, func(st Store) error {
		if err := st.Insert(ctx, review); err != nil {
			return err
		}
		if len(tags) == 0 {
			return nil
		}
		if err := st.InsertTags(ctx, review.ID, tags); err != nil {
			return fmt.Errorf("%w: %w", ErrTagsNotSaved, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Warnw("review not saved", "place_id", review.PlaceID, "error", err.Error())
		return nil, err
	}

	s.cache.InvalidateFamily(cache.FamilyReviews)
	s.cache.InvalidateFamily(cache.FamilyPlaces)
	if review.PlaceID != nil {
		s.cache.Invalidate(cache.NewKey(cache.FamilyPlace, review.PlaceID.String()))
	}
	metrics.ReviewsCreated.Inc()

	out := &ReviewWithTags{Review: *review, Tags: make([]string, 0, len(tags))}
	out.Tags = append(out.Tags, tags...)
	return out, nil
}

// IncrementHelpful records one helpful vote and returns the new count.
func (s *Service) IncrementHelpful(ctx context.Context, reviewID uuid.UUID) (int, error) {
	count, err := s.store.IncrementHelpful(ctx, reviewID)
	if err != nil {
		return 0, err
	}

	s.cache.InvalidateFamily(cache.FamilyReviews)
	metrics.HelpfulVotes.Inc()

	return count, nil
}
