package places

import (
	"context"
	"errors"
	"testing"
	"time"

	"safespot/internal/cache"
	"safespot/internal/geo"
	"safespot/internal/recency"
	"safespot/internal/stats"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var now = time.Date(2025, time.April, 2, 18, 30, 0, 0, time.UTC)

type fakeStore struct {
	rows      []PlaceRow
	listCalls int
	getCalls  int
	filters   []Filter
	created   []*Place
	err       error
}

func (f *fakeStore) List(_ context.Context, filter Filter) ([]PlaceRow, error) {
	f.listCalls++
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeStore) GetByID(_ context.Context, id uuid.UUID) (*PlaceRow, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			row := f.rows[i]
			return &row, nil
		}
	}
	return nil, ErrPlaceNotFound
}

func (f *fakeStore) Create(_ context.Context, p *Place) error {
	if f.err != nil {
		return f.err
	}
	p.ID = uuid.New()
	p.CreatedAt = now
	p.UpdatedAt = now
	f.created = append(f.created, p)
	f.rows = append(f.rows, PlaceRow{Place: *p})
	return nil
}

func newTestService(store Store) *Service {
	agg := stats.NewAggregator(recency.NewWithClock(func() time.Time { return now }))
	c := cache.New(cache.Config{Size: 32, TTL: time.Minute})
	return NewService(store, c, agg, zap.NewNop().Sugar())
}

func strPtr(s string) *string { return &s }

func samplePlace() PlaceRow {
	return PlaceRow{
		Place: Place{
			ID:          uuid.MustParse("0b9e4c5e-7a57-4c2f-9d43-3f0c1f6d7a11"),
			Name:        "Night Owl Cafe",
			Category:    "cafe",
			Location:    "12 Harbour St",
			Coordinates: strPtr("(77.6,12.5)"),
			CreatedAt:   now.Add(-100 * 24 * time.Hour),
			UpdatedAt:   now.Add(-60 * 24 * time.Hour),
		},
		Reviews: []ReviewRow{
			{Rating: 4, SafetyScore: 5, CreatedAt: now.Add(-3 * 24 * time.Hour), Tags: []string{"quiet", "safe"}},
			{Rating: 5, SafetyScore: 4, CreatedAt: now.Add(-2 * time.Hour), Tags: []string{"quiet", "lit", "staffed", "cctv"}},
		},
		Images: []string{"https://img.example/1.jpg"},
	}
}

func TestListPlacesAppliesStatistics(t *testing.T) {
	store := &fakeStore{rows: []PlaceRow{samplePlace()}}
	svc := newTestService(store)

	list, err := svc.ListPlaces(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	p := list[0]
	assert.Equal(t, 4.5, p.Rating)
	assert.Equal(t, 4.5, p.SafetyScore)
	assert.Equal(t, 2, p.TotalReviews)
	assert.Equal(t, []string{"quiet", "safe", "lit"}, p.Tags)
	assert.Equal(t, "2 hours ago", p.LastUpdated)
	assert.Equal(t, [2]float64{12.5, 77.6}, p.Coordinates)
	assert.Nil(t, p.Images)
}

func TestListPlacesWithoutReviews(t *testing.T) {
	row := samplePlace()
	row.Reviews = nil
	row.Coordinates = nil
	store := &fakeStore{rows: []PlaceRow{row}}
	svc := newTestService(store)

	list, err := svc.ListPlaces(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)

	assert.Equal(t, 0.0, list[0].Rating)
	assert.Equal(t, 0.0, list[0].SafetyScore)
	assert.Equal(t, 0, list[0].TotalReviews)
	assert.Equal(t, []string{}, list[0].Tags)
	assert.Equal(t, "2 months ago", list[0].LastUpdated)
	assert.Equal(t, [2]float64{0, 0}, list[0].Coordinates)
}

func TestListPlacesNormalizesFilter(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.ListPlaces(ctx, Filter{Category: "all"})
	require.NoError(t, err)
	_, err = svc.ListPlaces(ctx, Filter{Category: " cafe ", Search: " Owl "})
	require.NoError(t, err)

	require.Len(t, store.filters, 2)
	assert.Equal(t, Filter{}, store.filters[0])
	assert.Equal(t, Filter{Category: "cafe", Search: "Owl"}, store.filters[1])
}

func TestListPlacesIsCachedUntilPlaceCreated(t *testing.T) {
	store := &fakeStore{rows: []PlaceRow{samplePlace()}}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.ListPlaces(ctx, Filter{})
	require.NoError(t, err)
	_, err = svc.ListPlaces(ctx, Filter{Category: "all"})
	require.NoError(t, err)
	_, err = svc.ListPlaces(ctx, Filter{Category: "cafe"})
	require.NoError(t, err)
	assert.Equal(t, 2, store.listCalls)

	_, err = svc.CreatePlace(ctx, NewPlace{Name: "Lantern Park", Category: "park", Location: "North End"})
	require.NoError(t, err)

	list, err := svc.ListPlaces(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, list, 2)
	_, err = svc.ListPlaces(ctx, Filter{Category: "cafe"})
	require.NoError(t, err)
	assert.Equal(t, 4, store.listCalls)
}

func TestListPlacesPropagatesStoreFailure(t *testing.T) {
	boom := errors.New("connection reset by peer")
	svc := newTestService(&fakeStore{err: boom})

	_, err := svc.ListPlaces(context.Background(), Filter{})
	assert.ErrorIs(t, err, boom)
}

func TestGetPlaceKeepsAllTagsAndImages(t *testing.T) {
	row := samplePlace()
	svc := newTestService(&fakeStore{rows: []PlaceRow{row}})

	p, err := svc.GetPlace(context.Background(), row.ID)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, []string{"quiet", "safe", "lit", "staffed", "cctv"}, p.Tags)
	assert.Equal(t, []string{"https://img.example/1.jpg"}, p.Images)
	assert.Equal(t, 2, p.TotalReviews)
}

func TestGetPlaceMissingIsNil(t *testing.T) {
	svc := newTestService(&fakeStore{})

	p, err := svc.GetPlace(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, p)
}

func TestCreatePlaceEncodesCoordinates(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p, err := svc.CreatePlace(context.Background(), NewPlace{
		Name:        "Harbour Library",
		Category:    "library",
		Location:    "Dockside",
		Coordinates: &geo.Point{Lat: 12.5, Lng: 77.6},
	})
	require.NoError(t, err)
	require.NotNil(t, p.Coordinates)
	assert.Equal(t, "(77.6,12.5)", *p.Coordinates)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

func TestCreatePlaceWithoutCoordinates(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)

	p, err := svc.CreatePlace(context.Background(), NewPlace{Name: "Corner Gym", Category: "gym", Location: "5th Ave"})
	require.NoError(t, err)
	assert.Nil(t, p.Coordinates)
}

func TestCreatePlaceFailureKeepsCache(t *testing.T) {
	store := &fakeStore{rows: []PlaceRow{samplePlace()}}
	svc := newTestService(store)
	ctx := context.Background()

	_, err := svc.ListPlaces(ctx, Filter{})
	require.NoError(t, err)

	store.err = errors.New("duplicate key value violates unique constraint")
	_, err = svc.CreatePlace(ctx, NewPlace{Name: "x"})
	require.Error(t, err)

	store.err = nil
	_, err = svc.ListPlaces(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, 1, store.listCalls)
}
