package places

import (
	"errors"
	"strings"
	"time"

	"safespot/internal/geo"

	"github.com/google/uuid"
)

var ErrPlaceNotFound = errors.New("place not found")

// AllCategories is the category value meaning "no category filter".
const AllCategories = "all"

// Categories is the catalogue offered by the explore view.
var Categories = []Category{
	{ID: AllCategories, Name: "All Places"},
	{ID: "cafe", Name: "Cafes"},
	{ID: "restaurant", Name: "Restaurants"},
	{ID: "park", Name: "Parks"},
	{ID: "library", Name: "Libraries"},
	{ID: "gym", Name: "Gyms"},
	{ID: "hotel", Name: "Hotels"},
	{ID: "transport", Name: "Transport"},
	{ID: "shopping", Name: "Shopping"},
	{ID: "entertainment", Name: "Entertainment"},
	{ID: "other", Name: "Other"},
}

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Place is a row of the places table.
type Place struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Coordinates *string   `json:"coordinates"` // postgres point text "(lng,lat)"
	Hours       string    `json:"hours"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewPlace is the input of a place insert.
type NewPlace struct {
	Name        string
	Category    string
	Location    string
	Description string
	Hours       string
	ImageURL    string
	Coordinates *geo.Point
}

// ReviewRow is one review as joined under a place: only what the statistics need.
type ReviewRow struct {
	ID          uuid.UUID `json:"id"`
	Rating      int       `json:"rating"`
	SafetyScore int       `json:"safety_score"`
	CreatedAt   time.Time `json:"created_at"`
	Tags        []string  `json:"tags"`
}

// PlaceRow is a place joined with its reviews (and their tags) and its images.
type PlaceRow struct {
	Place
	Reviews []ReviewRow
	Images  []string
}

// PlaceWithStats is a place enriched with statistics derived from its reviews.
// It is computed on read and never stored.
type PlaceWithStats struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	Location     string     `json:"location"`
	Description  string     `json:"description"`
	Coordinates  [2]float64 `json:"coordinates"` // [lat, lng]
	Hours        string     `json:"hours"`
	ImageURL     string     `json:"image_url"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Rating       float64    `json:"rating"`
	SafetyScore  float64    `json:"safety_score"`
	TotalReviews int        `json:"total_reviews"`
	Tags         []string   `json:"tags"`
	LastUpdated  string     `json:"last_updated"`
	Images       []string   `json:"images,omitempty"`
}

// Filter narrows a place listing. Zero value lists everything.
type Filter struct {
	Category string
	Search   string
}

func (f Filter) normalize() Filter {
	out := Filter{
		Category: strings.TrimSpace(f.Category),
		Search:   strings.TrimSpace(f.Search),
	}
	if out.Category == AllCategories {
		out.Category = ""
	}
	return out
}
