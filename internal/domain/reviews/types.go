package reviews

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrUnknownPlace   = errors.New("review references an unknown place")
	// ErrTagsNotSaved reports that the tag insert of a review write failed.
	// The review insert is rolled back with it.
	ErrTagsNotSaved = errors.New("review tags could not be saved")
)

type Review struct {
	ID             uuid.UUID  `json:"id"`
	PlaceID        *uuid.UUID `json:"place_id"`
	UserID         *uuid.UUID `json:"user_id"`
	AuthorName     string     `json:"author_name"`
	Rating         int        `json:"rating"`
	SafetyScore    int        `json:"safety_score"`
	ReviewText     string     `json:"review_text"`
	VisitTime      string     `json:"visit_time"`
	WouldRecommend bool       `json:"would_recommend"`
	HelpfulCount   int        `json:"helpful_count"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ReviewWithTags is a review with its tag strings flattened in.
type ReviewWithTags struct {
	Review
	Tags []string `json:"tags"`
}
