package params

import (
	"fmt"
	"net/url"
	"strings"

	"safespot/internal/domain/places"

	"github.com/google/uuid"
)

const maxSearchLen = 100

// URL: /places?category=cafe&search=harbour
// → ParsePlaceFilter() → places.Filter{Category:"cafe", Search:"harbour"}
// "q" is accepted as a short alias of "search". Keys are case sensitive.
func ParsePlaceFilter(q url.Values) (places.Filter, error) {
	f := places.Filter{
		Category: strings.TrimSpace(q.Get("category")),
		Search:   strings.TrimSpace(q.Get("search")),
	}
	if f.Search == "" {
		f.Search = strings.TrimSpace(q.Get("q"))
	}

	if len(f.Search) > maxSearchLen {
		return places.Filter{}, fmt.Errorf("search must be at most %d characters", maxSearchLen)
	}
	if f.Category != "" && !knownCategory(f.Category) {
		return places.Filter{}, fmt.Errorf("unknown category %q", f.Category)
	}

	return f, nil
}

// OptionalUUID parses key as a UUID. A missing or empty value yields nil.
func OptionalUUID(q url.Values, key string) (*uuid.UUID, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &id, nil
}

func knownCategory(c string) bool {
	for _, cat := range places.Categories {
		if cat.ID == c {
			return true
		}
	}
	return false
}
