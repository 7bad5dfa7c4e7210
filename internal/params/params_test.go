package params

import (
	"net/url"
	"strings"
	"testing"

	"safespot/internal/domain/places"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlaceFilter(t *testing.T) {
	f, err := ParsePlaceFilter(url.Values{"category": {"cafe"}, "search": {" harbour "}})
	require.NoError(t, err)
	assert.Equal(t, places.Filter{Category: "cafe", Search: "harbour"}, f)

	f, err = ParsePlaceFilter(url.Values{"q": {"owl"}})
	require.NoError(t, err)
	assert.Equal(t, places.Filter{Search: "owl"}, f)

	// surrounding whitespace is dropped; a blank search lists everything
	f, err = ParsePlaceFilter(url.Values{"search": {"   "}})
	require.NoError(t, err)
	assert.Equal(t, places.Filter{}, f)

	f, err = ParsePlaceFilter(url.Values{"category": {"all"}})
	require.NoError(t, err)
	assert.Equal(t, "all", f.Category)
}

func TestParsePlaceFilterRejects(t *testing.T) {
	_, err := ParsePlaceFilter(url.Values{"category": {"casino"}})
	assert.Error(t, err)

	_, err = ParsePlaceFilter(url.Values{"search": {strings.Repeat("a", maxSearchLen+1)}})
	assert.Error(t, err)
}

func TestOptionalUUID(t *testing.T) {
	id, err := OptionalUUID(url.Values{}, "place_id")
	require.NoError(t, err)
	assert.Nil(t, id)

	want := uuid.New()
	id, err = OptionalUUID(url.Values{"place_id": {want.String()}}, "place_id")
	require.NoError(t, err)
	require.NotNil(t, id)
	assert.Equal(t, want, *id)

	_, err = OptionalUUID(url.Values{"place_id": {"nope"}}, "place_id")
	assert.EqualError(t, err, "invalid place_id")
}
