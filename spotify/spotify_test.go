package spotify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJoinArtists(t *testing.T) {
	assert.Equal(t, "", joinArtists(nil))
	assert.Equal(t, "Daft Punk", joinArtists([]apiArtist{{Name: "Daft Punk"}}))
	assert.Equal(t, "Daft Punk - Pharrell Williams", joinArtists([]apiArtist{{Name: "Daft Punk"}, {Name: "Pharrell Williams"}}))
	assert.Equal(t, "Unknown artist", joinArtists([]apiArtist{{}}))
}

func TestAPITrackToTrack(t *testing.T) {
	track := apiTrack{
		ID:         "track-1",
		Name:       "Get Lucky",
		DurationMs: 248000,
		Artists:    []apiArtist{{Name: "Daft Punk"}},
	}.toTrack()

	assert.Equal(t, Track{
		TrackID:       "track-1",
		TrackName:     "Get Lucky",
		ArtistName:    "Daft Punk",
		TrackDuration: 248000,
	}, track)
}

func TestCheckStatus(t *testing.T) {
	ok := &http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(strings.NewReader(""))}
	assert.NoError(t, checkStatus(ok, "do nothing"))

	failed := &http.Response{StatusCode: http.StatusBadGateway, Body: io.NopCloser(strings.NewReader("upstream down"))}
	err := checkStatus(failed, "fetch something")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream down")
}

func TestCheckStatusRateLimited(t *testing.T) {
	res := &http.Response{
		StatusCode: http.StatusTooManyRequests,
		Header:     http.Header{"Retry-After": []string{"12"}},
		Body:       io.NopCloser(strings.NewReader("")),
	}

	err := checkStatus(res, "search")
	require.Error(t, err)

	var rateLimited *RateLimitError
	require.True(t, errors.As(err, &rateLimited))
	assert.Equal(t, uint64(12), rateLimited.RetryAfter)
}

func TestGetRecentTracksBounds(t *testing.T) {
	c := NewClient(Tokens{AccessToken: "access"})

	_, err := c.GetRecentTracks(context.Background(), 51)
	assert.Error(t, err)
	_, err = c.GetRecentTracks(context.Background(), -1)
	assert.Error(t, err)
}

func TestClientTokens(t *testing.T) {
	tokens := Tokens{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    3600,
		CreatedAt:    1700000000,
	}

	c := NewClient(tokens)
	assert.Equal(t, tokens, c.Tokens())
}
