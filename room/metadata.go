package room

import (
	"time"

	"github.com/Snoupix/sharify-be/spotify"
)

// Metadata is the server-side state of a room that never travels to
// clients.
type Metadata struct {
	// Zero while at least one user is connected. Set when the last
	// session drops so the inactivity sweep knows when to collect
	// the room.
	InactiveSince time.Time

	Spotify *spotify.Client

	// Interval of the room data loop, recomputed from the playback
	// progress on every fetch.
	SpotifyDataTick time.Duration
}

func NewMetadata(client *spotify.Client) Metadata {
	return Metadata{
		Spotify:         client,
		SpotifyDataTick: spotify.DefaultDataInterval,
	}
}
