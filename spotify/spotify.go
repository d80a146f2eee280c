package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Snoupix/sharify-be/logs"
)

const (
	tokenURL                = "https://accounts.spotify.com/api/token"
	recentlyPlayedTracksURL = "https://api.spotify.com/v1/me/player/recently-played"
	currentPlaybackStateURL = "https://api.spotify.com/v1/me/player"
	playerQueueURL          = "https://api.spotify.com/v1/me/player/queue"
	searchURL               = "https://api.spotify.com/v1/search"
	addToQueueURL           = "https://api.spotify.com/v1/me/player/queue"
	setVolumeURL            = "https://api.spotify.com/v1/me/player/volume"
	seekToPosURL            = "https://api.spotify.com/v1/me/player/seek"
	skipPreviousURL         = "https://api.spotify.com/v1/me/player/previous"
	skipNextURL             = "https://api.spotify.com/v1/me/player/next"
	playResumeURL           = "https://api.spotify.com/v1/me/player/play"
	pauseURL                = "https://api.spotify.com/v1/me/player/pause"
	meURL                   = "https://api.spotify.com/v1/me"
)

// DefaultDataInterval is the fallback tick of the room data loop when
// no playback progress is known.
const DefaultDataInterval = 5 * time.Second

// FetchOffsetMs pads the next data fetch past the expected track end so
// the playback state has settled by the time it is read.
const FetchOffsetMs = 500

// FetchFlags selects which parts of the player state to fetch on the
// next data push.
type FetchFlags uint8

const (
	FetchPlayback    FetchFlags = 1 << 0
	FetchTracksQueue FetchFlags = 1 << 1
	FetchAll                    = FetchPlayback | FetchTracksQueue
)

type Tokens struct {
	AccessToken  string
	RefreshToken string
	// Validity in seconds.
	ExpiresIn uint32
	// Unix timestamp of the last refresh.
	CreatedAt int64
}

type Track struct {
	TrackID       string
	TrackName     string
	ArtistName    string
	TrackDuration int64
}

type Playback struct {
	DeviceID      string
	DeviceVolume  uint32
	Shuffle       bool
	ProgressMs    uint64
	DurationMs    uint64
	IsPlaying     bool
	TrackID       string
	TrackName     string
	ArtistName    string
	AlbumImageSrc string
}

type Playlist struct {
	Title  string
	Tracks []Track
}

// RateLimitError is returned on a 429 from the Web API. RetryAfter is
// the number of seconds to wait before retrying.
type RateLimitError struct {
	RetryAfter uint64
}

func (e *RateLimitError) Error() string {
	return fmt.Sprint("spotify rate limited, retry after ", e.RetryAfter, "s")
}

// Client drives a single user's Spotify player. It is safe for
// concurrent use; the token set is guarded so a refresh never races a
// fetch.
type Client struct {
	httpClient *http.Client

	mu     sync.Mutex
	tokens Tokens
}

func NewClient(tokens Tokens) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		tokens:     tokens,
	}
}

func (c *Client) Tokens() Tokens {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tokens
}

func (c *Client) accessToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.tokens.AccessToken
}

type refreshTokenOutput struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope"`
}

// FetchRefreshToken trades the refresh token for a new token set and
// stores it on the client.
func (c *Client) FetchRefreshToken(ctx context.Context) (Tokens, error) {
	logs.WithContext(ctx).Debug("FetchRefreshToken - Start")

	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	if clientID == "" {
		return Tokens{}, fmt.Errorf("failed to get Spotify client ID from env")
	}

	c.mu.Lock()
	refreshToken := c.tokens.RefreshToken
	c.mu.Unlock()

	reqURL := fmt.Sprint(tokenURL,
		"?grant_type=refresh_token&client_id=", clientID,
		"&refresh_token=", refreshToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return Tokens{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Content-Length", "0")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Tokens{}, fmt.Errorf("failed to send Spotify refresh token request: %w", err)
	}
	defer res.Body.Close()

	if err = checkStatus(res, "fetch Spotify token"); err != nil {
		return Tokens{}, err
	}

	var body refreshTokenOutput
	if err = json.NewDecoder(res.Body).Decode(&body); err != nil {
		return Tokens{}, fmt.Errorf("failed to get Spotify token json result: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tokens = Tokens{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		ExpiresIn:    uint32(body.ExpiresIn),
		CreatedAt:    time.Now().Unix(),
	}

	return c.tokens, nil
}

type apiArtist struct {
	Name string `json:"name"`
}

type apiTrack struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	DurationMs int64       `json:"duration_ms"`
	Artists    []apiArtist `json:"artists"`
}

func (t apiTrack) toTrack() Track {
	return Track{
		TrackID:       t.ID,
		TrackName:     t.Name,
		ArtistName:    joinArtists(t.Artists),
		TrackDuration: t.DurationMs,
	}
}

func joinArtists(artists []apiArtist) string {
	names := make([]string, 0, len(artists))
	for _, a := range artists {
		name := a.Name
		if name == "" {
			name = "Unknown artist"
		}
		names = append(names, name)
	}
	return strings.Join(names, " - ")
}

// GetRecentTracks fetches the last played tracks, 1 to 50 of them.
// https://developer.spotify.com/documentation/web-api/reference/get-recently-played
func (c *Client) GetRecentTracks(ctx context.Context, number int) ([]Track, error) {
	if number == 0 {
		number = 5
	}
	if number < 1 || number > 50 {
		return nil, fmt.Errorf("you must get 1 to 50 recent tracks")
	}

	var body struct {
		Items []struct {
			Track apiTrack `json:"track"`
		} `json:"items"`
	}

	if err := c.getJSON(ctx, fmt.Sprint(recentlyPlayedTracksURL, "/?limit=", number), "recent tracks", &body); err != nil {
		return nil, err
	}

	output := make([]Track, 0, len(body.Items))
	for _, item := range body.Items {
		output = append(output, item.Track.toTrack())
	}

	return output, nil
}

// GetCurrentPlaybackState returns nil when nothing is playing, which
// Spotify signals with an empty body.
// https://developer.spotify.com/documentation/web-api/reference/get-information-about-the-users-current-playback
func (c *Client) GetCurrentPlaybackState(ctx context.Context) (*Playback, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, currentPlaybackStateURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send Spotify current playback state request: %w", err)
	}
	defer res.Body.Close()

	if err = checkStatus(res, "fetch current playback state"); err != nil {
		return nil, err
	}

	var body struct {
		Device struct {
			ID            string `json:"id"`
			VolumePercent uint32 `json:"volume_percent"`
		} `json:"device"`
		ShuffleState bool    `json:"shuffle_state"`
		ProgressMs   *uint64 `json:"progress_ms"`
		IsPlaying    bool    `json:"is_playing"`
		Item         struct {
			apiTrack
			Album struct {
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
		} `json:"item"`
	}

	if err = json.NewDecoder(res.Body).Decode(&body); err != nil {
		logs.WithContext(ctx).Debug(fmt.Sprint("failed to parse current playback state json result (probably empty body because user is not playing): ", err))
		return nil, nil
	}

	var progress uint64
	if body.ProgressMs != nil {
		progress = *body.ProgressMs
	}

	albumImageSrc := ""
	if len(body.Item.Album.Images) > 0 {
		albumImageSrc = body.Item.Album.Images[0].URL
	}

	return &Playback{
		DeviceID:      body.Device.ID,
		DeviceVolume:  body.Device.VolumePercent,
		Shuffle:       body.ShuffleState,
		ProgressMs:    progress,
		DurationMs:    uint64(body.Item.DurationMs),
		IsPlaying:     body.IsPlaying,
		TrackID:       body.Item.ID,
		TrackName:     body.Item.Name,
		ArtistName:    joinArtists(body.Item.Artists),
		AlbumImageSrc: albumImageSrc,
	}, nil
}

// GetNextTracks fetches the user's player queue.
// https://developer.spotify.com/documentation/web-api/reference/get-queue
func (c *Client) GetNextTracks(ctx context.Context) ([]Track, error) {
	var body struct {
		Queue []apiTrack `json:"queue"`
	}

	if err := c.getJSON(ctx, playerQueueURL, "player queue", &body); err != nil {
		return nil, err
	}

	output := make([]Track, 0, len(body.Queue))
	for _, item := range body.Queue {
		output = append(output, item.toTrack())
	}

	return output, nil
}

// SearchTrack runs a track search limited to 20 results.
// https://developer.spotify.com/documentation/web-api/reference/search
func (c *Client) SearchTrack(ctx context.Context, value string) ([]Track, error) {
	var body struct {
		Tracks struct {
			Items []apiTrack `json:"items"`
		} `json:"tracks"`
	}

	reqURL := fmt.Sprint(searchURL, "?type=track&q=", url.QueryEscape(value), "&limit=20")
	if err := c.getJSON(ctx, reqURL, "search", &body); err != nil {
		return nil, err
	}

	tracks := make([]Track, 0, len(body.Tracks.Items))
	for _, item := range body.Tracks.Items {
		tracks = append(tracks, item.toTrack())
	}

	return tracks, nil
}

// AddTrackToQueue pushes a track at the end of the user's player queue.
// https://developer.spotify.com/documentation/web-api/reference/add-to-queue
func (c *Client) AddTrackToQueue(ctx context.Context, trackID string) error {
	reqURL := fmt.Sprint(addToQueueURL, "?uri=", url.QueryEscape("spotify:track:"+trackID))
	return c.command(ctx, http.MethodPost, reqURL, "add to queue")
}

// https://developer.spotify.com/documentation/web-api/reference/start-a-users-playback
func (c *Client) PlayResume(ctx context.Context) error {
	return c.command(ctx, http.MethodPut, playResumeURL, "play resume")
}

// https://developer.spotify.com/documentation/web-api/reference/pause-a-users-playback
func (c *Client) Pause(ctx context.Context) error {
	return c.command(ctx, http.MethodPut, pauseURL, "pause")
}

// https://developer.spotify.com/documentation/web-api/reference/skip-users-playback-to-previous-track
func (c *Client) SkipPrevious(ctx context.Context) error {
	return c.command(ctx, http.MethodPost, skipPreviousURL, "skip to previous")
}

// https://developer.spotify.com/documentation/web-api/reference/skip-users-playback-to-next-track
func (c *Client) SkipNext(ctx context.Context) error {
	return c.command(ctx, http.MethodPost, skipNextURL, "skip to next")
}

// https://developer.spotify.com/documentation/web-api/reference/seek-to-position-in-currently-playing-track
func (c *Client) SeekToMs(ctx context.Context, ms uint64) error {
	return c.command(ctx, http.MethodPut, fmt.Sprint(seekToPosURL, "?position_ms=", ms), "seek to pos")
}

// https://developer.spotify.com/documentation/web-api/reference/set-volume-for-users-playback
func (c *Client) SetVolume(ctx context.Context, volume uint8) error {
	return c.command(ctx, http.MethodPut, fmt.Sprint(setVolumeURL, "?volume_percent=", volume), "set volume")
}

func (c *Client) GetMyID(ctx context.Context) (string, error) {
	var body struct {
		ID string `json:"id"`
	}

	if err := c.getJSON(ctx, meURL, "Spotify user info", &body); err != nil {
		return "", err
	}

	return body.ID, nil
}

// CreatePlaylists creates private playlists on the user's account and
// fills them with the given tracks.
func (c *Client) CreatePlaylists(ctx context.Context, playlists []Playlist) error {
	id, err := c.GetMyID(ctx)
	if err != nil {
		return err
	}

	for _, playlist := range playlists {
		var body struct {
			ID string `json:"id"`
		}

		err = c.postJSON(ctx,
			fmt.Sprint("https://api.spotify.com/v1/users/", id, "/playlists"),
			"create Spotify playlist",
			map[string]any{
				"name":        playlist.Title,
				"description": "",
				"public":      false,
			},
			&body)
		if err != nil {
			return err
		}

		uris := make([]string, 0, len(playlist.Tracks))
		for _, t := range playlist.Tracks {
			uris = append(uris, "spotify:track:"+t.TrackID)
		}

		err = c.postJSON(ctx,
			fmt.Sprint("https://api.spotify.com/v1/playlists/", body.ID, "/tracks"),
			"add tracks to Spotify playlist",
			map[string]any{"uris": uris},
			nil)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, reqURL, what string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", what, err)
	}
	defer res.Body.Close()

	if err = checkStatus(res, "fetch "+what); err != nil {
		return err
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse %s json result: %w", what, err)
	}

	return nil
}

func (c *Client) postJSON(ctx context.Context, reqURL, what string, payload any, out any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, strings.NewReader(string(raw)))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", what, err)
	}
	defer res.Body.Close()

	if err = checkStatus(res, what); err != nil {
		return err
	}

	if out != nil {
		if err = json.NewDecoder(res.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to parse %s json result: %w", what, err)
		}
	}

	return nil
}

// command fires a player control request with an empty body.
func (c *Client) command(ctx context.Context, method, reqURL, what string) error {
	req, err := http.NewRequestWithContext(ctx, method, reqURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken())
	req.Header.Set("Content-Length", "0")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s request: %w", what, err)
	}
	defer res.Body.Close()

	return checkStatus(res, "fetch "+what)
}

func checkStatus(res *http.Response, what string) error {
	if res.StatusCode == http.StatusTooManyRequests {
		retryAfter, _ := strconv.ParseUint(res.Header.Get("Retry-After"), 10, 64)
		return &RateLimitError{RetryAfter: retryAfter}
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(res.Body)
		return fmt.Errorf("failed to %s: (%d) %s", what, res.StatusCode, string(raw))
	}

	return nil
}
