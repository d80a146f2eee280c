package ws

import (
	"context"
	"errors"
	"fmt"

	"github.com/Snoupix/sharify-be/logs"
	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
	"github.com/Snoupix/sharify-be/spotify"
)

// StateImpact tells what a command changed so the session knows what to
// re-broadcast to room members.
type StateImpact int

const (
	ImpactNothing StateImpact = iota
	ImpactRoom
	// Player related commands also affect the room state (queue, logs).
	ImpactBoth
)

// Outcome is the result of processing one user command. Response is nil
// for commands that return no data. Failed carries the failure response
// when the command was rejected.
type Outcome struct {
	Response *pb.CommandResponse
	Failed   *pb.CommandResponse
	Impact   StateImpact
	// Spotify state parts to push when Impact is ImpactBoth.
	Fetch spotify.FetchFlags
}

// Processor runs a single user's commands against the room state and
// the room's Spotify player.
type Processor struct {
	rooms  *room.Manager
	userID room.UserID
	roomID room.ID
}

func NewProcessor(rooms *room.Manager, userID room.UserID, roomID room.ID) *Processor {
	return &Processor{
		rooms:  rooms,
		userID: userID,
		roomID: roomID,
	}
}

func roomErrorResponse(err error) *pb.CommandResponse {
	return &pb.CommandResponse{
		Type: &pb.CommandResponse_RoomError{
			RoomError: &pb.RoomError{Error: err.Error()},
		},
	}
}

func genericErrorResponse(msg string) *pb.CommandResponse {
	return &pb.CommandResponse{
		Type: &pb.CommandResponse_GenericError{GenericError: msg},
	}
}

func spotifyErrorResponse(err error) *pb.CommandResponse {
	var rateLimited *spotify.RateLimitError
	if errors.As(err, &rateLimited) {
		return &pb.CommandResponse{
			Type: &pb.CommandResponse_SpotifyRateLimited{SpotifyRateLimited: rateLimited.RetryAfter},
		}
	}

	return genericErrorResponse(err.Error())
}

// Process runs the command after checking the author's permissions.
func (p *Processor) Process(ctx context.Context, cmd *pb.Command) Outcome {
	if cmd.GetType() == nil {
		return Outcome{Impact: ImpactNothing}
	}

	if !p.hasPermissionTo(ctx, cmd) {
		return Outcome{
			Failed: roomErrorResponse(room.ErrUnauthorized),
			Impact: ImpactNothing,
		}
	}

	impact, fetch := commandImpact(cmd)

	outcome := p.run(ctx, cmd)
	outcome.Impact = impact
	outcome.Fetch = fetch

	if outcome.Failed != nil {
		// A rejected command did not change any state.
		outcome.Impact = ImpactNothing
		outcome.Fetch = 0
	}

	return outcome
}

func commandImpact(cmd *pb.Command) (StateImpact, spotify.FetchFlags) {
	switch cmd.Type.(type) {
	case *pb.Command_GetRoom, *pb.Command_Search:
		return ImpactNothing, 0
	case *pb.Command_DeleteRole, *pb.Command_CreateRole_, *pb.Command_RenameRole_,
		*pb.Command_LeaveRoom, *pb.Command_Kick_, *pb.Command_Ban_:
		return ImpactRoom, 0
	case *pb.Command_AddToQueue:
		return ImpactBoth, spotify.FetchTracksQueue
	case *pb.Command_SetVolume, *pb.Command_PlayResume, *pb.Command_Pause, *pb.Command_SeekToPos:
		return ImpactBoth, spotify.FetchPlayback
	case *pb.Command_SkipNext, *pb.Command_SkipPrevious:
		return ImpactBoth, spotify.FetchAll
	}
	return ImpactNothing, 0
}

func (p *Processor) run(ctx context.Context, cmd *pb.Command) Outcome {
	switch c := cmd.Type.(type) {
	case *pb.Command_GetRoom:
		return p.getRoom(ctx)
	case *pb.Command_Search:
		return p.search(ctx, c.Search)
	case *pb.Command_AddToQueue:
		return p.addToQueue(ctx, c.AddToQueue)
	case *pb.Command_SetVolume:
		return p.setVolume(ctx, uint8(c.SetVolume))
	case *pb.Command_PlayResume:
		return p.playResume(ctx)
	case *pb.Command_Pause:
		return p.pause(ctx)
	case *pb.Command_SkipNext:
		return p.skipNext(ctx)
	case *pb.Command_SkipPrevious:
		return p.skipPrevious(ctx)
	case *pb.Command_SeekToPos:
		return p.seekToPos(ctx, c.SeekToPos)
	case *pb.Command_Kick_:
		return p.kick(ctx, c.Kick)
	case *pb.Command_Ban_:
		return p.ban(ctx, c.Ban)
	case *pb.Command_LeaveRoom:
		return p.leaveRoom(ctx)
	case *pb.Command_CreateRole_:
		return p.createRole(ctx, c.CreateRole)
	case *pb.Command_RenameRole_:
		return p.renameRole(ctx, c.RenameRole)
	case *pb.Command_DeleteRole:
		return p.deleteRole(ctx, c.DeleteRole)
	}
	return Outcome{}
}

func (p *Processor) hasPermissionTo(ctx context.Context, cmd *pb.Command) bool {
	r := p.rooms.GetRoom(ctx, p.roomID)
	if r == nil {
		return false
	}

	role, err := r.UserPermissions(p.userID)
	if err != nil {
		return false
	}

	perms := role.Permissions

	// Renaming is only allowed on roles strictly below the author's.
	if c, ok := cmd.Type.(*pb.Command_RenameRole_); ok {
		roleID, err := room.UUIDFromBytes(c.RenameRole.GetRoleId())
		if err != nil {
			return false
		}
		targetIdx := r.Roles.IndexOf(roleID)
		if targetIdx < 0 || targetIdx <= r.Roles.IndexOf(role.ID) {
			return false
		}
	}

	switch cmd.Type.(type) {
	case *pb.Command_GetRoom, *pb.Command_LeaveRoom:
		return true
	case *pb.Command_Search, *pb.Command_AddToQueue:
		return perms.CanAddSong
	case *pb.Command_SetVolume, *pb.Command_PlayResume, *pb.Command_Pause,
		*pb.Command_SkipNext, *pb.Command_SkipPrevious, *pb.Command_SeekToPos:
		return perms.CanUseControls
	case *pb.Command_Kick_, *pb.Command_Ban_:
		return perms.CanManageUsers
	case *pb.Command_DeleteRole, *pb.Command_CreateRole_, *pb.Command_RenameRole_:
		return perms.CanManageUsers && perms.CanAddModerator
	}
	return false
}

func (p *Processor) spotifyHandler(ctx context.Context) (*spotify.Client, *pb.CommandResponse) {
	r := p.rooms.GetRoom(ctx, p.roomID)
	if r == nil {
		return nil, roomErrorResponse(room.ErrRoomNotFound)
	}

	return r.Metadata.Spotify, nil
}

func (p *Processor) getRoom(ctx context.Context) Outcome {
	r := p.rooms.GetRoom(ctx, p.roomID)
	if r == nil {
		return Outcome{Failed: roomErrorResponse(room.ErrRoomNotFound)}
	}

	return Outcome{Response: &pb.CommandResponse{
		Type: &pb.CommandResponse_Room{Room: r.ToProto()},
	}}
}

func (p *Processor) search(ctx context.Context, name string) Outcome {
	client, failed := p.spotifyHandler(ctx)
	if failed != nil {
		return Outcome{Failed: failed}
	}

	tracks, err := client.SearchTrack(ctx, name)
	if err != nil {
		logs.WithContext(ctx).Error(err.Error())
		return Outcome{Failed: spotifyErrorResponse(err)}
	}

	return Outcome{Response: &pb.CommandResponse{
		Type: &pb.CommandResponse_SpotifySearchResult{SpotifySearchResult: tracksToProto(tracks)},
	}}
}

func (p *Processor) addToQueue(ctx context.Context, track *pb.Command_AddTrackToQueue) Outcome {
	client, failed := p.spotifyHandler(ctx)
	if failed != nil {
		return Outcome{Failed: failed}
	}

	if err := client.AddTrackToQueue(ctx, track.GetTrackId()); err != nil {
		logs.WithContext(ctx).Error(err.Error())
		return Outcome{Failed: spotifyErrorResponse(err)}
	}

	if err := p.rooms.AddTrackToQueue(ctx, p.roomID, p.userID,
		track.GetTrackId(), track.GetTrackName(), track.GetTrackDuration()); err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}

	_ = p.rooms.AppendLog(p.roomID, room.Log{
		Type:    room.LogAddTrack,
		Details: fmt.Sprintf("Track %s added to the queue", track.GetTrackName()),
	})

	return Outcome{}
}

func (p *Processor) setVolume(ctx context.Context, percentage uint8) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.SetVolume(ctx, percentage)
	})
}

func (p *Processor) playResume(ctx context.Context) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.PlayResume(ctx)
	})
}

func (p *Processor) pause(ctx context.Context) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.Pause(ctx)
	})
}

func (p *Processor) skipNext(ctx context.Context) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.SkipNext(ctx)
	})
}

func (p *Processor) skipPrevious(ctx context.Context) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.SkipPrevious(ctx)
	})
}

func (p *Processor) seekToPos(ctx context.Context, pos uint64) Outcome {
	return p.playerCommand(ctx, func(client *spotify.Client) error {
		return client.SeekToMs(ctx, pos)
	})
}

func (p *Processor) playerCommand(ctx context.Context, fn func(*spotify.Client) error) Outcome {
	client, failed := p.spotifyHandler(ctx)
	if failed != nil {
		return Outcome{Failed: failed}
	}

	if err := fn(client); err != nil {
		logs.WithContext(ctx).Error(err.Error())
		return Outcome{Failed: spotifyErrorResponse(err)}
	}

	return Outcome{}
}

func (p *Processor) kick(ctx context.Context, opts *pb.Command_Kick) Outcome {
	if err := p.rooms.KickUser(ctx, p.roomID, p.userID, opts.GetUserId(), opts.GetReason()); err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	return Outcome{}
}

func (p *Processor) ban(ctx context.Context, opts *pb.Command_Ban) Outcome {
	if err := p.rooms.BanUser(ctx, p.roomID, p.userID, opts.GetUserId(), opts.GetReason()); err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	return Outcome{}
}

func (p *Processor) leaveRoom(ctx context.Context) Outcome {
	if err := p.rooms.LeaveRoom(ctx, p.roomID, p.userID); err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	return Outcome{}
}

func (p *Processor) createRole(ctx context.Context, opts *pb.Command_CreateRole) Outcome {
	perms := opts.GetPermissions()
	if perms == nil {
		return Outcome{Failed: genericErrorResponse("Permissions missing from request")}
	}

	var added bool
	err := p.rooms.Update(p.roomID, func(r *room.Room) {
		added = r.Roles.AddRole(opts.GetName(), room.RolePermission{
			CanUseControls:  perms.GetCanUseControls(),
			CanManageUsers:  perms.GetCanManageUsers(),
			CanAddSong:      perms.GetCanAddSong(),
			CanAddModerator: perms.GetCanAddModerator(),
			CanManageRoom:   perms.GetCanManageRoom(),
		})
	})
	if err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	if !added {
		return Outcome{Failed: genericErrorResponse("A role with that name already exists")}
	}

	return Outcome{}
}

func (p *Processor) renameRole(ctx context.Context, opts *pb.Command_RenameRole) Outcome {
	roleID, err := room.UUIDFromBytes(opts.GetRoleId())
	if err != nil {
		return Outcome{Failed: genericErrorResponse(fmt.Sprint("Failed to read role_id ", err))}
	}

	var renamed bool
	err = p.rooms.Update(p.roomID, func(r *room.Room) {
		renamed = r.Roles.RenameRole(roleID, opts.GetName())
	})
	if err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	if !renamed {
		return Outcome{Failed: roomErrorResponse(room.ErrRoleNotFound)}
	}

	return Outcome{}
}

func (p *Processor) deleteRole(ctx context.Context, id []byte) Outcome {
	roleID, err := room.UUIDFromBytes(id)
	if err != nil {
		return Outcome{Failed: genericErrorResponse(fmt.Sprint("Failed to read role_id ", err))}
	}

	var inUse bool
	err = p.rooms.Update(p.roomID, func(r *room.Room) {
		for _, u := range r.Users {
			if u.RoleID == roleID {
				inUse = true
				return
			}
		}
		r.Roles.RemoveRole(roleID)
	})
	if err != nil {
		return Outcome{Failed: roomErrorResponse(err)}
	}
	if inUse {
		return Outcome{Failed: roomErrorResponse(room.ErrRoleInUse)}
	}

	return Outcome{}
}

func tracksToProto(tracks []spotify.Track) *pb.SpotifyTracks {
	out := make([]*pb.SpotifyTrack, 0, len(tracks))
	for _, t := range tracks {
		out = append(out, &pb.SpotifyTrack{
			TrackId:       t.TrackID,
			TrackName:     t.TrackName,
			ArtistName:    t.ArtistName,
			TrackDuration: t.TrackDuration,
		})
	}
	return &pb.SpotifyTracks{Tracks: out}
}

func playbackToProto(p *spotify.Playback) *pb.SpotifyPlayback {
	if p == nil {
		return nil
	}
	return &pb.SpotifyPlayback{
		DeviceId:      p.DeviceID,
		DeviceVolume:  p.DeviceVolume,
		Shuffle:       p.Shuffle,
		ProgressMs:    p.ProgressMs,
		DurationMs:    p.DurationMs,
		IsPlaying:     p.IsPlaying,
		TrackId:       p.TrackID,
		TrackName:     p.TrackName,
		ArtistName:    p.ArtistName,
		AlbumImageSrc: p.AlbumImageSrc,
	}
}
