package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/golang/protobuf/proto"
	"github.com/gorilla/mux"

	"github.com/Snoupix/sharify-be/discord"
	"github.com/Snoupix/sharify-be/logs"
	"github.com/Snoupix/sharify-be/pkce"
	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
)

const maxCommandBodySize = 1 << 20

func RootHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

// ProtoCommandHandler decodes the protobuf HttpCommand body of POST /v1
// and creates or joins a room. The response body is the protobuf Room.
func ProtoCommandHandler(rooms *room.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logs.WithContext(r.Context()).Debug("ProtoCommandHandler - Start")

		body, err := io.ReadAll(io.LimitReader(r.Body, maxCommandBodySize))
		if err != nil {
			http.Error(w, "Failed to read request body", http.StatusBadRequest)
			return
		}

		var cmd pb.HttpCommand
		if err = proto.Unmarshal(body, &cmd); err != nil {
			http.Error(w, "Failed to decode command", http.StatusBadRequest)
			return
		}

		switch c := cmd.Type.(type) {
		case *pb.HttpCommand_CreateRoom_:
			createRoom(w, r, rooms, c.CreateRoom)
		case *pb.HttpCommand_JoinRoom_:
			joinRoom(w, r, rooms, c.JoinRoom)
		default:
			http.Error(w, "Unknown command", http.StatusBadRequest)
		}
	}
}

func createRoom(w http.ResponseWriter, r *http.Request, rooms *room.Manager, cmd *pb.HttpCommand_CreateRoom) {
	creds := cmd.GetCredentials()
	if creds == nil {
		http.Error(w, "Credentials missing from request", http.StatusBadRequest)
		return
	}

	expiresIn, err := strconv.ParseUint(creds.GetExpiresIn(), 10, 32)
	if err != nil {
		http.Error(w, "Invalid expires_in", http.StatusBadRequest)
		return
	}
	createdAt, err := strconv.ParseInt(creds.GetCreatedAt(), 10, 64)
	if err != nil {
		http.Error(w, "Invalid created_at", http.StatusBadRequest)
		return
	}

	created, err := rooms.CreateRoom(r.Context(), cmd.GetUserId(), cmd.GetUsername(), cmd.GetName(), room.Credentials{
		AccessToken:  creds.GetAccessToken(),
		RefreshToken: creds.GetRefreshToken(),
		ExpiresIn:    uint32(expiresIn),
		CreatedAt:    createdAt,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeProtoRoom(w, r, created, http.StatusCreated)
}

func joinRoom(w http.ResponseWriter, r *http.Request, rooms *room.Manager, cmd *pb.HttpCommand_JoinRoom) {
	roomID, err := room.UUIDFromBytes(cmd.GetRoomId())
	if err != nil {
		http.Error(w, fmt.Sprint("Failed to read room_id ", err), http.StatusBadRequest)
		return
	}

	joined, err := rooms.JoinRoom(r.Context(), roomID, cmd.GetUsername(), cmd.GetUserId(), cmd.GetPassword())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeProtoRoom(w, r, joined, http.StatusOK)
}

func writeProtoRoom(w http.ResponseWriter, r *http.Request, created *room.Room, status int) {
	buf, err := proto.Marshal(created.ToProto())
	if err != nil {
		logs.WithContext(r.Context()).Error(err.Error())
		http.Error(w, fmt.Sprint("Unexpected error while encoding Room to protobuf: ", err), http.StatusInternalServerError)
		return
	}

	FormatProtoResponse(w, status)
	_, _ = w.Write(buf)
}

// CodeVerifierHandler hands the frontend a fresh PKCE code verifier.
func CodeVerifierHandler(w http.ResponseWriter, r *http.Request) {
	verifier, err := pkce.NewCodeVerifier()
	if err != nil {
		logs.WithContext(r.Context()).Error(err.Error())
		http.Error(w, "Failed to generate code verifier", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(verifier))
}

func CodeChallengeHandler(w http.ResponseWriter, r *http.Request) {
	codeVerifier := mux.Vars(r)["code_verifier"]

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pkce.NewCodeChallenge(codeVerifier)))
}

// WebhookHandler relays user feedback and bug reports to Discord.
func WebhookHandler(w http.ResponseWriter, r *http.Request) {
	logs.WithContext(r.Context()).Debug("WebhookHandler - Start")

	var payload discord.SendWebhookPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Failed to decode payload", http.StatusBadRequest)
		return
	}

	if !payload.WhType.Valid() {
		http.Error(w, "Unknown webhook type", http.StatusBadRequest)
		return
	}

	if err := discord.SendWebhook(r.Context(), payload.WhType, payload.Content); err != nil {
		logs.WithContext(r.Context()).Error(err.Error())
		http.Error(w, "Failed to send webhook", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
