package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Snoupix/sharify-be/pkce"
	pb "github.com/Snoupix/sharify-be/proto"
	"github.com/Snoupix/sharify-be/room"
)

func testCredentials() *pb.HttpCommand_Credentials {
	return &pb.HttpCommand_Credentials{
		AccessToken:  "access",
		RefreshToken: "refresh",
		ExpiresIn:    "3600",
		CreatedAt:    "1700000000",
	}
}

func postCommand(t *testing.T, handler http.HandlerFunc, cmd *pb.HttpCommand) *httptest.ResponseRecorder {
	t.Helper()

	body, err := proto.Marshal(cmd)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeRoom(t *testing.T, rec *httptest.ResponseRecorder) *pb.Room {
	t.Helper()

	buf, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	var r pb.Room
	require.NoError(t, proto.Unmarshal(buf, &r))
	return &r
}

func TestProtoCommandHandlerCreateRoom(t *testing.T) {
	rooms := room.NewManager()
	handler := ProtoCommandHandler(rooms)

	rec := postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_CreateRoom_{CreateRoom: &pb.HttpCommand_CreateRoom{
			UserId:      "owner-id",
			Username:    "Owner",
			Name:        "My room",
			Credentials: testCredentials(),
		}},
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/x-protobuf", rec.Header().Get("Content-Type"))

	created := decodeRoom(t, rec)
	assert.Equal(t, "My room", created.GetName())
	assert.Len(t, created.GetPassword(), room.PasswordLen)
	require.Len(t, created.GetUsers(), 1)
	assert.Equal(t, "owner-id", created.GetUsers()[0].GetId())

	assert.Equal(t, 1, rooms.RoomCount())
}

func TestProtoCommandHandlerCreateRoomWithoutCredentials(t *testing.T) {
	handler := ProtoCommandHandler(room.NewManager())

	rec := postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_CreateRoom_{CreateRoom: &pb.HttpCommand_CreateRoom{
			UserId:   "owner-id",
			Username: "Owner",
			Name:     "My room",
		}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtoCommandHandlerJoinRoom(t *testing.T) {
	rooms := room.NewManager()
	handler := ProtoCommandHandler(rooms)

	rec := postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_CreateRoom_{CreateRoom: &pb.HttpCommand_CreateRoom{
			UserId:      "owner-id",
			Username:    "Owner",
			Name:        "My room",
			Credentials: testCredentials(),
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeRoom(t, rec)

	rec = postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_JoinRoom_{JoinRoom: &pb.HttpCommand_JoinRoom{
			RoomId:   created.GetId(),
			UserId:   "guest-id",
			Username: "Guest",
			Password: created.GetPassword(),
		}},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	joined := decodeRoom(t, rec)
	assert.Len(t, joined.GetUsers(), 2)
}

func TestProtoCommandHandlerJoinRoomWrongPassword(t *testing.T) {
	rooms := room.NewManager()
	handler := ProtoCommandHandler(rooms)

	rec := postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_CreateRoom_{CreateRoom: &pb.HttpCommand_CreateRoom{
			UserId:      "owner-id",
			Username:    "Owner",
			Name:        "My room",
			Credentials: testCredentials(),
		}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeRoom(t, rec)

	rec = postCommand(t, handler, &pb.HttpCommand{
		Type: &pb.HttpCommand_JoinRoom_{JoinRoom: &pb.HttpCommand_JoinRoom{
			RoomId:   created.GetId(),
			UserId:   "guest-id",
			Username: "Guest",
			Password: "not the password",
		}},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtoCommandHandlerRejectsGarbage(t *testing.T) {
	handler := ProtoCommandHandler(room.NewManager())

	req := httptest.NewRequest(http.MethodPost, "/v1", bytes.NewReader([]byte{0xff, 0xff, 0xff, 0xff}))
	rec := httptest.NewRecorder()
	handler(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProtoCommandHandlerUnknownCommand(t *testing.T) {
	handler := ProtoCommandHandler(room.NewManager())

	rec := postCommand(t, handler, &pb.HttpCommand{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCodeVerifierHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/code_verifier", nil)
	rec := httptest.NewRecorder()
	CodeVerifierHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, rec.Body.String(), 128)
}

func TestCodeChallengeHandler(t *testing.T) {
	verifier := "dBjftJeZ4CVP-mB92K27uhbUJU1p1r_wW1gFWFOEjXk"

	req := httptest.NewRequest(http.MethodGet, "/v1/code_challenge/"+verifier, nil)
	req = mux.SetURLVars(req, map[string]string{"code_verifier": verifier})
	rec := httptest.NewRecorder()
	CodeChallengeHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pkce.NewCodeChallenge(verifier), rec.Body.String())
}
