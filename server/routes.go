package server

import (
	"net/http"

	"github.com/gorilla/mux"

	handlers "github.com/Snoupix/sharify-be/server/handlers"
)

func (s *Server) GetRouter() *mux.Router {
	router := mux.NewRouter()
	router.Methods(http.MethodGet).Path("/").HandlerFunc(handlers.RootHandler)
	router.Methods(http.MethodPost).Path("/v1").HandlerFunc(handlers.ProtoCommandHandler(s.Rooms))
	router.Methods(http.MethodGet).Path("/v1/code_verifier").HandlerFunc(handlers.CodeVerifierHandler)
	router.Methods(http.MethodGet).Path("/v1/code_challenge/{code_verifier}").HandlerFunc(handlers.CodeChallengeHandler)
	router.Methods(http.MethodPost).Path("/v1/webhook").HandlerFunc(handlers.WebhookHandler)
	router.Methods(http.MethodGet).Path("/v1/{room_id}/{user_id}").HandlerFunc(s.Ws.Handler())
	return router
}
