package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Snoupix/sharify-be/logs"
	"github.com/Snoupix/sharify-be/room"
	handlers "github.com/Snoupix/sharify-be/server/handlers"
	"github.com/Snoupix/sharify-be/ws"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "3100"

	shutdownTimeout = 10 * time.Second
)

type Server struct {
	Rooms *room.Manager
	Ws    *ws.Manager
}

func Init() (*mux.Router, *Server, error) {
	s := new(Server)
	s.Rooms = room.NewManager()
	s.Ws = ws.NewManager(s.Rooms)
	serverRouter := s.GetRouter()
	return serverRouter, s, nil
}

// Launch serves until SIGINT/SIGTERM, then drains in-flight requests.
// With IS_PROD=true the listener speaks TLS using the PEM files from
// the env.
func Launch(serverRouter *mux.Router) {
	// Allow cors
	handlers.AllowedOrigins = os.Getenv("ALLOWED_ORIGINS")
	corsObj := handlers.MakeCorsObject()

	rl := newRateLimiter()

	r := otelhttp.NewHandler(corsObj.Handler(rl.middleware(requestIdMiddleWare(otelMiddleWare(serverRouter)))), handlers.ServerName)

	host := os.Getenv("HOST")
	if host == "" {
		host = defaultHost
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	isProd := os.Getenv("IS_PROD") == "true"

	srv := &http.Server{
		Addr:    host + ":" + port,
		Handler: r,
	}

	done := make(chan struct{})

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		logs.Logger.Info("Shutdown signal received, draining connections")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logs.Logger.Error(fmt.Sprint("printing error of Shutdown = ", err.Error()))
		}

		close(done)
	}()

	logs.Logger.Info(fmt.Sprint("Starting server ", handlers.ServerName, " on ", srv.Addr))

	var err error
	if isProd {
		certPath := os.Getenv("TLS_CERT_KEY")
		keyPath := os.Getenv("TLS_PRIVATE_KEY")
		if certPath == "" || keyPath == "" {
			logs.Logger.Error("TLS_CERT_KEY / TLS_PRIVATE_KEY env not found")
			return
		}

		err = srv.ListenAndServeTLS(certPath, keyPath)
	} else {
		err = srv.ListenAndServe()
	}

	if err != nil && err != http.ErrServerClosed {
		logs.Logger.Error(fmt.Sprint("printing error of ListenAndServe = ", err.Error()))
		return
	}

	<-done
}
