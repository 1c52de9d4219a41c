package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/CORBENDALLAS111/Tmoji-Web/internal/config"
	"github.com/CORBENDALLAS111/Tmoji-Web/internal/handler"
)

const shutdownTimeout = time.Second * 10

type (
	InitParams struct {
		Config   *config.Config
		Handlers *handler.Handlers
	}
	Server struct {
		cfg      *config.Config
		handlers *handler.Handlers
		srv      *http.Server
	}
)

func New(p *InitParams) *Server {
	s := &Server{
		cfg:      p.Config,
		handlers: p.Handlers,
	}

	s.srv = &http.Server{
		Addr:    p.Config.Addr,
		Handler: s.router(),
	}

	return s
}

func (s *Server) router() chi.Router {
	r := chi.NewRouter()

	r.Use(requestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", s.handlers.General.Status)
	r.Get("/health", s.handlers.General.Health)

	r.Get("/pack", s.handlers.Emoji.GetPack)
	r.Get("/emoji/{emojiID}", s.handlers.Emoji.GetEmoji)
	r.Get("/manifest/{packID}", s.handlers.Emoji.GetManifest)
	r.Post("/cache/clear", s.handlers.Emoji.ClearCache)

	return r
}

// Start serves until SIGINT/SIGTERM, then drains in-flight requests.
func (s *Server) Start() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		err := s.srv.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server.Start", slog.Any("err", err))
			c <- syscall.SIGTERM
		}
	}()

	slog.Info("Server started!", slog.String("addr", s.cfg.Addr))

	<-c

	slog.Info("Stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.srv.Shutdown(ctx)
	if err != nil {
		slog.Error("Server.Start", slog.Any("err", err))
	}
}

// requestID stamps every request with a correlation id, echoed back in the
// X-Request-Id header.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		r.Header.Set("X-Request-Id", id)

		next.ServeHTTP(w, r)
	})
}
