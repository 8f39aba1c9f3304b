package server

import (
	"context"
	"net"
	"net/http"

	"github.com/adrianliechti/llmstxt/config"
	"github.com/adrianliechti/llmstxt/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r.Route("/v1", func(r chi.Router) {
		r.Use(authenticate(cfg))
		h.Attach(r)
	})

	return &Server{
		Config: cfg,

		handler: otelhttp.NewHandler(r, "server"),
	}, nil
}

func authenticate(cfg *config.Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			for _, p := range cfg.Authorizers {
				authenticated, err := p.Authenticate(ctx, r)

				if err != nil {
					http.Error(w, err.Error(), http.StatusUnauthorized)
					return
				}

				ctx = authenticated
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.Address,
		Handler: s.handler,

		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	return server.ListenAndServe()
}
