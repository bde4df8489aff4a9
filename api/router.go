package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/api/i"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// Router manages the HTTP server and its dependencies,
// including controllers, the authorization middleware and the metrics endpoint.
type Router struct {
	addr                    string
	baseURL                 string
	controllers             []i.Controller
	authorizationMiddleware gin.HandlerFunc
	metricsHandler          http.Handler
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr                    string // Address to listen on
	BaseURL                 string // Base URL for API routes
	Controllers             []i.Controller
	AuthorizationMiddleware gin.HandlerFunc
	MetricsHandler          http.Handler // Served on /metrics when set
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:                    config.Addr,
		baseURL:                 config.BaseURL,
		controllers:             config.Controllers,
		authorizationMiddleware: config.AuthorizationMiddleware,
		metricsHandler:          config.MetricsHandler,
	}
}

// Engine builds the gin engine with every route registered.
//
// Routes are grouped and managed under the base URL, with the following access levels:
// - Public routes: No authentication required.
// - Protected routes: Authentication required.
func (r *Router) Engine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		// Public routes (accessible without authentication)
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		// Protected routes (authentication required)
		protectedRoutes := api.Group("/v1")
		if r.authorizationMiddleware != nil {
			protectedRoutes.Use(r.authorizationMiddleware)
		}
		{
			for _, c := range r.controllers {
				c.RegisterProtected(protectedRoutes)
			}
		}
	}

	return router
}

// Run serves HTTP until ctx is done, then shuts the server down, letting
// in-flight requests finish within shutdownTimeout.
func (r *Router) Run(ctx context.Context) error {
	srv := &http.Server{Addr: r.addr, Handler: r.Engine()}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
