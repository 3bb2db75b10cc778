package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"brewshop/internal/checkout"
	"brewshop/internal/domain"
	"brewshop/internal/storefront"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type BrewService interface {
	List(ctx context.Context) ([]domain.Brew, error)
	Get(ctx context.Context, id string) (*domain.Brew, error)
}

type SessionService interface {
	Issue(ctx context.Context) (token, sessionID string, err error)
	Lookup(ctx context.Context, token string) (string, error)
	TTLSeconds() int
}

type StateRegistry interface {
	With(ctx context.Context, id string, fn func(*storefront.State) error) error
}

type CheckoutService interface {
	Mount(ctx context.Context, s checkout.Session) error
	Submit(ctx context.Context, s checkout.Session, form checkout.Form) error
}

// Deps are the collaborators the handlers need.
type Deps struct {
	BrewSvc     BrewService
	Sessions    SessionService
	Registry    StateRegistry
	Checkout    CheckoutService
	CORSOrigins []string
}

func (d Deps) validate() error {
	switch {
	case d.BrewSvc == nil:
		return errors.New("httpserver: brew service is required")
	case d.Sessions == nil:
		return errors.New("httpserver: session service is required")
	case d.Registry == nil:
		return errors.New("httpserver: state registry is required")
	case d.Checkout == nil:
		return errors.New("httpserver: checkout service is required")
	}
	return nil
}

// buildRouter wires routes for the API.
func buildRouter(logger *zap.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery(), corsMiddleware(deps.CORSOrigins))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	router.POST("/sessions", h.createSession)
	router.GET("/brews", sessionMiddleware(deps.Sessions, false), h.listBrews)
	router.GET("/brews/:id", h.getBrew)

	session := router.Group("/", sessionMiddleware(deps.Sessions, true))
	session.GET("/cart", h.getCart)
	session.POST("/cart/items", h.addCartItem)
	session.GET("/checkout", h.mountCheckout)
	session.POST("/checkout", h.submitCheckout)
	session.GET("/ui", h.getUI)
	session.DELETE("/ui/toast", h.resetToast)
	session.DELETE("/ui/modal", h.closeModal)

	router.NoRoute(func(c *gin.Context) {
		writeError(c, http.StatusNotFound, "route not found")
	})

	return router, nil
}

func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Authorization", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
