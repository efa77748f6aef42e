package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/devfolio/internal/config"
	"github.com/iliyamo/devfolio/internal/handler"    // import the handlers that implement business logic
	"github.com/iliyamo/devfolio/internal/middleware" // import middleware for bearer authentication and caching
	"github.com/iliyamo/devfolio/internal/repository"
)

// Register wires every route of the API onto the provided Echo instance.
//
// Unauthenticated routes: liveness, register/login, and the slug-addressed
// public profile and export endpoints (the latter behind the response
// cache).  Everything else requires a valid bearer token resolved to an
// existing user by the auth middleware.
func Register(e *echo.Echo, cfg config.Config, users *repository.UserRepo,
	a *handler.AuthHandler, p *handler.ProjectHandler, ah *handler.AchievementHandler,
	pub *handler.PublicHandler, cache echo.MiddlewareFunc) {

	// Liveness endpoints for load balancers and monitoring.
	e.GET("/", handler.Root)
	e.GET("/health", handler.Health)

	auth := middleware.RequireAuth(cfg.JWTSecret, users)

	// Credential operations do not require an existing session.
	g := e.Group("/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.GET("/me", a.Me, auth)

	// Owner-scoped project collection.
	pg := e.Group("/projects", auth)
	pg.POST("", p.Create)
	pg.GET("", p.List)
	pg.GET("/:id", p.GetOne)
	pg.PUT("/:id", p.Update)
	pg.DELETE("/:id", p.Delete)

	// Owner-scoped achievement collection.
	ag := e.Group("/achievements", auth)
	ag.POST("", ah.Create)
	ag.GET("", ah.List)
	ag.GET("/:id", ah.GetOne)
	ag.PUT("/:id", ah.Update)
	ag.DELETE("/:id", ah.Delete)

	// Public read-only views, cacheable because they never depend on a token.
	e.GET("/profile/:slug", pub.GetProfile, cache)
	e.GET("/export/:slug", pub.Export, cache)
}
