package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/iliyamo/devfolio/internal/config"
	"github.com/iliyamo/devfolio/internal/database"
	"github.com/iliyamo/devfolio/internal/handler"
	"github.com/iliyamo/devfolio/internal/middleware"
	"github.com/iliyamo/devfolio/internal/queue"
	"github.com/iliyamo/devfolio/internal/repository"
	"github.com/iliyamo/devfolio/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(context.Background(), db); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	users := repository.NewUserRepo(db)
	projects := repository.NewProjectRepo(db)
	achievements := repository.NewAchievementRepo(db)

	authHandler := handler.NewAuthHandler(cfg, users)
	projectHandler := handler.NewProjectHandler(projects)
	achievementHandler := handler.NewAchievementHandler(achievements)
	publicHandler := handler.NewPublicHandler(users, projects, achievements)

	// Response cache for the public endpoints; a nil Redis client turns it
	// into a pass-through.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}
	cache := middleware.ResponseCache(config.LoadCacheConfig(), rdb)

	// Background consumer turning export events into an audit log.
	go func() {
		if err := queue.StartExportConsumer(); err != nil {
			log.Printf("export consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(echomw.CORS())
	router.Register(e, cfg, users, authHandler, projectHandler, achievementHandler, publicHandler, cache)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
