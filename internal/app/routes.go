package app

import (
	"github.com/shimokura-meg/schedule-checklist/internal/assets"
	"github.com/shimokura-meg/schedule-checklist/internal/cache"
	"github.com/shimokura-meg/schedule-checklist/internal/config"
	"github.com/shimokura-meg/schedule-checklist/internal/handlers"
	"github.com/shimokura-meg/schedule-checklist/internal/repo"
	"github.com/shimokura-meg/schedule-checklist/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client, worker *assets.Worker) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
		ginSwagger.PersistAuthorization(true),
	))

	api := r.Group("/api/v1")

	eventRepo := repo.NewPGEventRepo(db)
	itemRepo := repo.NewPGItemRepo(db)
	viewCache := cache.NewViewCache(rdb, cfg.Redis.DefaultTTL.Duration())

	eventSvc := service.NewEventService(eventRepo, itemRepo, viewCache)
	itemSvc := service.NewItemService(itemRepo, eventRepo, viewCache)
	viewSvc := service.NewViewService(eventRepo, itemRepo, viewCache)

	registerEventRoutes(api, handlers.NewEventHandler(eventSvc), handlers.NewItemHandler(itemSvc))
	api.GET("/view", handlers.NewViewHandler(viewSvc).Grouped)

	if worker != nil {
		wh := handlers.NewWorkerHandler(worker)
		r.GET("/assets/*filepath", wh.Intercept)
		r.POST("/worker/push", wh.Push)
	}
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Schedule Checklist API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}

func registerEventRoutes(api *gin.RouterGroup, eh *handlers.EventHandler, ih *handlers.ItemHandler) {
	api.POST("/events", eh.Create)
	api.GET("/events", eh.List)
	api.GET("/events/:id", eh.GetByID)
	api.PATCH("/events/:id", eh.Update)
	api.DELETE("/events/:id", eh.Delete)

	api.POST("/events/:id/items", ih.Create)
	api.GET("/events/:id/items", ih.ListByEvent)
	api.PATCH("/items/:id", ih.Update)
	api.POST("/items/:id/check", ih.Check)
	api.DELETE("/items/:id", ih.Delete)
}
