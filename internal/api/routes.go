package api

import (
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"tradehall/internal/api/handlers"
	jwtMiddleware "tradehall/internal/api/middleware"
	"tradehall/internal/api/services"
	"tradehall/internal/api/ws"
	"tradehall/internal/config"
	r "tradehall/internal/redis"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, hub *ws.Hub, cfg *config.Config, log *slog.Logger) {
	e.GET("/health", healthCheck)

	wsHandler := handlers.NewWebSocketHandler(hub, cfg.JWTKey, log)
	e.GET("/api/ws", wsHandler.HandleConnection)

	e.Validator = handlers.NewValidator()

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(echojwt.WithConfig(jwtConfig))
	apiGroup.Use(jwtMiddleware.ExtractUserIDFromJWT())

	inventoryService := services.NewInventoryService(db, log)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, log)
	apiGroup.GET("/inventory", inventoryHandler.GetInventory)
	apiGroup.POST("/inventory/items", inventoryHandler.AddItem)
	apiGroup.POST("/inventory/items/:id/equip", inventoryHandler.EquipItem)
	apiGroup.POST("/inventory/items/:id/unequip", inventoryHandler.UnequipItem)
	apiGroup.GET("/inventory/effects", inventoryHandler.GetEffects)

	storeCache := r.NewStoreCache(rdb, cfg.Redis.StoreTTL)
	storeService := services.NewStoreService(db, storeCache, hub, log)
	storeHandler := handlers.NewStoreHandler(storeService, log)
	apiGroup.POST("/stores", storeHandler.OpenStore)
	apiGroup.GET("/stores/:id", storeHandler.GetStore)
	apiGroup.GET("/stores/:id/items", storeHandler.GetStoreItems)
	apiGroup.POST("/stores/:id/items", storeHandler.ListItem)
	apiGroup.DELETE("/stores/:id/items/:item_id", storeHandler.RetractItem)
	apiGroup.POST("/stores/:id/items/:item_id/buy", storeHandler.BuyItem)
	apiGroup.POST("/stores/:id/sell", storeHandler.SellItem)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
