package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tradehall/internal/api/dto"
	"tradehall/internal/api/middleware"
	"tradehall/internal/domain"
)

type InventoryService interface {
	GetInventory(ctx context.Context, characterID uuid.UUID) (domain.Inventory, error)
	AddItem(ctx context.Context, characterID, itemID uuid.UUID, slot *int) (domain.Inventory, error)
	EquipItem(ctx context.Context, characterID, itemID uuid.UUID) (domain.Inventory, error)
	UnequipItem(ctx context.Context, characterID, itemID uuid.UUID) (domain.Inventory, error)
	Effects(ctx context.Context, characterID uuid.UUID) (map[domain.EffectType]int, error)
}

type InventoryHandler struct {
	service InventoryService
	log     *slog.Logger
}

func NewInventoryHandler(service InventoryService, log *slog.Logger) *InventoryHandler {
	return &InventoryHandler{service: service, log: log}
}

// GetInventory godoc
// @Summary Get inventory
// @Description Get the current character's inventory in slot order
// @Tags inventory
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Inventory
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory [get]
func (h *InventoryHandler) GetInventory(c echo.Context) error {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	inv, err := h.service.GetInventory(c.Request().Context(), characterID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.InventoryFromDomain(inv))
}

// AddItem godoc
// @Summary Add item to inventory
// @Description Put an unowned item into the given slot or the lowest free one
// @Tags inventory
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.AddItemRequest true "Item and optional slot"
// @Success 201 {object} dto.Inventory
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/inventory/items [post]
func (h *InventoryHandler) AddItem(c echo.Context) error {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.AddItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}

	inv, err := h.service.AddItem(c.Request().Context(), characterID, uuid.MustParse(req.ItemID), req.Slot)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, dto.InventoryFromDomain(inv))
}

// EquipItem godoc
// @Summary Equip item
// @Description Equip an inventory item, unequipping the item of the same type
// @Tags inventory
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Inventory
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/items/{id}/equip [post]
func (h *InventoryHandler) EquipItem(c echo.Context) error {
	return h.changeEquipment(c, h.service.EquipItem)
}

// UnequipItem godoc
// @Summary Unequip item
// @Tags inventory
// @Produce json
// @Security Bearer
// @Param id path string true "Item ID"
// @Success 200 {object} dto.Inventory
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/inventory/items/{id}/unequip [post]
func (h *InventoryHandler) UnequipItem(c echo.Context) error {
	return h.changeEquipment(c, h.service.UnequipItem)
}

func (h *InventoryHandler) changeEquipment(
	c echo.Context,
	change func(ctx context.Context, characterID, itemID uuid.UUID) (domain.Inventory, error),
) error {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	itemID, ok := pathID(c, "id")
	if !ok {
		return ErrBadRequest(c, "invalid item id")
	}

	inv, err := change(c.Request().Context(), characterID, itemID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.InventoryFromDomain(inv))
}

// GetEffects godoc
// @Summary Get equipment effects
// @Description Sum attack, defense and hp over equipped items
// @Tags inventory
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.Effects
// @Failure 401 {object} map[string]string
// @Router /api/inventory/effects [get]
func (h *InventoryHandler) GetEffects(c echo.Context) error {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	effects, err := h.service.Effects(c.Request().Context(), characterID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.EffectsFromDomain(effects))
}
