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

type StoreService interface {
	GetStore(ctx context.Context, storeID uuid.UUID) (*domain.Store, error)
	OpenStore(ctx context.Context, characterID uuid.UUID, storeType domain.StoreType) (*domain.Store, error)
	ListItem(ctx context.Context, ownerID, storeID, itemID uuid.UUID) (*domain.Store, error)
	RetractItem(ctx context.Context, ownerID, storeID, itemID uuid.UUID) (domain.Inventory, error)
	BuyItem(ctx context.Context, buyerID, storeID, itemID uuid.UUID) (*domain.Item, error)
	SellItem(ctx context.Context, sellerID, storeID, itemID uuid.UUID) (*domain.Store, error)
	ItemsOfType(ctx context.Context, storeID uuid.UUID, itemType domain.ItemType) ([]*domain.StoreItem, error)
}

type StoreHandler struct {
	service StoreService
	log     *slog.Logger
}

func NewStoreHandler(service StoreService, log *slog.Logger) *StoreHandler {
	return &StoreHandler{service: service, log: log}
}

// OpenStore godoc
// @Summary Open store
// @Description Open an empty store owned by the current character
// @Tags stores
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body dto.OpenStoreRequest true "Store type"
// @Success 201 {object} dto.Store
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/stores [post]
func (h *StoreHandler) OpenStore(c echo.Context) error {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return ErrUnauthorized(c)
	}

	var req dto.OpenStoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return ErrBadRequest(c, err.Error())
	}
	storeType, err := domain.ParseStoreType(req.Type)
	if err != nil {
		return ErrBadRequest(c, err.Error())
	}

	store, err := h.service.OpenStore(c.Request().Context(), characterID, storeType)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, dto.StoreFromDomain(store))
}

// GetStore godoc
// @Summary Get store
// @Tags stores
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Success 200 {object} dto.Store
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{id} [get]
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return ErrBadRequest(c, "invalid store id")
	}

	store, err := h.service.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.StoreFromDomain(store))
}

// GetStoreItems godoc
// @Summary List store items of a type
// @Description Listings of the given item type in slot order
// @Tags stores
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Param type query string true "Item type"
// @Success 200 {array} dto.Listing
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{id}/items [get]
func (h *StoreHandler) GetStoreItems(c echo.Context) error {
	storeID, ok := pathID(c, "id")
	if !ok {
		return ErrBadRequest(c, "invalid store id")
	}

	itemType, err := domain.ParseItemType(c.QueryParam("type"))
	if err != nil {
		return ErrBadRequest(c, err.Error())
	}

	listings, err := h.service.ItemsOfType(c.Request().Context(), storeID, itemType)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.ListingsFromDomain(listings))
}

// ListItem godoc
// @Summary List item in own store
// @Description Move an unequipped inventory item into the store at its own price
// @Tags stores
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Param request body dto.StoreItemRequest true "Item to list"
// @Success 201 {object} dto.Store
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/stores/{id}/items [post]
func (h *StoreHandler) ListItem(c echo.Context) error {
	target, err := bodyTarget(c)
	if target == nil {
		return err
	}

	store, err := h.service.ListItem(c.Request().Context(), target.characterID, target.storeID, target.itemID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusCreated, dto.StoreFromDomain(store))
}

// RetractItem godoc
// @Summary Retract item from own store
// @Tags stores
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} dto.Inventory
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/stores/{id}/items/{item_id} [delete]
func (h *StoreHandler) RetractItem(c echo.Context) error {
	target, err := pathTarget(c)
	if target == nil {
		return err
	}

	inv, err := h.service.RetractItem(c.Request().Context(), target.characterID, target.storeID, target.itemID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.InventoryFromDomain(inv))
}

// BuyItem godoc
// @Summary Buy item from store
// @Description Pay the listed price and receive the item in the lowest free inventory slot
// @Tags stores
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Param item_id path string true "Item ID"
// @Success 200 {object} dto.Item
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/stores/{id}/items/{item_id}/buy [post]
func (h *StoreHandler) BuyItem(c echo.Context) error {
	target, err := pathTarget(c)
	if target == nil {
		return err
	}

	item, err := h.service.BuyItem(c.Request().Context(), target.characterID, target.storeID, target.itemID)
	if err != nil {
		return respondError(c, h.log, err)
	}

	return c.JSON(http.StatusOK, dto.ItemFromDomain(item))
}

// SellItem godoc
// @Summary Sell item to store
// @Description Sell an unequipped inventory item to a buy-and-sell store at the item's price
// @Tags stores
// @Accept json
// @Produce json
// @Security Bearer
// @Param id path string true "Store ID"
// @Param request body dto.StoreItemRequest true "Item to sell"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/stores/{id}/sell [post]
func (h *StoreHandler) SellItem(c echo.Context) error {
	target, err := bodyTarget(c)
	if target == nil {
		return err
	}

	if _, err := h.service.SellItem(c.Request().Context(), target.characterID, target.storeID, target.itemID); err != nil {
		return respondError(c, h.log, err)
	}

	return SuccessResponse(c, "item sold")
}

type tradeTarget struct {
	characterID uuid.UUID
	storeID     uuid.UUID
	itemID      uuid.UUID
}

// pathTarget reads the caller, the store and the item from the path. A nil
// target means the error response was already written.
func pathTarget(c echo.Context) (*tradeTarget, error) {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return nil, ErrUnauthorized(c)
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return nil, ErrBadRequest(c, "invalid store id")
	}
	itemID, ok := pathID(c, "item_id")
	if !ok {
		return nil, ErrBadRequest(c, "invalid item id")
	}
	return &tradeTarget{characterID: characterID, storeID: storeID, itemID: itemID}, nil
}

// bodyTarget is pathTarget with the item taken from the request body.
func bodyTarget(c echo.Context) (*tradeTarget, error) {
	characterID, err := middleware.GetUserIDFromContext(c.Request().Context())
	if err != nil {
		return nil, ErrUnauthorized(c)
	}
	storeID, ok := pathID(c, "id")
	if !ok {
		return nil, ErrBadRequest(c, "invalid store id")
	}

	var req dto.StoreItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return nil, ErrBadRequest(c, err.Error())
	}
	return &tradeTarget{characterID: characterID, storeID: storeID, itemID: uuid.MustParse(req.ItemID)}, nil
}
