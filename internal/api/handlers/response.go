package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tradehall/internal/api/services"
	"tradehall/internal/domain"
	"tradehall/internal/repository"
)

func ErrUnauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

func ErrForbidden(c echo.Context, message string) error {
	if message == "" {
		message = "forbidden"
	}
	return c.JSON(http.StatusForbidden, map[string]string{"error": message})
}

func ErrNotFound(c echo.Context, message string) error {
	if message == "" {
		message = "not found"
	}
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func ErrBadRequest(c echo.Context, message string) error {
	if message == "" {
		message = "invalid request"
	}
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func ErrInternalServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}

func ErrConflict(c echo.Context, message string) error {
	if message == "" {
		message = "conflict"
	}
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func SuccessResponse(c echo.Context, message string) error {
	if message == "" {
		message = "ok"
	}
	return c.JSON(http.StatusOK, map[string]string{"message": message})
}

var (
	notFoundErrors = []error{
		repository.ErrCharacterNotFound,
		repository.ErrItemNotFound,
		repository.ErrStoreNotFound,
		services.ErrItemNotInInventory,
		domain.ErrItemNotInContainer,
		domain.ErrItemNotFound,
	}
	conflictErrors = []error{
		domain.ErrSlotTaken,
		services.ErrItemAlreadyOwned,
		services.ErrItemEquipped,
		services.ErrOwnStore,
	}
	badRequestErrors = []error{
		domain.ErrSlotOutOfRange,
		domain.ErrContainerFull,
		domain.ErrNotEnoughSpace,
		domain.ErrStoreDoesNotBuyItems,
		domain.ErrNotEnoughMoney,
		domain.ErrInvalidItemType,
		domain.ErrInvalidStoreType,
		services.ErrInsufficientGold,
	}
)

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// respondError maps a service error to its HTTP status. Unknown errors are
// logged and reported as 500 without details.
func respondError(c echo.Context, log *slog.Logger, err error) error {
	switch {
	case isAny(err, notFoundErrors):
		return ErrNotFound(c, err.Error())
	case errors.Is(err, services.ErrNotStoreOwner):
		return ErrForbidden(c, err.Error())
	case isAny(err, conflictErrors):
		return ErrConflict(c, err.Error())
	case isAny(err, badRequestErrors):
		return ErrBadRequest(c, err.Error())
	default:
		log.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return ErrInternalServerError(c)
	}
}

// pathID reads a uuid path parameter.
func pathID(c echo.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	if !govalidator.IsUUID(raw) {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// bindAndValidate decodes the request body into req and runs the registered
// validator over it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return errors.New("invalid request body")
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}
