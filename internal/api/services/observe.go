package services

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"tradehall/internal/metrics"
)

var tracer = otel.Tracer("tradehall/services")

var (
	ErrItemNotInInventory = errors.New("item not in inventory")
	ErrItemEquipped       = errors.New("item is equipped")
	ErrItemAlreadyOwned   = errors.New("item already belongs to a character or store")
	ErrNotStoreOwner      = errors.New("character does not own the store")
	ErrOwnStore           = errors.New("cannot trade with own store")
	ErrInsufficientGold   = errors.New("insufficient gold")
)

// observe wraps a use-case in a span and records its outcome.
func observe(ctx context.Context, operation string, fn func(ctx context.Context) error, attrs ...attribute.KeyValue) error {
	ctx, span := tracer.Start(ctx, operation)
	defer span.End()
	span.SetAttributes(attrs...)

	err := fn(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	metrics.ObserveTrade(operation, err)
	return err
}
