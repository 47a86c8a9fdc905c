package ports

import (
	"context"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/order"
)

// KitchenNotifier pushes a freshly submitted comanda to the kitchen display
// endpoint. Delivery is best effort and at most once: a failed push is
// reported to the caller, who logs it and moves on. The comanda's state
// never depends on the outcome.
type KitchenNotifier interface {
	// Notify sends the submitted comanda to the kitchen display.
	Notify(ctx context.Context, aggregate *order.Order) error
}
