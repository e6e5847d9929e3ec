package service

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/kazeph/storefront-api/internal/dispatch"
	"github.com/kazeph/storefront-api/internal/domain"
	"github.com/kazeph/storefront-api/internal/events"
	"github.com/kazeph/storefront-api/internal/repository"
)

// Dispatcher routes a composed draft through a delivery channel.
type Dispatcher interface {
	Dispatch(ctx context.Context, draft domain.OrderDraft, channel dispatch.Channel) dispatch.Result
}

type OrderService interface {
	PlaceOrder(ctx context.Context, productID string, quantity int, buyer domain.Buyer, channel dispatch.Channel) (domain.OrderDraft, dispatch.Result, error)
}

type orderService struct {
	catalog    repository.Catalog
	dispatcher Dispatcher
	eventBus   *events.EventBus[any]
	logger     hclog.Logger
}

func NewOrderService(
	catalog repository.Catalog,
	dispatcher Dispatcher,
	eventBus *events.EventBus[any],
	logger hclog.Logger) OrderService {
	return &orderService{
		catalog:    catalog,
		dispatcher: dispatcher,
		eventBus:   eventBus,
		logger:     logger,
	}
}

// PlaceOrder resolves the product, composes a draft and runs one dispatch
// attempt. The returned error only covers product lookup; dispatch outcomes
// travel in the Result so the caller always has a terminal state to render.
func (s *orderService) PlaceOrder(
	ctx context.Context,
	productID string,
	quantity int,
	buyer domain.Buyer,
	channel dispatch.Channel) (domain.OrderDraft, dispatch.Result, error) {
	s.logger.Debug("Placing order", "product_id", productID, "qty", quantity, "channel", channel)

	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		s.logger.Error("Unable to get product for order", "product_id", productID, "error", err)
		return domain.OrderDraft{}, dispatch.Result{}, err
	}

	draft := domain.ComposeOrder(product, quantity, buyer)
	result := s.dispatcher.Dispatch(ctx, draft, channel)

	s.logger.Info("Order dispatched",
		"product_id", productID,
		"qty", draft.Quantity,
		"total", draft.Total,
		"channel", channel,
		"state", result.State,
		"via_remote", result.ViaRemote)

	if result.State == dispatch.StateSent {
		s.eventBus.Publish(events.OrderPlaced{
			ProductID: product.ID,
			Product:   product.Name,
			Quantity:  draft.Quantity,
			Total:     draft.Total,
			Channel:   string(channel),
			ViaRemote: result.ViaRemote,
		})
	}

	return draft, result, nil
}
