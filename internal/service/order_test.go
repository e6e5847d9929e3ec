package service

import (
	"context"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kazeph/storefront-api/internal/dispatch"
	"github.com/kazeph/storefront-api/internal/domain"
	"github.com/kazeph/storefront-api/internal/events"
	"github.com/kazeph/storefront-api/internal/repository"
)

func fixtureCatalog() repository.Catalog {
	return repository.NewFixtureCatalog([]*domain.Product{
		{
			ID:        "kaze-arc",
			Name:      "KAZE Arc",
			Status:    domain.StatusPreOrder,
			BasePrice: "₱399",
		},
	})
}

func TestPlaceOrderLocalFallback(t *testing.T) {
	bus := events.NewEventBus[any]()
	router := dispatch.NewRouter("639171234567", "", hclog.NewNullLogger())
	svc := NewOrderService(fixtureCatalog(), router, bus, hclog.NewNullLogger())

	buyer := domain.Buyer{Name: "Juan", Email: "a@b.com", Phone: "0912"}
	draft, result, err := svc.PlaceOrder(context.Background(), "kaze-arc", 2, buyer, dispatch.ChannelForm)

	require.NoError(t, err)
	assert.Equal(t, dispatch.StateSent, result.State)
	assert.False(t, result.ViaRemote)
	assert.Equal(t, 798.0, draft.Total)
}

func TestPlaceOrderUnknownProduct(t *testing.T) {
	bus := events.NewEventBus[any]()
	router := dispatch.NewRouter("639171234567", "", hclog.NewNullLogger())
	svc := NewOrderService(fixtureCatalog(), router, bus, hclog.NewNullLogger())

	_, _, err := svc.PlaceOrder(context.Background(), "nope", 1, domain.Buyer{}, dispatch.ChannelMessaging)

	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPlaceOrderPublishesEvent(t *testing.T) {
	bus := events.NewEventBus[any]()
	subscriber := bus.Subscribe()
	defer bus.Unsubscribe(subscriber)

	router := dispatch.NewRouter("639171234567", "", hclog.NewNullLogger())
	svc := NewOrderService(fixtureCatalog(), router, bus, hclog.NewNullLogger())

	_, result, err := svc.PlaceOrder(context.Background(), "kaze-arc", 3, domain.Buyer{}, dispatch.ChannelMessaging)
	require.NoError(t, err)
	require.Equal(t, dispatch.StateSent, result.State)

	select {
	case raw := <-subscriber:
		event, ok := raw.(events.OrderPlaced)
		require.True(t, ok, "expected an OrderPlaced event, got %T", raw)
		assert.Equal(t, "kaze-arc", event.ProductID)
		assert.Equal(t, 3, event.Quantity)
		assert.Equal(t, 1197.0, event.Total)
		assert.Equal(t, "messaging", event.Channel)
		assert.True(t, event.ViaRemote)
	default:
		t.Fatal("expected an event on the bus")
	}
}

func TestPlaceOrderRejectedPublishesNothing(t *testing.T) {
	bus := events.NewEventBus[any]()
	subscriber := bus.Subscribe()
	defer bus.Unsubscribe(subscriber)

	router := dispatch.NewRouter("639171234567", "", hclog.NewNullLogger())
	svc := NewOrderService(fixtureCatalog(), router, bus, hclog.NewNullLogger())

	_, result, err := svc.PlaceOrder(context.Background(), "kaze-arc", 1, domain.Buyer{}, dispatch.ChannelForm)
	require.NoError(t, err)
	require.Equal(t, dispatch.StateRejected, result.State)

	select {
	case raw := <-subscriber:
		t.Fatalf("expected no event, got %v", raw)
	default:
	}
}

func TestCatalogServiceList(t *testing.T) {
	svc := NewCatalogService(fixtureCatalog(), hclog.NewNullLogger())

	products, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogServiceGetNotFound(t *testing.T) {
	svc := NewCatalogService(fixtureCatalog(), hclog.NewNullLogger())

	_, err := svc.GetProduct(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}
