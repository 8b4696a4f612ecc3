package unit

import (
	"context"
	"errors"
	"testing"

	distributorservice "eventy/contexts/event-listing/distributor-service"
	"eventy/contexts/event-listing/distributor-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/distributor-service/domain/errors"
	distributorhttp "eventy/contexts/event-listing/distributor-service/transport/http"
)

func TestPurchaseURLTemplateSubstitution(t *testing.T) {
	module := distributorservice.NewInMemoryModule([]entities.Distributor{
		{ID: 1, Name: "TicketHub", SearchAddress: "https://tickethub.example/search?q={query}"},
	}, nil)

	resp, err := module.Handler.PurchaseURLHandler(context.Background(), 1, "Jazz & Blues Night")
	if err != nil {
		t.Fatalf("purchase url failed: %v", err)
	}
	if resp.URL != "https://tickethub.example/search?q=Jazz+%26+Blues+Night" {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestPurchaseURLWithoutPlaceholderAppendsQuery(t *testing.T) {
	module := distributorservice.NewInMemoryModule([]entities.Distributor{
		{ID: 1, Name: "Plain", SearchAddress: "https://plain.example/search"},
		{ID: 2, Name: "WithParams", SearchAddress: "https://params.example/search?lang=en"},
	}, nil)
	ctx := context.Background()

	resp, err := module.Handler.PurchaseURLHandler(ctx, 1, "Opera")
	if err != nil {
		t.Fatalf("purchase url failed: %v", err)
	}
	if resp.URL != "https://plain.example/search?query=Opera" {
		t.Fatalf("unexpected url %q", resp.URL)
	}

	resp, err = module.Handler.PurchaseURLHandler(ctx, 2, "Opera")
	if err != nil {
		t.Fatalf("purchase url failed: %v", err)
	}
	if resp.URL != "https://params.example/search?lang=en&query=Opera" {
		t.Fatalf("unexpected url %q", resp.URL)
	}
}

func TestDistributorUpdateValidations(t *testing.T) {
	module := distributorservice.NewInMemoryModule([]entities.Distributor{
		{ID: 1, Name: "Old", SearchAddress: "https://old.example/{query}"},
	}, nil)
	ctx := context.Background()

	_, err := module.Handler.UpdateDistributorHandler(ctx, 1, distributorhttp.SaveDistributorRequest{
		ID:            2,
		Name:          "Renamed",
		SearchAddress: "https://new.example/{query}",
	})
	if !errors.Is(err, domainerrors.ErrDistributorIDMismatch) {
		t.Fatalf("expected id mismatch, got %v", err)
	}

	updated, err := module.Handler.UpdateDistributorHandler(ctx, 1, distributorhttp.SaveDistributorRequest{
		ID:            1,
		Name:          "Renamed",
		SearchAddress: "https://new.example/{query}",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("unexpected update result %+v", updated)
	}

	_, err = module.Handler.UpdateDistributorHandler(ctx, 404, distributorhttp.SaveDistributorRequest{
		Name:          "Ghost",
		SearchAddress: "https://ghost.example/{query}",
	})
	if !errors.Is(err, domainerrors.ErrDistributorNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
