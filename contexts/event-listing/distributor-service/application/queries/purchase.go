package queries

import (
	"context"
	"net/url"
	"strings"

	"eventy/contexts/event-listing/distributor-service/domain/entities"
	"eventy/contexts/event-listing/distributor-service/ports"
)

const queryPlaceholder = "{query}"

type PurchaseUseCase struct {
	Distributors ports.DistributorRepository
}

func (uc PurchaseUseCase) GetDistributor(ctx context.Context, distributorID int64) (entities.Distributor, error) {
	return uc.Distributors.GetDistributor(ctx, distributorID)
}

func (uc PurchaseUseCase) ListDistributors(ctx context.Context) ([]entities.Distributor, error) {
	return uc.Distributors.ListDistributors(ctx)
}

// PurchaseURL builds the vendor search URL for an event. The escaped event
// name replaces the {query} placeholder; templates without a placeholder get
// the name appended as a query parameter.
func (uc PurchaseUseCase) PurchaseURL(ctx context.Context, distributorID int64, eventName string) (string, error) {
	distributor, err := uc.Distributors.GetDistributor(ctx, distributorID)
	if err != nil {
		return "", err
	}
	escaped := url.QueryEscape(strings.TrimSpace(eventName))
	if strings.Contains(distributor.SearchAddress, queryPlaceholder) {
		return strings.ReplaceAll(distributor.SearchAddress, queryPlaceholder, escaped), nil
	}
	separator := "?query="
	if strings.Contains(distributor.SearchAddress, "?") {
		separator = "&query="
	}
	return distributor.SearchAddress + separator + escaped, nil
}
