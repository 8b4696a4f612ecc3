package httpadapter

import (
	"context"
	"log/slog"

	"eventy/contexts/event-listing/distributor-service/application/commands"
	"eventy/contexts/event-listing/distributor-service/application/queries"
	"eventy/contexts/event-listing/distributor-service/domain/entities"
	httptransport "eventy/contexts/event-listing/distributor-service/transport/http"
)

type Handler struct {
	Distributors commands.DistributorUseCase
	Purchase     queries.PurchaseUseCase
	Logger       *slog.Logger
}

func (h Handler) ListDistributorsHandler(ctx context.Context) (httptransport.DistributorListResponse, error) {
	items, err := h.Purchase.ListDistributors(ctx)
	if err != nil {
		return httptransport.DistributorListResponse{}, err
	}
	mapped := make([]httptransport.DistributorResponse, 0, len(items))
	for _, distributor := range items {
		mapped = append(mapped, mapDistributor(distributor))
	}
	return httptransport.DistributorListResponse{Items: mapped}, nil
}

func (h Handler) GetDistributorHandler(ctx context.Context, distributorID int64) (httptransport.DistributorResponse, error) {
	distributor, err := h.Purchase.GetDistributor(ctx, distributorID)
	if err != nil {
		return httptransport.DistributorResponse{}, err
	}
	return mapDistributor(distributor), nil
}

func (h Handler) CreateDistributorHandler(ctx context.Context, req httptransport.SaveDistributorRequest) (httptransport.DistributorResponse, error) {
	created, err := h.Distributors.CreateDistributor(ctx, entities.Distributor{
		Name:          req.Name,
		SearchAddress: req.SearchAddress,
	})
	if err != nil {
		return httptransport.DistributorResponse{}, err
	}
	return mapDistributor(created), nil
}

func (h Handler) UpdateDistributorHandler(ctx context.Context, distributorID int64, req httptransport.SaveDistributorRequest) (httptransport.DistributorResponse, error) {
	updated, err := h.Distributors.UpdateDistributor(ctx, distributorID, entities.Distributor{
		ID:            req.ID,
		Name:          req.Name,
		SearchAddress: req.SearchAddress,
	})
	if err != nil {
		return httptransport.DistributorResponse{}, err
	}
	return mapDistributor(updated), nil
}

func (h Handler) DeleteDistributorHandler(ctx context.Context, distributorID int64) error {
	return h.Distributors.DeleteDistributor(ctx, distributorID)
}

func (h Handler) PurchaseURLHandler(ctx context.Context, distributorID int64, eventName string) (httptransport.PurchaseURLResponse, error) {
	link, err := h.Purchase.PurchaseURL(ctx, distributorID, eventName)
	if err != nil {
		return httptransport.PurchaseURLResponse{}, err
	}
	return httptransport.PurchaseURLResponse{URL: link}, nil
}

func mapDistributor(distributor entities.Distributor) httptransport.DistributorResponse {
	return httptransport.DistributorResponse{
		ID:            distributor.ID,
		Name:          distributor.Name,
		SearchAddress: distributor.SearchAddress,
	}
}
