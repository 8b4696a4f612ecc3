package commands

import (
	"context"
	"log/slog"
	"strings"

	"eventy/contexts/event-listing/distributor-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/distributor-service/domain/errors"
	"eventy/contexts/event-listing/distributor-service/ports"
)

type DistributorUseCase struct {
	Distributors ports.DistributorRepository
	Logger       *slog.Logger
}

func (uc DistributorUseCase) CreateDistributor(ctx context.Context, distributor entities.Distributor) (entities.Distributor, error) {
	if strings.TrimSpace(distributor.Name) == "" || strings.TrimSpace(distributor.SearchAddress) == "" {
		return entities.Distributor{}, domainerrors.ErrInvalidDistributorInput
	}
	created, err := uc.Distributors.CreateDistributor(ctx, distributor)
	if err != nil {
		return entities.Distributor{}, err
	}
	uc.logger().Info("distributor created",
		"event", "distributor_created",
		"module", "event-listing/distributor-service",
		"layer", "application",
		"distributor_id", created.ID,
	)
	return created, nil
}

func (uc DistributorUseCase) UpdateDistributor(ctx context.Context, distributorID int64, distributor entities.Distributor) (entities.Distributor, error) {
	if distributor.ID != 0 && distributor.ID != distributorID {
		return entities.Distributor{}, domainerrors.ErrDistributorIDMismatch
	}
	if strings.TrimSpace(distributor.Name) == "" || strings.TrimSpace(distributor.SearchAddress) == "" {
		return entities.Distributor{}, domainerrors.ErrInvalidDistributorInput
	}
	distributor.ID = distributorID
	return uc.Distributors.UpdateDistributor(ctx, distributor)
}

func (uc DistributorUseCase) DeleteDistributor(ctx context.Context, distributorID int64) error {
	if err := uc.Distributors.DeleteDistributor(ctx, distributorID); err != nil {
		return err
	}
	uc.logger().Info("distributor deleted",
		"event", "distributor_deleted",
		"module", "event-listing/distributor-service",
		"layer", "application",
		"distributor_id", distributorID,
	)
	return nil
}

func (uc DistributorUseCase) logger() *slog.Logger {
	if uc.Logger == nil {
		return slog.Default()
	}
	return uc.Logger
}
