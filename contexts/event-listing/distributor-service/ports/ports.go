package ports

import (
	"context"

	"eventy/contexts/event-listing/distributor-service/domain/entities"
)

type DistributorRepository interface {
	CreateDistributor(ctx context.Context, distributor entities.Distributor) (entities.Distributor, error)
	GetDistributor(ctx context.Context, distributorID int64) (entities.Distributor, error)
	ListDistributors(ctx context.Context) ([]entities.Distributor, error)
	UpdateDistributor(ctx context.Context, distributor entities.Distributor) (entities.Distributor, error)
	DeleteDistributor(ctx context.Context, distributorID int64) error
}
