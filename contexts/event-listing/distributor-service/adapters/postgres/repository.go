package postgres

import (
	"context"
	"errors"
	"log/slog"

	"eventy/contexts/event-listing/distributor-service/domain/entities"
	domainerrors "eventy/contexts/event-listing/distributor-service/domain/errors"

	"gorm.io/gorm"
)

type distributorModel struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Name          string `gorm:"column:name"`
	SearchAddress string `gorm:"column:search_address"`
}

func (distributorModel) TableName() string { return "distributor" }

func (m distributorModel) toEntity() entities.Distributor {
	return entities.Distributor{ID: m.ID, Name: m.Name, SearchAddress: m.SearchAddress}
}

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreateDistributor(ctx context.Context, distributor entities.Distributor) (entities.Distributor, error) {
	model := distributorModel{Name: distributor.Name, SearchAddress: distributor.SearchAddress}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.logError("distributor_create_failed", err, "name", distributor.Name)
		return entities.Distributor{}, err
	}
	return model.toEntity(), nil
}

func (r *Repository) GetDistributor(ctx context.Context, distributorID int64) (entities.Distributor, error) {
	var model distributorModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", distributorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Distributor{}, domainerrors.ErrDistributorNotFound
		}
		r.logError("distributor_get_failed", err, "distributor_id", distributorID)
		return entities.Distributor{}, err
	}
	return model.toEntity(), nil
}

func (r *Repository) ListDistributors(ctx context.Context) ([]entities.Distributor, error) {
	var models []distributorModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		r.logError("distributor_list_failed", err)
		return nil, err
	}
	items := make([]entities.Distributor, 0, len(models))
	for _, model := range models {
		items = append(items, model.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdateDistributor(ctx context.Context, distributor entities.Distributor) (entities.Distributor, error) {
	result := r.db.WithContext(ctx).Model(&distributorModel{}).Where("id = ?", distributor.ID).Updates(map[string]any{
		"name":           distributor.Name,
		"search_address": distributor.SearchAddress,
	})
	if result.Error != nil {
		r.logError("distributor_update_failed", result.Error, "distributor_id", distributor.ID)
		return entities.Distributor{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Distributor{}, domainerrors.ErrDistributorNotFound
	}
	return distributor, nil
}

func (r *Repository) DeleteDistributor(ctx context.Context, distributorID int64) error {
	result := r.db.WithContext(ctx).Delete(&distributorModel{}, "id = ?", distributorID)
	if result.Error != nil {
		r.logError("distributor_delete_failed", result.Error, "distributor_id", distributorID)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrDistributorNotFound
	}
	return nil
}

func (r *Repository) logError(event string, err error, args ...any) {
	fields := append([]any{
		"event", event,
		"module", "event-listing/distributor-service",
		"layer", "adapter_postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("distributor repository operation failed", fields...)
}
