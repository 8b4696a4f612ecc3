package postgres

import (
	"context"
	"errors"
	"log/slog"

	"eventy/contexts/identity-access/account-service/domain/entities"
	domainerrors "eventy/contexts/identity-access/account-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type accountModel struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Email         string `gorm:"column:email;uniqueIndex:account_email_uq"`
	Name          string `gorm:"column:name"`
	PasswordHash  string `gorm:"column:password_hash"`
	PhoneNumber   string `gorm:"column:phone_number"`
	ProfileImage  string `gorm:"column:profile_image"`
	AccountType   string `gorm:"column:account_type"`
	ActiveAccount bool   `gorm:"column:active_account"`
}

func (accountModel) TableName() string { return "account" }

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		ID:            m.ID,
		Email:         m.Email,
		Name:          m.Name,
		PasswordHash:  m.PasswordHash,
		PhoneNumber:   m.PhoneNumber,
		ProfileImage:  m.ProfileImage,
		AccountType:   entities.AccountType(m.AccountType),
		ActiveAccount: m.ActiveAccount,
	}
}

func fromEntity(account entities.Account) accountModel {
	return accountModel{
		ID:            account.ID,
		Email:         account.Email,
		Name:          account.Name,
		PasswordHash:  account.PasswordHash,
		PhoneNumber:   account.PhoneNumber,
		ProfileImage:  account.ProfileImage,
		AccountType:   string(account.AccountType),
		ActiveAccount: account.ActiveAccount,
	}
}

// Repository is the gorm-backed account repository.
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

func (r *Repository) CreateAccount(ctx context.Context, account entities.Account) (entities.Account, error) {
	model := fromEntity(account)
	model.ID = 0
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
		r.logError("account_create_failed", err, "email", account.Email)
		return entities.Account{}, err
	}
	return model.toEntity(), nil
}

func (r *Repository) GetAccount(ctx context.Context, accountID int64) (entities.Account, error) {
	var model accountModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", accountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		r.logError("account_get_failed", err, "account_id", accountID)
		return entities.Account{}, err
	}
	return model.toEntity(), nil
}

func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (entities.Account, error) {
	var model accountModel
	err := r.db.WithContext(ctx).First(&model, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		r.logError("account_get_by_email_failed", err, "email", email)
		return entities.Account{}, err
	}
	return model.toEntity(), nil
}

func (r *Repository) SaveAccount(ctx context.Context, account entities.Account) (entities.Account, error) {
	model := fromEntity(account)
	result := r.db.WithContext(ctx).Model(&accountModel{}).Where("id = ?", model.ID).Updates(map[string]any{
		"email":          model.Email,
		"name":           model.Name,
		"password_hash":  model.PasswordHash,
		"phone_number":   model.PhoneNumber,
		"profile_image":  model.ProfileImage,
		"account_type":   model.AccountType,
		"active_account": model.ActiveAccount,
	})
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
		r.logError("account_save_failed", result.Error, "account_id", account.ID)
		return entities.Account{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return account, nil
}

func (r *Repository) logError(event string, err error, args ...any) {
	fields := append([]any{
		"event", event,
		"module", "identity-access/account-service",
		"layer", "adapter_postgres",
		"error", err.Error(),
	}, args...)
	r.logger.Error("account repository operation failed", fields...)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
