package tokenrepo

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTokenRepository implements ports.TokenRepository using GORM.
type GormTokenRepository struct {
	db *gorm.DB
}

func NewGormTokenRepository(db *gorm.DB) *GormTokenRepository {
	return &GormTokenRepository{db: db}
}

func (r *GormTokenRepository) Add(ctx context.Context, t *token.Token) error {
	if err := t.Validate(); err != nil {
		return err
	}

	dto := fromDomain(t)
	return r.db.WithContext(ctx).Create(&dto).Error
}

func (r *GormTokenRepository) Exists(ctx context.Context, value string, kind token.Kind) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TokenDTO{}).
		Where("token = ? AND type = ?", value, kind.String()).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormTokenRepository) Get(ctx context.Context, value string, kind token.Kind) (*token.Token, error) {
	var dto TokenDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "token = ? AND type = ?", value, kind.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("token", kind.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes one entry. A missing row means the token was already
// consumed, which the caller must treat as a failed authentication.
func (r *GormTokenRepository) Delete(ctx context.Context, value string, kind token.Kind) error {
	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "token = ? AND type = ?", value, kind.String())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("token", kind.String())
	}
	return nil
}

func (r *GormTokenRepository) DeleteAllByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error) {
	if err := ownerID.Validate(); err != nil {
		return 0, err
	}

	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "user_id = ?", ownerID.Bytes())
	return result.RowsAffected, result.Error
}

func (r *GormTokenRepository) DeleteExpired(ctx context.Context, asOf time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&TokenDTO{}, "expire_at < ?", asOf.UTC())
	return result.RowsAffected, result.Error
}
