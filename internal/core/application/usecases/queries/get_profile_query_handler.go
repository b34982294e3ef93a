package queries

import (
	"context"
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/user"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRow struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Role      string
	CreatedAt time.Time
}

type GetProfileQueryHandler struct {
	db *gorm.DB
}

func NewGetProfileQueryHandler(db *gorm.DB) GetProfileQueryHandler {
	return GetProfileQueryHandler{db: db}
}

func (h GetProfileQueryHandler) Handle(ctx context.Context, query GetProfileQuery) (ProfileView, error) {
	if err := query.Validate(); err != nil {
		return ProfileView{}, err
	}

	var row profileRow
	err := h.db.WithContext(ctx).
		Table("users").
		Select("id, name, email, phone, role, created_at").
		Where("id = ?", query.UserID().Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileView{}, errs.NewObjectNotFoundError("user", query.UserID().String())
	}
	if err != nil {
		return ProfileView{}, err
	}

	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return ProfileView{}, err
	}
	role, err := user.ParseRole(row.Role)
	if err != nil {
		return ProfileView{}, err
	}

	return ProfileView{
		ID:        id,
		Name:      row.Name,
		Email:     row.Email,
		Phone:     row.Phone,
		Role:      role,
		CreatedAt: row.CreatedAt.UTC(),
	}, nil
}
