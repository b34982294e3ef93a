// Package tokenrepo stores the allow-list of issued tokens.
package tokenrepo

import (
	"time"

	"fooddelivery/internal/adapters/out/postgres/userrepo"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"

	"github.com/google/uuid"
)

// TokenDTO is keyed by (token, type) so an access and a refresh token with the
// same text could never shadow each other. Rows go away with their user.
type TokenDTO struct {
	Token    string            `gorm:"type:text;primaryKey"`
	Type     string            `gorm:"type:varchar(16);primaryKey"`
	UserID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	User     *userrepo.UserDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ExpireAt time.Time         `gorm:"not null;index"`
}

func (TokenDTO) TableName() string {
	return "auth_tokens"
}

func fromDomain(t *token.Token) TokenDTO {
	return TokenDTO{
		Token:    t.Value(),
		Type:     t.Kind().String(),
		UserID:   t.OwnerID().Bytes(),
		ExpireAt: t.ExpireAt(),
	}
}

func toDomain(dto TokenDTO) (*token.Token, error) {
	kind, err := token.ParseKind(dto.Type)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return token.NewToken(dto.Token, kind, ownerID, dto.ExpireAt)
}
