package ports

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/token"
	"fooddelivery/internal/core/domain/model/user"
)

// TokenCodec signs and checks self-contained, time-bound tokens. Each kind
// uses its own secret. Implementations have no side effects.
type TokenCodec interface {
	// Issue signs a token for subject that expires after lifetime and returns
	// it together with the absolute expiry.
	Issue(kind token.Kind, subject kernel.UUID, role user.Role, lifetime time.Duration) (string, time.Time, error)

	// Verify checks signature and expiry for kind. Any failure yields false.
	Verify(kind token.Kind, value string) bool

	// ExtractSubjectID reads the subject claim. Only meaningful after Verify.
	ExtractSubjectID(value string) (kernel.UUID, error)
}

// PasswordHasher hashes and checks raw passwords.
type PasswordHasher interface {
	Hash(raw string) (string, error)
	Matches(hash, raw string) bool
}
