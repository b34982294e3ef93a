package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu items.
type MenuRepository interface {
	Add(ctx context.Context, item *menu.MenuItem) error
	Update(ctx context.Context, item *menu.MenuItem) error
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a menu item, or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*menu.MenuItem, error)

	// GetMany retrieves the items with the given ids. Unknown ids are skipped,
	// callers compare lengths to detect them.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*menu.MenuItem, error)
}
