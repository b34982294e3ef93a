package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/model/user"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler pages through orders with SQL-side scoping.
//
// Example:
//
//	query, err := NewListOrdersQuery(principal.Actor(), ScopeAvailable, 1, 20)
//	if err != nil {
//	    return err
//	}
//	page, err := handler.Handle(ctx, query)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	// Count and Find each get a fresh chain; gorm statements are not reusable
	// across finishers.
	scoped := func() *gorm.DB {
		return applyScope(h.db.WithContext(ctx).Table("orders"), query)
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	response := ListOrdersQueryResponse{
		Items: make([]OrderView, 0),
		Page:  query.Page(),
		Size:  query.Size(),
		Total: total,
	}
	if total == 0 {
		return response, nil
	}

	var rows []orderRow
	if err := scoped().
		Select(orderColumns).
		Order("created_at DESC, id").
		Offset((query.Page() - 1) * query.Size()).
		Limit(query.Size()).
		Find(&rows).Error; err != nil {
		return ListOrdersQueryResponse{}, err
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	items, err := loadItems(ctx, h.db, ids)
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}

	for _, row := range rows {
		o, oErr := toOrder(row, items[row.ID])
		if oErr != nil {
			return ListOrdersQueryResponse{}, oErr
		}
		response.Items = append(response.Items, newOrderView(o))
	}

	return response, nil
}

func applyScope(db *gorm.DB, query ListOrdersQuery) *gorm.DB {
	actor := query.Actor()

	switch query.Scope() {
	case ScopeMine:
		switch actor.Role {
		case user.Client:
			return db.Where("client_id = ?", actor.ID.Bytes())
		case user.Restaurant:
			return db.Where("restaurant_id = ?", actor.ID.Bytes())
		case user.Courier:
			return db.Where("courier_id = ?", actor.ID.Bytes())
		case user.Admin, user.UnknownRole:
		}
	case ScopeAvailable:
		return db.Where("courier_id IS NULL AND status IN ?", []string{
			order.Created.String(), order.Accepted.String(), order.Prepared.String(),
		})
	case ScopeAll:
		return db
	case UnknownScope:
	}

	// Unreachable for a constructed query; match nothing rather than everything.
	return db.Where("1 = 0")
}
