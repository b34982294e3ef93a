package http

import (
	"time"

	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/token"

	"github.com/google/uuid"
)

// Request bodies. Tags drive the first validation pass; domain constructors
// apply the business rules afterwards.

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=320"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role" validate:"required"`
	Name     string `json:"name" validate:"required,max=255"`
	Phone    string `json:"phone" validate:"required,max=32"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type ProfileRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=320"`
	Phone string `json:"phone" validate:"required,max=32"`
}

type MenuItemRequest struct {
	Title       string  `json:"title" validate:"required,max=255"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type OrderLineRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gte=1,lte=1000"`
}

type CreateOrderRequest struct {
	RestaurantID    uuid.UUID          `json:"restaurantId" validate:"required"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required,max=512"`
	Items           []OrderLineRequest `json:"items" validate:"required,min=1,dive"`
}

// OverrideOrderRequest leaves absent fields untouched.
type OverrideOrderRequest struct {
	Status          *string    `json:"status"`
	TotalPrice      *float64   `json:"totalPrice" validate:"omitempty,gte=0"`
	CourierID       *uuid.UUID `json:"courierId"`
	UnassignCourier bool       `json:"unassignCourier"`
}

// Responses.

type TokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

func newTokenPairResponse(pair token.Pair) TokenPairResponse {
	return TokenPairResponse{AccessToken: pair.Access.Value(), RefreshToken: pair.Refresh.Value()}
}

type ProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newProfileResponse(p queries.ProfileView) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.Bytes(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      p.Role.String(),
		CreatedAt: p.CreatedAt,
	}
}

type MenuItemResponse struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurantId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Price        float64   `json:"price"`
}

func newMenuItemResponse(item queries.MenuItemView) MenuItemResponse {
	return MenuItemResponse{
		ID:           item.ID.Bytes(),
		RestaurantID: item.RestaurantID.Bytes(),
		Title:        item.Title,
		Description:  item.Description,
		Price:        item.Price.Decimal(),
	}
}

type OrderItemResponse struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Title      string    `json:"title"`
	Quantity   int       `json:"quantity"`
	ItemPrice  float64   `json:"itemPrice"`
}

type OrderResponse struct {
	ID              uuid.UUID           `json:"id"`
	ClientID        uuid.UUID           `json:"clientId"`
	RestaurantID    uuid.UUID           `json:"restaurantId"`
	CourierID       *uuid.UUID          `json:"courierId"`
	DeliveryAddress string              `json:"deliveryAddress"`
	Status          string              `json:"status"`
	TotalPrice      float64             `json:"totalPrice"`
	CreatedAt       time.Time           `json:"createdAt"`
	Items           []OrderItemResponse `json:"items"`
}

func newOrderResponse(o queries.OrderView) OrderResponse {
	response := OrderResponse{
		ID:              o.ID.Bytes(),
		ClientID:        o.ClientID.Bytes(),
		RestaurantID:    o.RestaurantID.Bytes(),
		DeliveryAddress: o.DeliveryAddress,
		Status:          o.Status.String(),
		TotalPrice:      o.TotalPrice.Decimal(),
		CreatedAt:       o.CreatedAt,
		Items:           make([]OrderItemResponse, 0, len(o.Items)),
	}
	if o.CourierID != nil {
		courierID := o.CourierID.Bytes()
		response.CourierID = &courierID
	}
	for _, item := range o.Items {
		response.Items = append(response.Items, OrderItemResponse{
			MenuItemID: item.MenuItemID.Bytes(),
			Title:      item.Title,
			Quantity:   item.Quantity,
			ItemPrice:  item.Price.Decimal(),
		})
	}
	return response
}

type OrderPageResponse struct {
	Items []OrderResponse `json:"items"`
	Page  int             `json:"page"`
	Size  int             `json:"size"`
	Total int64           `json:"total"`
}

func newOrderPageResponse(page queries.ListOrdersQueryResponse) OrderPageResponse {
	response := OrderPageResponse{
		Items: make([]OrderResponse, 0, len(page.Items)),
		Page:  page.Page,
		Size:  page.Size,
		Total: page.Total,
	}
	for _, o := range page.Items {
		response.Items = append(response.Items, newOrderResponse(o))
	}
	return response
}
