package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/pkg/logger"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const adminPassword = "admin-password"

type api struct {
	t *testing.T
	e *echo.Echo
}

// newAPI wires the whole application on a private in-memory SQLite database.
func newAPI(t *testing.T) api {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// every connection to ":memory:" is a separate database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, postgres.Migrate(db))

	cfg := Config{
		AccessTokenSecret:           "access-secret",
		RefreshTokenSecret:          "refresh-secret",
		AccessTokenLifetimeSeconds:  900,
		RefreshTokenLifetimeSeconds: 3600,
		PasswordHashCost:            4,
		AdminEmail:                  "admin@example.com",
		AdminPassword:               adminPassword,
		AdminPhone:                  "+10000000000",
		AdminName:                   "Admin",
	}
	require.NoError(t, cfg.Validate())

	app, err := NewCompositionRoot(cfg, db, logger.NewWithWriter("test", "error", io.Discard))
	require.NoError(t, err)
	require.NoError(t, app.EnsureAdmin(t.Context()))
	require.NoError(t, app.EnsureAdmin(t.Context()))

	return api{t: t, e: app.NewEcho()}
}

func (a api) call(method, path, accessToken string, body any) *httptest.ResponseRecorder {
	a.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, httpin.APIPrefix+path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if accessToken != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessToken)
	}

	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func (a api) login(email, password string) httpin.TokenPairResponse {
	a.t.Helper()
	rec := a.call(http.MethodPost, "/auth/login", "", httpin.LoginRequest{Email: email, Password: password})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[httpin.TokenPairResponse](a.t, rec)
}

// signUp registers a user and logs in, returning the profile and an access token.
func (a api) signUp(name, role string) (httpin.ProfileResponse, string) {
	a.t.Helper()
	email := name + "@example.com"
	rec := a.call(http.MethodPost, "/auth/register", "", httpin.RegisterRequest{
		Email:    email,
		Password: "password-" + name,
		Role:     role,
		Name:     name,
		Phone:    "+1 555 " + name,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())

	return decode[httpin.ProfileResponse](a.t, rec), a.login(email, "password-"+name).AccessToken
}

func (a api) addMenuItem(restaurantToken, title string, price float64) httpin.MenuItemResponse {
	a.t.Helper()
	rec := a.call(http.MethodPost, "/restaurant/menu", restaurantToken, httpin.MenuItemRequest{Title: title, Price: price})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.MenuItemResponse](a.t, rec)
}

func (a api) placeOrder(clientToken string, restaurantID uuid.UUID, lines ...httpin.OrderLineRequest) httpin.OrderResponse {
	a.t.Helper()
	rec := a.call(http.MethodPost, "/client/orders", clientToken, httpin.CreateOrderRequest{
		RestaurantID:    restaurantID,
		DeliveryAddress: "1 Main St",
		Items:           lines,
	})
	require.Equal(a.t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[httpin.OrderResponse](a.t, rec)
}

func (a api) expectStatus(want int, method, path, token string) httpin.OrderResponse {
	a.t.Helper()
	rec := a.call(method, path, token, nil)
	require.Equal(a.t, want, rec.Code, rec.Body.String())
	if want != http.StatusOK {
		return httpin.OrderResponse{}
	}
	return decode[httpin.OrderResponse](a.t, rec)
}

func TestOrderLifecycle(t *testing.T) {
	a := newAPI(t)

	_, clientToken := a.signUp("client", "CLIENT")
	restaurant, restaurantToken := a.signUp("restaurant", "RESTAURANT")
	courierA, courierAToken := a.signUp("courierA", "COURIER")
	_, courierBToken := a.signUp("courierB", "COURIER")

	pizza := a.addMenuItem(restaurantToken, "Pizza", 200)
	soup := a.addMenuItem(restaurantToken, "Soup", 50)

	created := a.placeOrder(clientToken, restaurant.ID,
		httpin.OrderLineRequest{MenuItemID: pizza.ID, Quantity: 1},
		httpin.OrderLineRequest{MenuItemID: soup.ID, Quantity: 2},
	)
	assert.Equal(t, "CREATED", created.Status)
	assert.Nil(t, created.CourierID)
	assert.InDelta(t, 300.00, created.TotalPrice, 0.001)
	require.Len(t, created.Items, 2)

	orderPath := "/orders/" + created.ID.String()

	accepted := a.expectStatus(http.StatusOK, http.MethodPost, "/restaurant"+orderPath+"/accept", restaurantToken)
	assert.Equal(t, "ACCEPTED", accepted.Status)

	prepared := a.expectStatus(http.StatusOK, http.MethodPost, "/restaurant"+orderPath+"/prepare", restaurantToken)
	assert.Equal(t, "PREPARED", prepared.Status)

	taken := a.expectStatus(http.StatusOK, http.MethodPost, "/courier"+orderPath+"/accept", courierAToken)
	require.NotNil(t, taken.CourierID)
	assert.Equal(t, courierA.ID, *taken.CourierID)
	assert.Equal(t, "PREPARED", taken.Status)

	a.expectStatus(http.StatusConflict, http.MethodPost, "/courier"+orderPath+"/accept", courierBToken)
	a.expectStatus(http.StatusForbidden, http.MethodPost, "/courier"+orderPath+"/pick-up", courierBToken)

	delivering := a.expectStatus(http.StatusOK, http.MethodPost, "/courier"+orderPath+"/pick-up", courierAToken)
	assert.Equal(t, "DELIVERING", delivering.Status)

	completed := a.expectStatus(http.StatusOK, http.MethodPost, "/courier"+orderPath+"/deliver", courierAToken)
	assert.Equal(t, "COMPLETED", completed.Status)

	a.expectStatus(http.StatusConflict, http.MethodPost, "/restaurant"+orderPath+"/accept", restaurantToken)
	a.expectStatus(http.StatusConflict, http.MethodPost, "/restaurant"+orderPath+"/prepare", restaurantToken)
	a.expectStatus(http.StatusConflict, http.MethodPost, "/courier"+orderPath+"/accept", courierBToken)
	a.expectStatus(http.StatusConflict, http.MethodPost, "/courier"+orderPath+"/pick-up", courierAToken)
	a.expectStatus(http.StatusConflict, http.MethodPost, "/courier"+orderPath+"/deliver", courierAToken)
	a.expectStatus(http.StatusConflict, http.MethodDelete, "/client"+orderPath, clientToken)

	adminToken := a.login("admin@example.com", adminPassword).AccessToken
	rec := a.call(http.MethodDelete, "/admin"+orderPath, adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	history := decode[httpin.OrderPageResponse](t, a.call(http.MethodGet, "/courier/orders", courierAToken, nil))
	assert.Equal(t, int64(1), history.Total)
}

func TestClientDelete(t *testing.T) {
	a := newAPI(t)

	_, clientToken := a.signUp("client", "CLIENT")
	restaurant, restaurantToken := a.signUp("restaurant", "RESTAURANT")
	_, otherToken := a.signUp("other", "CLIENT")
	pizza := a.addMenuItem(restaurantToken, "Pizza", 12.5)
	line := httpin.OrderLineRequest{MenuItemID: pizza.ID, Quantity: 1}

	fresh := a.placeOrder(clientToken, restaurant.ID, line)
	a.expectStatus(http.StatusForbidden, http.MethodDelete, "/client/orders/"+fresh.ID.String(), otherToken)
	deleted := a.expectStatus(http.StatusOK, http.MethodDelete, "/client/orders/"+fresh.ID.String(), clientToken)
	assert.Equal(t, "DELETED", deleted.Status)

	accepted := a.placeOrder(clientToken, restaurant.ID, line)
	a.expectStatus(http.StatusOK, http.MethodPost, "/restaurant/orders/"+accepted.ID.String()+"/accept", restaurantToken)
	a.expectStatus(http.StatusConflict, http.MethodDelete, "/client/orders/"+accepted.ID.String(), clientToken)

	page := decode[httpin.OrderPageResponse](t, a.call(http.MethodGet, "/client/orders?page=1&size=1", clientToken, nil))
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, accepted.ID, page.Items[0].ID)
}

func TestAdminOverride(t *testing.T) {
	a := newAPI(t)

	_, clientToken := a.signUp("client", "CLIENT")
	restaurant, restaurantToken := a.signUp("restaurant", "RESTAURANT")
	courier, courierToken := a.signUp("courier", "COURIER")
	pizza := a.addMenuItem(restaurantToken, "Pizza", 10)
	placed := a.placeOrder(clientToken, restaurant.ID, httpin.OrderLineRequest{MenuItemID: pizza.ID, Quantity: 3})

	adminToken := a.login("admin@example.com", adminPassword).AccessToken
	status := "DELIVERING"
	price := 25.0
	rec := a.call(http.MethodPatch, "/admin/orders/"+placed.ID.String(), adminToken, httpin.OverrideOrderRequest{
		Status:     &status,
		TotalPrice: &price,
		CourierID:  &courier.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	patched := decode[httpin.OrderResponse](t, rec)
	assert.Equal(t, "DELIVERING", patched.Status)
	assert.InDelta(t, 25.0, patched.TotalPrice, 0.001)

	a.expectStatus(http.StatusOK, http.MethodGet, "/courier/orders/"+placed.ID.String(), courierToken)
	a.expectStatus(http.StatusForbidden, http.MethodPatch, "/admin/orders/"+placed.ID.String(), clientToken)

	all := decode[httpin.OrderPageResponse](t, a.call(http.MethodGet, "/admin/orders", adminToken, nil))
	assert.Equal(t, int64(1), all.Total)
}

func TestSessionLifecycle(t *testing.T) {
	a := newAPI(t)

	profile, _ := a.signUp("carol", "CLIENT")
	pair := a.login("carol@example.com", "password-carol")

	rec := a.call(http.MethodGet, "/users/me", pair.AccessToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, profile.ID, decode[httpin.ProfileResponse](t, rec).ID)

	rec = a.call(http.MethodPost, "/auth/refresh", "", httpin.RefreshRequest{RefreshToken: pair.RefreshToken})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rotated := decode[httpin.TokenPairResponse](t, rec)
	assert.NotEqual(t, pair.RefreshToken, rotated.RefreshToken)

	rec = a.call(http.MethodPost, "/auth/refresh", "", httpin.RefreshRequest{RefreshToken: pair.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.call(http.MethodPost, "/auth/refresh", "", httpin.RefreshRequest{RefreshToken: rotated.AccessToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	assert.Equal(t, http.StatusNoContent, a.call(http.MethodPost, "/auth/logout", rotated.AccessToken, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, a.call(http.MethodGet, "/users/me", rotated.AccessToken, nil).Code)
	assert.Equal(t, http.StatusUnauthorized, a.call(http.MethodGet, "/users/me", pair.AccessToken, nil).Code)

	rec = a.call(http.MethodPost, "/auth/refresh", "", httpin.RefreshRequest{RefreshToken: rotated.RefreshToken})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = a.call(http.MethodPost, "/auth/login", "", httpin.LoginRequest{Email: "carol@example.com", Password: "wrong-password"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication required")
}

func TestRegistrationRejections(t *testing.T) {
	a := newAPI(t)
	a.signUp("dave", "CLIENT")

	rec := a.call(http.MethodPost, "/auth/register", "", httpin.RegisterRequest{
		Email: "dave@example.com", Password: "password-x", Role: "CLIENT", Name: "Dave 2", Phone: "+19999999999",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = a.call(http.MethodPost, "/auth/register", "", httpin.RegisterRequest{
		Email: "root@example.com", Password: "password-x", Role: "ADMIN", Name: "Root", Phone: "+18888888888",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = a.call(http.MethodPost, "/auth/register", "", httpin.RegisterRequest{Email: "not-an-email", Password: "short"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEmpty(t, decode[httpin.ErrorResponse](t, rec).Violations)
}
