package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ikkim/foodreview-backend/config"
	"github.com/ikkim/foodreview-backend/internal/app/controller"
	"github.com/ikkim/foodreview-backend/internal/app/repository"
	"github.com/ikkim/foodreview-backend/internal/app/service"
	"github.com/ikkim/foodreview-backend/internal/db"
	"github.com/ikkim/foodreview-backend/internal/middleware"
	"github.com/ikkim/foodreview-backend/internal/session"
	"github.com/ikkim/foodreview-backend/internal/storage"
	"github.com/ikkim/foodreview-backend/pkg/google"
	"github.com/ikkim/foodreview-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testCookieName = "session"

func TestMain(m *testing.M) {
	util.SetBcryptCost(bcrypt.MinCost)
	gin.SetMode(gin.TestMode)
	m.Run()
}

type fakeIdentityProvider struct {
	users map[string]*google.UserInfo
}

func (f *fakeIdentityProvider) UserInfo(ctx context.Context, accessToken string) (*google.UserInfo, error) {
	info, ok := f.users[accessToken]
	if !ok {
		return nil, google.ErrInvalidToken
	}
	return info, nil
}

type fakeImageStorage struct{}

func (fakeImageStorage) PresignUpload(ctx context.Context, filename, contentType, folder string) (*storage.PresignedURLResponse, error) {
	if err := storage.ValidateContentType(contentType, storage.ImageContentTypes); err != nil {
		return nil, err
	}
	key := folder + "/" + filename
	return &storage.PresignedURLResponse{
		UploadURL: "https://uploads.example.com/" + key + "?signed",
		FileURL:   "https://cdn.example.com/" + key,
		Key:       key,
	}, nil
}

func setupRouterTest(t *testing.T) *gin.Engine {
	t.Helper()
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	tm := repository.NewTransactionManager(testDB)
	provider := &fakeIdentityProvider{users: map[string]*google.UserInfo{
		"google-token": {ID: "g-1", Email: "gina@example.com", VerifiedEmail: true, Name: "Gina"},
	}}

	sessions := service.NewSessionService(session.NewCookieStore("test-secret", time.Hour), tm)
	authMiddleware := middleware.NewAuthMiddleware(sessions, middleware.CookieConfig{
		Name:   testCookieName,
		MaxAge: time.Hour,
	})

	userService := service.NewUserService(tm)
	r := NewRouter(
		controller.NewAuthController(service.NewAuthService(tm, provider), userService, authMiddleware),
		controller.NewUserController(userService, authMiddleware),
		controller.NewRestaurantController(service.NewRestaurantService(tm)),
		controller.NewMenuController(service.NewMenuService(tm)),
		controller.NewDishController(service.NewDishService(tm)),
		controller.NewReviewController(service.NewReviewService(tm)),
		controller.NewFavoriteController(service.NewFavoriteService(tm)),
		controller.NewUploadController(fakeImageStorage{}),
		authMiddleware,
		middleware.NewMetrics(),
		cfg,
	)
	return r.Setup()
}

// client keeps the session cookie between requests like a browser would.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(c.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name != testCookieName {
			continue
		}
		if cookie.MaxAge < 0 || cookie.Value == "" {
			c.cookie = nil
		} else {
			c.cookie = cookie
		}
	}
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func id(m map[string]interface{}) uint {
	return uint(m["id"].(float64))
}

func signedIn(t *testing.T, router *gin.Engine, email, username string) (*client, uint) {
	t.Helper()
	c := newClient(t, router)
	w := c.do(http.MethodPost, "/api/v1/auth/signup", map[string]interface{}{
		"email":    email,
		"username": username,
		"password": "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.NotNil(t, c.cookie)
	return c, id(decode(t, w))
}

func TestHealthAndMetrics(t *testing.T) {
	router := setupRouterTest(t)
	c := newClient(t, router)

	w := c.do(http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = c.do(http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "foodreview_http_requests_total")
}

func TestCORS(t *testing.T) {
	router := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/restaurants", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestAuthFlow(t *testing.T) {
	router := setupRouterTest(t)
	c, userID := signedIn(t, router, "alice@example.com", "alice")

	w := c.do(http.MethodGet, "/api/v1/auth/session", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, float64(userID), body["id"])
	assert.Equal(t, "alice", body["username"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "password_hash")
	assert.Equal(t, []interface{}{}, body["restaurants"])
	assert.Equal(t, []interface{}{}, body["reviews"])

	w = c.do(http.MethodDelete, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, c.cookie)

	w = c.do(http.MethodGet, "/api/v1/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tests := []struct {
		name           string
		body           interface{}
		expectedStatus int
	}{
		{name: "Login by username", body: map[string]string{"username": "alice", "password": "secret"}, expectedStatus: http.StatusOK},
		{name: "Login by email", body: map[string]string{"email": "alice@example.com", "password": "secret"}, expectedStatus: http.StatusOK},
		{name: "Login field", body: map[string]string{"login": "alice", "password": "secret"}, expectedStatus: http.StatusOK},
		{name: "Wrong password", body: map[string]string{"username": "alice", "password": "nope"}, expectedStatus: http.StatusUnauthorized},
		{name: "Malformed body", body: "{", expectedStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fresh := newClient(t, router)
			w := fresh.do(http.MethodPost, "/api/v1/auth/login", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			assert.Equal(t, tt.expectedStatus == http.StatusOK, fresh.cookie != nil)
		})
	}
}

func TestSignupValidation(t *testing.T) {
	router := setupRouterTest(t)
	signedIn(t, router, "alice@example.com", "alice")

	tests := []struct {
		name         string
		body         map[string]interface{}
		expectedCode string
	}{
		{name: "Duplicate email", body: map[string]interface{}{"email": "alice@example.com", "password": "x"}, expectedCode: "AUTH_EMAIL_EXISTS"},
		{name: "Duplicate username", body: map[string]interface{}{"email": "a2@example.com", "username": "alice", "password": "x"}, expectedCode: "AUTH_USERNAME_EXISTS"},
		{name: "Invalid email", body: map[string]interface{}{"email": "nope", "password": "x"}, expectedCode: "VALIDATION_INVALID_INPUT"},
		{name: "Missing password", body: map[string]interface{}{"email": "b@example.com"}, expectedCode: "VALIDATION_INVALID_INPUT"},
		{name: "Wrong type", body: map[string]interface{}{"email": 42, "password": "x"}, expectedCode: "VALIDATION_INVALID_INPUT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newClient(t, router).do(http.MethodPost, "/api/v1/auth/signup", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			body := decode(t, w)
			assert.Equal(t, tt.expectedCode, body["error"])
			assert.NotEmpty(t, body["message"])
		})
	}
}

func TestGoogleLogin(t *testing.T) {
	router := setupRouterTest(t)

	c := newClient(t, router)
	w := c.do(http.MethodPost, "/api/v1/auth/google", map[string]string{"access_token": "google-token"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "gina@example.com", body["email"])
	assert.Equal(t, "g-1", body["google_id"])
	assert.NotNil(t, c.cookie)

	w = newClient(t, router).do(http.MethodPost, "/api/v1/auth/google", map[string]string{"access_token": "bad"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = newClient(t, router).do(http.MethodPost, "/api/v1/auth/google", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCatalogFlow(t *testing.T) {
	router := setupRouterTest(t)
	c, _ := signedIn(t, router, "alice@example.com", "alice")
	guest := newClient(t, router)

	w := guest.do(http.MethodPost, "/api/v1/restaurants", map[string]string{"name": "Noodle Bar"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = c.do(http.MethodPost, "/api/v1/restaurants", map[string]interface{}{"name": "Noodle Bar", "rating": 4.5})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurant := decode(t, w)
	restaurantID := id(restaurant)
	assert.Equal(t, []interface{}{}, restaurant["menus"])
	assert.Equal(t, []interface{}{}, restaurant["favorited_by"])

	w = c.do(http.MethodPost, "/api/v1/restaurants", map[string]interface{}{"name": "Bad", "rating": 7})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = c.do(http.MethodPost, "/api/v1/menus", map[string]interface{}{"name": "Lunch", "restaurant_id": restaurantID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menuID := id(decode(t, w))

	w = c.do(http.MethodPost, "/api/v1/menus", map[string]interface{}{"name": "Ghost", "restaurant_id": 9999})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "RESOURCE_CONSTRAINT", decode(t, w)["error"])

	w = c.do(http.MethodPost, "/api/v1/dishes", map[string]interface{}{"name": "Ramen", "price": 12.999})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	dish := decode(t, w)
	dishID := id(dish)
	assert.Equal(t, 13.0, dish["price"])

	path := fmt.Sprintf("/api/v1/menus/%d/dishes", menuID)
	w = c.do(http.MethodPost, path, map[string]interface{}{"dish_id": dishID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	link := decode(t, w)
	assert.Equal(t, float64(dishID), link["dish_id"])
	assert.NotNil(t, link["dish"])
	assert.NotNil(t, link["menu"])

	w = c.do(http.MethodPost, path, map[string]interface{}{"dish_id": dishID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "DISH_ALREADY_ON_MENU", decode(t, w)["error"])

	w = c.do(http.MethodPost, "/api/v1/menus/9999/dishes", map[string]interface{}{"dish_id": dishID})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = guest.do(http.MethodGet, fmt.Sprintf("/api/v1/menus?restaurant_id=%d", restaurantID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	menus := decodeList(t, w)
	require.Len(t, menus, 1)
	dishes := menus[0]["dishes"].([]interface{})
	require.Len(t, dishes, 1)
	assert.Equal(t, "Ramen", dishes[0].(map[string]interface{})["name"])

	w = guest.do(http.MethodGet, "/api/v1/menus?restaurant_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = guest.do(http.MethodGet, fmt.Sprintf("/api/v1/dishes/%d", dishID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	links := decode(t, w)["menu_dishes"].([]interface{})
	require.Len(t, links, 1)

	w = c.do(http.MethodPatch, fmt.Sprintf("/api/v1/restaurants/%d", restaurantID), map[string]interface{}{"rating": nil})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, decode(t, w)["rating"])

	w = c.do(http.MethodDelete, fmt.Sprintf("/api/v1/menus/%d/dishes/%d", menuID, dishID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = c.do(http.MethodDelete, fmt.Sprintf("/api/v1/restaurants/%d", restaurantID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = guest.do(http.MethodGet, fmt.Sprintf("/api/v1/menus/%d", menuID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = guest.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d", restaurantID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = guest.do(http.MethodGet, "/api/v1/restaurants/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReviewsAndFavorites(t *testing.T) {
	router := setupRouterTest(t)
	alice, aliceID := signedIn(t, router, "alice@example.com", "alice")
	bob, _ := signedIn(t, router, "bob@example.com", "bob")

	w := alice.do(http.MethodPost, "/api/v1/restaurants", map[string]string{"name": "Noodle Bar"})
	require.Equal(t, http.StatusCreated, w.Code)
	restaurantID := id(decode(t, w))

	w = alice.do(http.MethodPost, "/api/v1/reviews", map[string]interface{}{
		"content": "Great broth", "rating": 5, "restaurant_id": restaurantID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	review := decode(t, w)
	reviewID := id(review)
	assert.Equal(t, float64(aliceID), review["user_id"])
	assert.Equal(t, "alice", review["user"].(map[string]interface{})["username"])

	w = bob.do(http.MethodPatch, fmt.Sprintf("/api/v1/reviews/%d", reviewID), map[string]string{"content": "mine"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = alice.do(http.MethodPatch, fmt.Sprintf("/api/v1/reviews/%d", reviewID), map[string]string{"content": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = alice.do(http.MethodPost, "/api/v1/favorites", map[string]interface{}{"restaurant_id": restaurantID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = alice.do(http.MethodPost, "/api/v1/favorites", map[string]interface{}{"restaurant_id": restaurantID})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "FAVORITE_ALREADY_EXISTS", decode(t, w)["error"])

	w = alice.do(http.MethodGet, fmt.Sprintf("/api/v1/restaurants/%d", restaurantID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	full := decode(t, w)
	assert.Equal(t, []interface{}{"alice"}, full["favorited_by"])
	assert.Len(t, full["reviews"], 1)

	w = alice.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", aliceID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)
	assert.Len(t, user["restaurants"], 1)
	assert.Len(t, user["reviews"], 1)

	w = alice.do(http.MethodGet, "/api/v1/favorites", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 1)

	w = alice.do(http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", restaurantID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = alice.do(http.MethodDelete, fmt.Sprintf("/api/v1/favorites/%d", restaurantID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = bob.do(http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%d", reviewID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = alice.do(http.MethodDelete, fmt.Sprintf("/api/v1/reviews/%d", reviewID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = alice.do(http.MethodGet, fmt.Sprintf("/api/v1/reviews/%d", reviewID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserEndpoints(t *testing.T) {
	router := setupRouterTest(t)
	alice, aliceID := signedIn(t, router, "alice@example.com", "alice")
	bob, bobID := signedIn(t, router, "bob@example.com", "bob")

	w := alice.do(http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decodeList(t, w)
	require.Len(t, users, 2)
	assert.NotContains(t, users[0], "reviews")

	w = bob.do(http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), map[string]string{"username": "x"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = alice.do(http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), map[string]string{"newPassword": "changed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTH_PASSWORD_MISMATCH", decode(t, w)["error"])

	w = alice.do(http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), map[string]string{
		"currentPassword": "secret",
		"newPassword":     "changed",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = alice.do(http.MethodPatch, fmt.Sprintf("/api/v1/users/%d", aliceID), map[string]string{"email": "bob@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "AUTH_EMAIL_EXISTS", decode(t, w)["error"])

	w = alice.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", bobID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = bob.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", bobID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Nil(t, bob.cookie)

	w = alice.do(http.MethodGet, fmt.Sprintf("/api/v1/users/%d", bobID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStaleSessionIsCleared(t *testing.T) {
	router := setupRouterTest(t)
	alice, aliceID := signedIn(t, router, "alice@example.com", "alice")
	stolen := *alice.cookie

	w := alice.do(http.MethodDelete, fmt.Sprintf("/api/v1/users/%d", aliceID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	replay := newClient(t, router)
	replay.cookie = &stolen
	w = replay.do(http.MethodGet, "/api/v1/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "AUTH_SESSION_EXPIRED", decode(t, w)["error"])
	assert.Nil(t, replay.cookie)
}

func TestUploadPresignedURL(t *testing.T) {
	router := setupRouterTest(t)
	c, _ := signedIn(t, router, "alice@example.com", "alice")

	w := c.do(http.MethodPost, "/api/v1/uploads/presigned-url", map[string]string{
		"filename": "front.jpg", "content_type": "image/jpeg",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "restaurants/front.jpg", decode(t, w)["key"])

	w = c.do(http.MethodPost, "/api/v1/uploads/presigned-url", map[string]string{
		"filename": "notes.pdf", "content_type": "application/pdf",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UPLOAD_INVALID_FILE_TYPE", decode(t, w)["error"])

	w = c.do(http.MethodPost, "/api/v1/uploads/presigned-url", map[string]string{"filename": "x.png"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = newClient(t, router).do(http.MethodPost, "/api/v1/uploads/presigned-url", map[string]string{
		"filename": "front.jpg", "content_type": "image/jpeg",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
