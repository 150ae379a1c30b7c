package wire

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"agro-marketplace/internal/data/entity"
	"agro-marketplace/internal/data/repository"
	"agro-marketplace/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// ==================== in-memory repositories ====================

type memUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*entity.User
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return repository.ErrDuplicateEmail
		}
	}
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[id], nil
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memBanners struct{ banners []*entity.Banner }

func (m *memBanners) FindActive(context.Context) ([]*entity.Banner, error) {
	var out []*entity.Banner
	for _, b := range m.banners {
		if b.IsActive {
			out = append(out, b)
		}
	}
	return out, nil
}

type memCrops struct{ crops []*entity.Crop }

func (m *memCrops) FindAll(context.Context) ([]*entity.Crop, error) { return m.crops, nil }

type memImages struct{ images map[primitive.ObjectID]*entity.Image }

func (m *memImages) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Image, error) {
	return m.images[id], nil
}

type memNotifications struct{ saved []*entity.Notification }

func (m *memNotifications) CreateMany(_ context.Context, ns []*entity.Notification) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, len(ns))
	for i, n := range ns {
		n.ID = primitive.NewObjectID()
		ids[i] = n.ID
	}
	m.saved = append(m.saved, ns...)
	return ids, nil
}

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// ==================== harness ====================

type harness struct {
	server        *httptest.Server
	users         *memUsers
	notifications *memNotifications
	images        *memImages
	uploads       string
}

func newHarness(t *testing.T, pinger Pinger) *harness {
	t.Helper()

	h := &harness{
		users:         &memUsers{users: map[primitive.ObjectID]*entity.User{}},
		notifications: &memNotifications{},
		images:        &memImages{images: map[primitive.ObjectID]*entity.Image{}},
		uploads:       t.TempDir(),
	}

	repo := &repository.Repository{
		User: h.users,
		Banner: &memBanners{banners: []*entity.Banner{
			{ID: "b1", Title: "Fresh tomatoes", ImageURL: "/uploads/t.jpg", TargetURL: "/p/1", IsActive: true},
			{ID: "b2", Title: "Expired", IsActive: false},
		}},
		Crop:         &memCrops{},
		Image:        h.images,
		Notification: h.notifications,
	}

	config := &utils.Config{
		App:  utils.AppConfig{Name: "test", UploadsDir: h.uploads},
		JWT:  utils.JWTConfig{Secret: "wire-secret", Expiry: time.Hour},
		CORS: utils.CORSConfig{AllowedOrigins: []string{"http://localhost:19006"}},
	}

	app := Wiring(repo, pinger, config, zap.NewNop())
	h.server = httptest.NewServer(app.Router)
	t.Cleanup(h.server.Close)
	return h
}

func (h *harness) do(t *testing.T, method, path string, body any, token string) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, h.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]any
	json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

// ==================== tests ====================

func TestAuthFlow(t *testing.T) {
	h := newHarness(t, stubPinger{})

	registration := map[string]any{
		"email":    "grower@example.com",
		"password": "pa55word",
		"name":     "Kofi",
		"phone":    "0244000000",
	}

	resp, body := h.do(t, http.MethodPost, "/api/auth/register", registration, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "success", body["status"])
	userID, _ := body["user_id"].(string)
	require.NotEmpty(t, userID)
	user := body["user"].(map[string]any)
	assert.Equal(t, "grower@example.com", user["email"])
	assert.Equal(t, "", user["address"])
	assert.NotContains(t, user, "password")

	resp, body = h.do(t, http.MethodPost, "/api/auth/register", registration, "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Email already registered", body["message"])
	assert.Len(t, h.users.users, 1)

	resp, _ = h.do(t, http.MethodPost, "/api/auth/login", map[string]any{"email": "grower@example.com", "password": "bad"}, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, body = h.do(t, http.MethodPost, "/api/auth/login", map[string]any{"email": "grower@example.com", "password": "pa55word"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["access_token"].(string)
	require.NotEmpty(t, token)

	claims, err := utils.ParseAccessToken(token, []byte("wire-secret"))
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID())
	assert.Equal(t, "grower@example.com", claims.Email)

	resp, body = h.do(t, http.MethodGet, "/api/auth/me", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	me := body["user"].(map[string]any)
	assert.Equal(t, userID, me["id"])
	assert.Equal(t, "Kofi", me["name"])

	resp, _ = h.do(t, http.MethodGet, "/api/auth/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// token for a user that no longer exists
	ghost, err := utils.GenerateAccessToken(primitive.NewObjectID().Hex(), "ghost@example.com", []byte("wire-secret"), time.Hour)
	require.NoError(t, err)
	resp, _ = h.do(t, http.MethodGet, "/api/auth/me", nil, ghost)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestRegisteredUserCanCheckout(t *testing.T) {
	h := newHarness(t, stubPinger{})

	resp, _ := h.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "buyer@example.com",
		"password": "s3cret",
		"name":     "Esi",
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := h.do(t, http.MethodPost, "/api/auth/login", map[string]any{"email": "buyer@example.com", "password": "s3cret"}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	user := body["user"].(map[string]any)
	buyerID, _ := user["id"].(string)
	require.True(t, primitive.IsValidObjectID(buyerID), "user id %q", buyerID)

	resp, body = h.do(t, http.MethodPost, "/api/checkout", map[string]any{
		"items":   []map[string]any{{"name": "Cassava", "quantity": 2, "price": 7.5, "toUserID": "seller-9"}},
		"buyerId": buyerID,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode, "body %v", body)
	assert.Len(t, body["notificationIds"], 1)

	require.Len(t, h.notifications.saved, 1)
	assert.Equal(t, buyerID, h.notifications.saved[0].BuyerID.Hex())
	assert.Equal(t, 15.0, h.notifications.saved[0].TotalPrice)
}

func TestRegister_RejectsMarkup(t *testing.T) {
	h := newHarness(t, stubPinger{})

	resp, body := h.do(t, http.MethodPost, "/api/auth/register", map[string]any{
		"email":    "tag@example.com",
		"password": "pw",
		"name":     "<Kofi>",
	}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]any{"Name": "Must not contain markup"}, body["errors"])
	assert.Empty(t, h.users.users)
}

func TestRegister_BadInput(t *testing.T) {
	h := newHarness(t, stubPinger{})

	resp, body := h.do(t, http.MethodPost, "/api/auth/register", map[string]any{"email": "x@example.com"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["errors"], "Password")

	req, err := http.NewRequest(http.MethodPost, h.server.URL+"/api/auth/register", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	raw, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	raw.Body.Close()
	assert.Equal(t, http.StatusBadRequest, raw.StatusCode)
}

func TestCatalogRoutes(t *testing.T) {
	h := newHarness(t, stubPinger{})

	res, err := http.Get(h.server.URL + "/api/banners")
	require.NoError(t, err)
	var banners []map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&banners))
	res.Body.Close()
	require.Len(t, banners, 1)
	assert.Equal(t, "b1", banners[0]["id"])
	assert.Equal(t, "/uploads/t.jpg", banners[0]["imageUrl"])
	assert.Equal(t, "/p/1", banners[0]["targetUrl"])

	resp, body := h.do(t, http.MethodGet, "/api/products", nil, "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, []any{}, body["data"])
}

func TestImageRoute(t *testing.T) {
	h := newHarness(t, stubPinger{})

	payload := []byte("GIF89a-ish bytes")
	id := primitive.NewObjectID()
	h.images.images[id] = &entity.Image{
		ID:         id.Hex(),
		Encoded:    "data:image/gif;base64," + base64.StdEncoding.EncodeToString(payload),
		HasEncoded: true,
	}

	res, err := http.Get(h.server.URL + "/api/images/" + id.Hex())
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "image/gif", res.Header.Get("Content-Type"))
	var buf bytes.Buffer
	buf.ReadFrom(res.Body)
	assert.Equal(t, payload, buf.Bytes())

	resp, body := h.do(t, http.MethodGet, "/api/images/xyz", nil, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid image ID format", body["message"])

	resp, _ = h.do(t, http.MethodGet, "/api/images/"+primitive.NewObjectID().Hex(), nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCheckoutRoute(t *testing.T) {
	h := newHarness(t, stubPinger{})
	buyer := primitive.NewObjectID().Hex()

	resp, body := h.do(t, http.MethodPost, "/api/checkout", map[string]any{
		"items":   []map[string]any{{"name": "Wheat", "quantity": 3, "price": 10, "toUserID": "seller-1"}},
		"buyerId": buyer,
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["notificationIds"], 1)

	require.Len(t, h.notifications.saved, 1)
	assert.Equal(t, 30.0, h.notifications.saved[0].TotalPrice)
	assert.Equal(t, "seller-1", h.notifications.saved[0].ToUserID)
	assert.Equal(t, entity.NotificationPending, h.notifications.saved[0].Status)

	resp, _ = h.do(t, http.MethodPost, "/api/checkout", map[string]any{"buyerId": buyer}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Len(t, h.notifications.saved, 1)
}

func TestUploadsRoute(t *testing.T) {
	h := newHarness(t, stubPinger{})
	require.NoError(t, os.WriteFile(filepath.Join(h.uploads, "banner.txt"), []byte("banner"), 0o644))

	res, err := http.Get(h.server.URL + "/uploads/banner.txt")
	require.NoError(t, err)
	var buf bytes.Buffer
	buf.ReadFrom(res.Body)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "banner", buf.String())

	require.NoError(t, os.Mkdir(filepath.Join(h.uploads, "banners"), 0o755))

	for _, path := range []string{"/uploads/missing.png", "/uploads/banners", "/uploads/"} {
		resp, body := h.do(t, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
		assert.Equal(t, "File not found", body["message"], path)
	}
}

func TestHealthRoutes(t *testing.T) {
	h := newHarness(t, stubPinger{})

	res, err := http.Get(h.server.URL + "/health")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, utils.IsUUID(res.Header.Get("X-Request-ID")))

	res, err = http.Get(h.server.URL + "/health/db")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, err = http.Get(h.server.URL + "/metrics")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	down := newHarness(t, stubPinger{err: errors.New("ai store: server selection timeout")})
	res, err = http.Get(down.server.URL + "/health/db")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}
