//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"inventory-api/internal/config"
	"inventory-api/internal/handler"
	"inventory-api/internal/middleware"
	"inventory-api/internal/model"
	"inventory-api/internal/router"
	"inventory-api/internal/service"
	"inventory-api/internal/storage"
)

// In-memory repositories so the full HTTP stack runs without PostgreSQL.

type memUserRepo struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (r *memUserRepo) Create(_ context.Context, u model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[u.ID] = u
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return model.User{}, model.ErrUserNotFound
	}
	return u, nil
}

func (r *memUserRepo) FindByUsername(_ context.Context, username string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return model.User{}, model.ErrUserNotFound
}

func (r *memUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	_, err := r.FindByUsername(ctx, username)
	return err == nil, nil
}

func (r *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type memProductTypeRepo struct {
	mu       sync.Mutex
	types    map[string]model.ProductType
	products *memProductRepo
}

func (r *memProductTypeRepo) Create(_ context.Context, t model.ProductType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.ID] = t
	return nil
}

func (r *memProductTypeRepo) FindByID(_ context.Context, id string) (model.ProductType, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.types[id]
	if !ok {
		return model.ProductType{}, model.ErrProductTypeNotFound
	}
	return t, nil
}

func (r *memProductTypeRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.ProductTypeSummary, error) {
	owned := r.ownedByCreatedAt(ownerID)

	out := make([]model.ProductTypeSummary, 0, len(owned))
	for _, t := range owned {
		count := 0
		for _, p := range r.products.snapshot() {
			if p.ProductTypeID == t.ID {
				count++
			}
		}
		out = append(out, model.ProductTypeSummary{
			ID:            t.ID,
			Name:          t.Name,
			Description:   t.Description,
			ProductsCount: count,
		})
	}
	return out, nil
}

func (r *memProductTypeRepo) Update(_ context.Context, t model.ProductType) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types[t.ID] = t
	return nil
}

func (r *memProductTypeRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.types, id)
	return nil
}

func (r *memProductTypeRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	return len(r.ownedByCreatedAt(ownerID)), nil
}

func (r *memProductTypeRepo) LastAddedByOwner(_ context.Context, ownerID string, limit int) ([]model.ProductType, error) {
	owned := r.ownedByCreatedAt(ownerID)
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (r *memProductTypeRepo) ownedByCreatedAt(ownerID string) []model.ProductType {
	r.mu.Lock()
	defer r.mu.Unlock()
	var owned []model.ProductType
	for _, t := range r.types {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	return owned
}

type memProductRepo struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func (r *memProductRepo) snapshot() []model.Product {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out
}

func (r *memProductRepo) Create(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) FindByID(_ context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return model.Product{}, model.ErrProductNotFound
	}
	return p, nil
}

func (r *memProductRepo) ListByOwner(_ context.Context, ownerID string) ([]model.ProductSummary, error) {
	owned := r.ownedByCreatedAt(ownerID)
	out := make([]model.ProductSummary, 0, len(owned))
	for _, p := range owned {
		out = append(out, model.ProductSummary{
			ID:           p.ID,
			SerialNumber: p.SerialNumber,
			Name:         p.Name,
			HasSold:      p.HasSold,
			ImagePath:    p.ImagePath,
			Description:  p.Description,
			Quantity:     p.Quantity,
		})
	}
	return out, nil
}

func (r *memProductRepo) Update(_ context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[p.ID] = p
	return nil
}

func (r *memProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *memProductRepo) ExistsBySerialNumber(_ context.Context, serial string, excludeID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.products {
		if p.SerialNumber == serial && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memProductRepo) CountByOwner(_ context.Context, ownerID string) (int, error) {
	return len(r.ownedByCreatedAt(ownerID)), nil
}

func (r *memProductRepo) CountSoldByOwner(_ context.Context, ownerID string) (int, error) {
	count := 0
	for _, p := range r.snapshot() {
		if p.OwnerID == ownerID && p.HasSold {
			count++
		}
	}
	return count, nil
}

func (r *memProductRepo) LastAddedByOwner(_ context.Context, ownerID string, limit int) ([]model.Product, error) {
	owned := r.ownedByCreatedAt(ownerID)
	if len(owned) > limit {
		owned = owned[:limit]
	}
	return owned, nil
}

func (r *memProductRepo) ownedByCreatedAt(ownerID string) []model.Product {
	var owned []model.Product
	for _, p := range r.snapshot() {
		if p.OwnerID == ownerID {
			owned = append(owned, p)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })
	return owned
}

// envelope mirrors the API response shape for assertions.
type envelope struct {
	Status  int                 `json:"status"`
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Data    json.RawMessage     `json:"data"`
	Errors  map[string][]string `json:"errors"`
}

func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	userRepo := &memUserRepo{users: map[string]model.User{}}
	productRepo := &memProductRepo{products: map[string]model.Product{}}
	productTypeRepo := &memProductTypeRepo{types: map[string]model.ProductType{}, products: productRepo}

	tokenService := service.NewTokenService("integration-secret", 2*time.Hour)
	authService := service.NewAuthService(userRepo, tokenService)
	gate := service.NewOwnershipGate()
	productTypeService := service.NewProductTypeService(productTypeRepo, store, gate)
	productService := service.NewProductService(productRepo, productTypeRepo, store, gate)
	dashboardService := service.NewDashboardService(userRepo, productTypeRepo, productRepo)

	cfg := &config.Config{
		ServerPort:       "8080",
		RequestTimeout:   30 * time.Second,
		JWTSecret:        "integration-secret",
		TokenTTL:         2 * time.Hour,
		MaxUploadSize:    8 << 20,
		CORSOrigins:      []string{"*"},
		RateLimitRPM:     1000,
		AuthRateLimitRPM: 1000,
	}

	server := httptest.NewServer(router.New(cfg, middleware.NewAuthMiddleware(tokenService), router.Handlers{
		Auth:        handler.NewAuthHandler(authService, cfg.TokenTTL),
		User:        handler.NewUserHandler(dashboardService),
		ProductType: handler.NewProductTypeHandler(productTypeService, cfg.MaxUploadSize),
		Product:     handler.NewProductHandler(productService, cfg.MaxUploadSize),
		Storage:     handler.NewStorageHandler(store),
	}))
	t.Cleanup(server.Close)

	return server
}

// newClient returns an http.Client with a cookie jar so the session cookie
// set on register/login rides along automatically.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func registerUser(t *testing.T, client *http.Client, baseURL string, username string, email string) {
	t.Helper()

	payload := map[string]string{"username": username, "email": email, "password": "secret123"}
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := client.Post(baseURL+"/api/v1/auth/register", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func parseBody(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed envelope
	require.NoError(t, json.Unmarshal(raw, &parsed), string(raw))
	return parsed
}

// multipartForm builds a form body from string fields, optionally attaching
// an image file.
func multipartForm(t *testing.T, fields map[string]string, imageName string, imageContent []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}

	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		require.NoError(t, err)
		_, err = part.Write(imageContent)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func doForm(t *testing.T, client *http.Client, method string, url string, fields map[string]string) *http.Response {
	t.Helper()

	body, contentType := multipartForm(t, fields, "", nil)
	req, err := http.NewRequest(method, url, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", contentType)

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}

func doJSON(t *testing.T, client *http.Client, method string, url string, payload any) *http.Response {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	require.NoError(t, err)
	return resp
}
