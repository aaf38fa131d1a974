package product

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"despensa/internal/domain"
	apperrors "despensa/internal/errors"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type mockService struct {
	CreateFunc func(ctx context.Context, product domain.Product) (*domain.Product, error)
	ListFunc   func(ctx context.Context) ([]domain.Product, error)
	GetFunc    func(ctx context.Context, id int) (*domain.Product, error)
	UpdateFunc func(ctx context.Context, product domain.Product) (*domain.Product, error)
	DeleteFunc func(ctx context.Context, id int) error
}

func (m *mockService) Create(ctx context.Context, product domain.Product) (*domain.Product, error) {
	return m.CreateFunc(ctx, product)
}

func (m *mockService) List(ctx context.Context) ([]domain.Product, error) {
	return m.ListFunc(ctx)
}

func (m *mockService) Get(ctx context.Context, id int) (*domain.Product, error) {
	return m.GetFunc(ctx, id)
}

func (m *mockService) Update(ctx context.Context, product domain.Product) (*domain.Product, error) {
	return m.UpdateFunc(ctx, product)
}

func (m *mockService) Delete(ctx context.Context, id int) error {
	return m.DeleteFunc(ctx, id)
}

func echoCreate(ctx context.Context, product domain.Product) (*domain.Product, error) {
	product.ID = 1
	return &product, nil
}

func TestHandleCreate_SingleObject(t *testing.T) {
	ctrl := NewController(&mockService{CreateFunc: echoCreate}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/",
		strings.NewReader(`{"name":"orange juice","prices":[{"size_ml":500,"price_in_cents":4500}]}`))
	ctrl.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var dto ProductDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&dto))
	assert.Equal(t, 1, dto.ID)
	assert.Equal(t, "orange juice", dto.Name)
}

func TestHandleCreate_Array(t *testing.T) {
	nextID := 0
	svc := &mockService{
		CreateFunc: func(ctx context.Context, product domain.Product) (*domain.Product, error) {
			nextID++
			product.ID = nextID
			return &product, nil
		},
	}

	ctrl := NewController(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/",
		strings.NewReader(`[{"name":"orange juice"},{"name":"green juice"}]`))
	ctrl.HandleCreate(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var dtos []ProductDTO
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&dtos))
	assert.Len(t, dtos, 2)
	assert.Equal(t, 2, dtos[1].ID)
}

func TestHandleCreate_MissingNameRejected(t *testing.T) {
	ctrl := NewController(&mockService{CreateFunc: echoCreate}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/",
		strings.NewReader(`{"prices":[{"size_ml":500,"price_in_cents":4500}]}`))
	ctrl.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreate_NonPositiveSizeRejected(t *testing.T) {
	ctrl := NewController(&mockService{CreateFunc: echoCreate}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/products/",
		strings.NewReader(`{"name":"orange juice","prices":[{"size_ml":0,"price_in_cents":4500}]}`))
	ctrl.HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestHandleGet_MissingProductIs404(t *testing.T) {
	svc := &mockService{
		GetFunc: func(ctx context.Context, id int) (*domain.Product, error) {
			return nil, apperrors.NewNotFoundError("product with id 7 not found")
		},
	}

	ctrl := NewController(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/products/7", nil), "id", "7")
	ctrl.HandleGet(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleGet_NonNumericIDIs400(t *testing.T) {
	ctrl := NewController(&mockService{}, zap.NewNop())

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodGet, "/products/abc", nil), "id", "abc")
	ctrl.HandleGet(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDelete_NoContent(t *testing.T) {
	svc := &mockService{
		DeleteFunc: func(ctx context.Context, id int) error {
			assert.Equal(t, 3, id)
			return nil
		},
	}

	ctrl := NewController(svc, zap.NewNop())

	rec := httptest.NewRecorder()
	req := withURLParam(httptest.NewRequest(http.MethodDelete, "/products/3", nil), "id", "3")
	ctrl.HandleDelete(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
