package services

import (
	"context"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/dmikhr/stylecart/internal/logging"
)

// fakeAPI implements api.Client for service unit tests. Behavior is
// configured per call via the function fields; nil fields make the call a
// no-op success.
type fakeAPI struct {
	healthzFn        func(ctx context.Context) error
	registerFn       func(ctx context.Context, email, password string) error
	loginFn          func(ctx context.Context, email, password string) (string, error)
	meFn             func(ctx context.Context, token string) (*models.Identity, error)
	listCategoriesFn func(ctx context.Context) ([]models.Category, error)
	createCategoryFn func(ctx context.Context, token string, req api.CreateCategoryRequest) (*models.Category, error)
	listProductsFn   func(ctx context.Context) ([]models.Product, error)
	createProductFn  func(ctx context.Context, token string, req api.CreateProductRequest) (*models.Product, error)
	listOrdersFn     func(ctx context.Context, token string) ([]models.Order, error)
	createOrderFn    func(ctx context.Context, token string, items []api.OrderItemRequest) (*models.Order, error)
}

func (f *fakeAPI) Healthz(ctx context.Context) error {
	if f.healthzFn == nil {
		return nil
	}
	return f.healthzFn(ctx)
}

func (f *fakeAPI) Register(ctx context.Context, email, password string) error {
	if f.registerFn == nil {
		return nil
	}
	return f.registerFn(ctx, email, password)
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	if f.loginFn == nil {
		return "", nil
	}
	return f.loginFn(ctx, email, password)
}

func (f *fakeAPI) Me(ctx context.Context, token string) (*models.Identity, error) {
	if f.meFn == nil {
		return &models.Identity{}, nil
	}
	return f.meFn(ctx, token)
}

func (f *fakeAPI) ListCategories(ctx context.Context) ([]models.Category, error) {
	if f.listCategoriesFn == nil {
		return nil, nil
	}
	return f.listCategoriesFn(ctx)
}

func (f *fakeAPI) CreateCategory(ctx context.Context, token string, req api.CreateCategoryRequest) (*models.Category, error) {
	if f.createCategoryFn == nil {
		return &models.Category{}, nil
	}
	return f.createCategoryFn(ctx, token, req)
}

func (f *fakeAPI) ListProducts(ctx context.Context) ([]models.Product, error) {
	if f.listProductsFn == nil {
		return nil, nil
	}
	return f.listProductsFn(ctx)
}

func (f *fakeAPI) CreateProduct(ctx context.Context, token string, req api.CreateProductRequest) (*models.Product, error) {
	if f.createProductFn == nil {
		return &models.Product{}, nil
	}
	return f.createProductFn(ctx, token, req)
}

func (f *fakeAPI) ListOrders(ctx context.Context, token string) ([]models.Order, error) {
	if f.listOrdersFn == nil {
		return nil, nil
	}
	return f.listOrdersFn(ctx, token)
}

func (f *fakeAPI) CreateOrder(ctx context.Context, token string, items []api.OrderItemRequest) (*models.Order, error) {
	if f.createOrderFn == nil {
		return &models.Order{}, nil
	}
	return f.createOrderFn(ctx, token, items)
}

// fakeSettings is an in-memory settings.Repository.
type fakeSettings struct {
	values map[string][]byte
	setErr error
	getErr error
}

func newFakeSettings() *fakeSettings {
	return &fakeSettings{values: make(map[string][]byte)}
}

func (f *fakeSettings) Get(ctx context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.values[key], nil
}

func (f *fakeSettings) Set(ctx context.Context, key string, value []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeSettings) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeSettings) Clear(ctx context.Context) error {
	f.values = make(map[string][]byte)
	return nil
}

// fakeSession satisfies sessionInfo/tokenSource without a real manager.
type fakeSession struct {
	token    string
	identity *models.Identity
}

func (f *fakeSession) Token() string { return f.token }

func (f *fakeSession) Identity() *models.Identity { return f.identity }

// fakeReloader counts catalog reload triggers.
type fakeReloader struct {
	calls int
	err   error
}

func (f *fakeReloader) Reload(ctx context.Context) error {
	f.calls++
	return f.err
}

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger          { return n }
