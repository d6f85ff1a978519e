package cli

import (
	"bufio"
	"context"
	"io"
	"testing"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/models"
)

func stubInputs(t *testing.T, text string, password []byte) func() {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer) ([]byte, error) { return password, nil }
	return func() {
		getSimpleText = origST
		getPassword = origGP
	}
}

// fakeSession implements services.SessionManager for CLI tests.
type fakeSession struct {
	token    string
	identity *models.Identity

	regEmail string
	regPass  []byte
	regErr   error

	loginEmail string
	loginErr   error

	fetchErr     error
	logoutCalled bool
}

func (f *fakeSession) Register(_ context.Context, email string, pass []byte) error {
	f.regEmail, f.regPass = email, append([]byte(nil), pass...)
	return f.regErr
}

func (f *fakeSession) Login(_ context.Context, email string, _ []byte) error {
	if f.loginErr != nil {
		return f.loginErr
	}
	f.loginEmail = email
	f.token = "tok"
	f.identity = &models.Identity{Email: email, Role: models.RoleUser}
	return nil
}

func (f *fakeSession) FetchIdentity(context.Context, string) (*models.Identity, error) {
	if f.fetchErr != nil {
		f.token = ""
		f.identity = nil
		return nil, f.fetchErr
	}
	return f.identity, nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.logoutCalled = true
	f.token = ""
	f.identity = nil
	return nil
}

func (f *fakeSession) Restore(context.Context) error { return nil }

func (f *fakeSession) Token() string { return f.token }

func (f *fakeSession) Identity() *models.Identity { return f.identity }

func (f *fakeSession) IsLoggedIn() bool { return f.token != "" }

func testProduct(id int64, name string, priceCents int64) models.Product {
	return models.Product{ID: id, Name: name, PriceCents: priceCents, Inventory: 10}
}

func testOrder(id int64) models.Order {
	return models.Order{ID: id, TotalCents: 1500, Status: "placed"}
}

// fakeAPI implements api.Client; only the calls a test configures do
// anything useful.
type fakeAPI struct {
	products []models.Product
	orders   []models.Order
	order    *models.Order
}

func (f *fakeAPI) Healthz(context.Context) error { return nil }

func (f *fakeAPI) Register(context.Context, string, string) error { return nil }

func (f *fakeAPI) Login(context.Context, string, string) (string, error) { return "tok", nil }

func (f *fakeAPI) Me(context.Context, string) (*models.Identity, error) {
	return &models.Identity{}, nil
}

func (f *fakeAPI) ListCategories(context.Context) ([]models.Category, error) { return nil, nil }

func (f *fakeAPI) CreateCategory(context.Context, string, api.CreateCategoryRequest) (*models.Category, error) {
	return &models.Category{}, nil
}

func (f *fakeAPI) ListProducts(context.Context) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeAPI) CreateProduct(context.Context, string, api.CreateProductRequest) (*models.Product, error) {
	return &models.Product{}, nil
}

func (f *fakeAPI) ListOrders(context.Context, string) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeAPI) CreateOrder(context.Context, string, []api.OrderItemRequest) (*models.Order, error) {
	return f.order, nil
}
