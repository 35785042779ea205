package httpserver

import (
	"context"
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/catalog"
	"github.com/talipby/koroglu-site/internal/checkout"
	"github.com/talipby/koroglu-site/internal/domain"
	"github.com/talipby/koroglu-site/internal/service/assistant"
	customersvc "github.com/talipby/koroglu-site/internal/service/customer"
	productsvc "github.com/talipby/koroglu-site/internal/service/product"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

type stubCustomerSvc struct {
	user      *domain.User
	signupErr error
	loginErr  error
	lookupErr error
}

func (s *stubCustomerSvc) Signup(_ context.Context, _ customersvc.SignupInput) (*domain.User, error) {
	return s.user, s.signupErr
}

func (s *stubCustomerSvc) Login(_ context.Context, _, _ string) (*domain.User, string, string, error) {
	return s.user, "access", "refresh", s.loginErr
}

func (s *stubCustomerSvc) LookupByToken(_ context.Context, _ string) (*domain.User, error) {
	if s.lookupErr != nil {
		return nil, s.lookupErr
	}
	if s.user == nil {
		return nil, customersvc.ErrInvalidToken
	}
	return s.user, nil
}

func (s *stubCustomerSvc) Logout(_ context.Context, _ string) {}

func (s *stubCustomerSvc) AccessTTLSeconds() int { return 3600 }

type stubProductSvc struct {
	list       []domain.Product
	listErr    error
	created    *domain.Product
	createErr  error
	updated    *domain.Product
	updateErr  error
	deleteErr  error
	lastCreate productsvc.Input
}

func (s *stubProductSvc) Create(_ context.Context, in productsvc.Input) (*domain.Product, error) {
	s.lastCreate = in
	return s.created, s.createErr
}

func (s *stubProductSvc) Update(_ context.Context, _ string, _ productsvc.Input) (*domain.Product, error) {
	return s.updated, s.updateErr
}

func (s *stubProductSvc) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func (s *stubProductSvc) List(_ context.Context) ([]domain.Product, error) {
	return s.list, s.listErr
}

type stubOrderSink struct {
	calls  int
	lastIn domain.Order
	err    error
}

func (s *stubOrderSink) Create(_ context.Context, order domain.Order) (*domain.Order, error) {
	s.calls++
	s.lastIn = order
	if s.err != nil {
		return nil, s.err
	}
	out := order
	out.ID = "order-1"
	return &out, nil
}

type stubOrderLister struct {
	byUser []domain.Order
	all    []domain.Order
	err    error
}

func (s *stubOrderLister) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	return s.byUser, s.err
}

func (s *stubOrderLister) ListAll(_ context.Context) ([]domain.Order, error) {
	return s.all, s.err
}

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: "p-badem", Name: "Badem İçi", Category: "Kuruyemiş", WholesaleCents: 38000, MinOrder: 5, Unit: "kg", InStock: true},
		{ID: "p-ceviz", Name: "Ceviz İçi", Category: "Kuruyemiş", WholesaleCents: 42000, MinOrder: 3, Unit: "kg", InStock: true},
		{ID: "p-kayisi", Name: "Kuru Kayısı", Category: "Kuru Meyve", WholesaleCents: 18000, MinOrder: 5, Unit: "kg", InStock: true},
		{ID: "p-uzum", Name: "Kuru Üzüm", Category: "Kuru Meyve", WholesaleCents: 7000, MinOrder: 10, Unit: "kg", InStock: false},
	}
}

type testEnv struct {
	router  *gin.Engine
	custSvc *stubCustomerSvc
	prodSvc *stubProductSvc
	sink    *stubOrderSink
	store   *catalog.Store
	carts   *cart.Manager
	deps    Deps
}

func newTestEnv(t *testing.T, mutate func(*Deps)) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		custSvc: &stubCustomerSvc{},
		prodSvc: &stubProductSvc{list: testProducts()},
		sink:    &stubOrderSink{},
		store:   catalog.NewStore(testProducts()),
		carts:   cart.NewManager(),
	}
	env.deps = Deps{
		CustomerSvc: env.custSvc,
		ProductSvc:  env.prodSvc,
		CheckoutSvc: checkout.New(env.sink, logDiscard()),
		Orders:      &stubOrderLister{},
		Catalog:     env.store,
		Carts:       env.carts,
		Advisor:     assistant.NewCanned(nil, rand.New(rand.NewSource(42))),
		Recommender: assistant.HeadRecommender{},
	}
	if mutate != nil {
		mutate(&env.deps)
	}

	router, err := buildRouter(logDiscard(), nil, env.deps, nil)
	if err != nil {
		t.Fatalf("build router: %v", err)
	}
	env.router = router
	return env
}
