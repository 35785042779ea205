package httpserver

import (
	"context"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/catalog"
	"github.com/talipby/koroglu-site/internal/domain"
	"github.com/talipby/koroglu-site/internal/service/assistant"
	customersvc "github.com/talipby/koroglu-site/internal/service/customer"
	productsvc "github.com/talipby/koroglu-site/internal/service/product"
	"github.com/talipby/koroglu-site/internal/storage"
)

// CustomerService is the identity collaborator the handlers consume.
type CustomerService interface {
	Signup(ctx context.Context, in customersvc.SignupInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
	Logout(ctx context.Context, token string)
	AccessTTLSeconds() int
}

// ProductService is the admin catalog-mutation collaborator.
type ProductService interface {
	Create(ctx context.Context, in productsvc.Input) (*domain.Product, error)
	Update(ctx context.Context, id string, in productsvc.Input) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]domain.Product, error)
}

// CheckoutService converts a cart into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, crt *cart.Cart, user *domain.User, shippingAddress string) (*domain.Order, error)
}

// OrderLister reads back persisted orders.
type OrderLister interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
}

// Deps bundles the collaborators the router wires into handlers.
type Deps struct {
	CustomerSvc CustomerService
	ProductSvc  ProductService
	CheckoutSvc CheckoutService
	Orders      OrderLister
	Catalog     *catalog.Store
	Carts       *cart.Manager
	Advisor     assistant.Advisor
	Recommender assistant.Recommender
	Uploads     storage.Sink
	UploadDir   string
}

func (d Deps) validate() error {
	if d.CustomerSvc == nil || d.ProductSvc == nil || d.CheckoutSvc == nil ||
		d.Orders == nil || d.Catalog == nil || d.Carts == nil {
		return errors.New("httpserver: missing dependency")
	}
	return nil
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, allowedOrigins []string) (*gin.Engine, error) {
	if err := deps.validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	if len(allowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = allowedOrigins
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", cartSessionHeader)
		corsCfg.ExposeHeaders = append(corsCfg.ExposeHeaders, cartSessionHeader)
		router.Use(cors.New(corsCfg))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, logger: logger}

	router.POST("/auth/signup", h.signup)
	router.POST("/auth/token", h.token)
	router.POST("/auth/logout", h.identify, h.logout)
	router.GET("/me", h.identify, requireUser, h.me)

	router.GET("/products", h.listProducts)
	router.GET("/products/:id", h.getProduct)
	router.GET("/categories", h.listCategories)

	admin := router.Group("/", h.identify, requireUser, requireAdmin)
	admin.POST("/products", h.createProduct)
	admin.PATCH("/products/:id", h.updateProduct)
	admin.DELETE("/products/:id", h.deleteProduct)
	if deps.Uploads != nil {
		admin.POST("/uploads", h.upload)
	}

	router.GET("/cart", h.withCart, h.getCart)
	router.POST("/cart/items", h.withCart, h.addCartItem)
	router.PATCH("/cart/items/:productId", h.withCart, h.updateCartItem)
	router.DELETE("/cart/items/:productId", h.withCart, h.removeCartItem)
	router.DELETE("/cart", h.withCart, h.clearCart)
	router.POST("/cart/open", h.withCart, h.openCart)
	router.POST("/cart/close", h.withCart, h.closeCart)

	router.POST("/checkout", h.identify, h.withCart, h.checkout)
	router.GET("/orders", h.identify, requireUser, h.listOrders)

	router.POST("/assistant", h.assistant)

	if deps.UploadDir != "" {
		router.Static("/files", deps.UploadDir)
	}

	return router, nil
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}

// refreshCatalog reloads the snapshot after an admin mutation so reads see
// the change even before the database notification arrives.
func (h *handlers) refreshCatalog(ctx context.Context) {
	products, err := h.deps.ProductSvc.List(ctx)
	if err != nil {
		h.logger.Printf("catalog refresh failed: %v", err)
		return
	}
	h.deps.Catalog.Replace(products)
}
