package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/andybalholm/brotli"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	TodayDeals(ctx context.Context) ([]model.Product, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	GetProduct(ctx context.Context, id int) (model.Product, error)
	ProductsByCategory(ctx context.Context, name string) ([]model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type AccountService interface {
	Register(ctx context.Context, in service.RegisterInput) (int, error)
	Login(ctx context.Context, email, password string) (model.User, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, in service.PlaceOrderInput) (int, error)
}

type SaleService interface {
	RecordSingle(ctx context.Context, item service.BasicItem) error
	RecordBasic(ctx context.Context, items []service.BasicItem) error
	RecordCart(ctx context.Context, userID int, lines []service.CartLine) error
}

type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Services groups the dependencies of the HTTP layer.
type Services struct {
	Catalog  CatalogService
	Accounts AccountService
	Orders   OrderService
	Sales    SaleService
	Health   HealthChecker
}

type Handler struct {
	router   *chi.Mux
	log      *slog.Logger
	validate *validator.Validate
	svc      Services
}

func NewHandler(svc Services, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}

	router := chi.NewRouter()

	// Middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(log))
	router.Use(middleware.Recoverer)
	router.Use(newCompressor().Handler)

	h := &Handler{
		router:   router,
		log:      log,
		validate: newValidator(),
		svc:      svc,
	}

	h.registerRoutes()
	return h
}

func (h *Handler) registerRoutes() {
	h.router.Get("/health", h.HealthCheck)

	h.router.Route("/api", func(r chi.Router) {
		r.Get("/test-connection", h.TestConnection)

		r.Post("/register", h.Register)
		r.Post("/login", h.Login)

		r.Get("/products", h.ListProducts)
		r.Get("/today-deals", h.TodayDeals)
		r.Get("/categories", h.ListCategories)
		r.Get("/product/{id}", h.GetProduct)
		r.Get("/category/", h.ProductsByCategory)
		r.Get("/category/{name}", h.ProductsByCategory)
		r.Get("/search", h.Search)

		r.Post("/purchase", h.PlaceOrder)
		r.Post("/purchase-single", h.PurchaseSingle)
		r.Post("/purchase-all-basic", h.PurchaseAllBasic)
		r.Post("/purchase-all", h.PurchaseAll)
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// TestConnection reports whether the database answers a trivial query.
func (h *Handler) TestConnection(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Health.Ping(r.Context()); err != nil {
		h.writeError(w, r, err, "Database connection failed.")
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Success: true, Message: "Database connection successful!"})
}

// newCompressor compresses JSON responses with brotli when the client accepts
// it, falling back to gzip/deflate.
func newCompressor() *middleware.Compressor {
	c := middleware.NewCompressor(5, "application/json", "text/plain")
	c.SetEncoder("br", func(w io.Writer, level int) io.Writer {
		return brotli.NewWriterLevel(w, level)
	})
	return c
}
