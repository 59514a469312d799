package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/eagleeyes/storefront/internal/api/handlers"
	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/config"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/middleware"
	repo "github.com/eagleeyes/storefront/internal/repository"
	"github.com/eagleeyes/storefront/internal/services"
)

type RouterDeps struct {
	Cfg         config.Config
	Log         *slog.Logger
	TM          *auth.TokenManager
	UserSvc     *services.UserService
	CartSvc     *services.CartService
	CatalogSvc  *services.CatalogService
	AdminSvc    *services.AdminService
	CheckoutSvc *services.CheckoutService
	AuditLogs   repo.AuditLogs
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover(d.Log), middleware.HTTPMetrics, middleware.RateLimit(d.Cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	authMW := middleware.NewAuthMiddleware(d.TM, d.UserSvc)
	catalogH := handlers.NewCatalogHandler(d.CatalogSvc, d.Log)
	cartH := handlers.NewCartHandler(d.CartSvc, d.CatalogSvc, d.Log)
	authH := handlers.NewAuthHandler(d.TM, d.UserSvc, d.Log)
	profileH := handlers.NewProfileHandler(d.UserSvc, d.CheckoutSvc, d.Log)
	adminH := handlers.NewAdminHandler(d.AdminSvc, d.UserSvc, d.AuditLogs, d.Log)

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- catalog ----------
		r.Get("/products", catalogH.ListProducts)
		r.Get("/products/categories", catalogH.Categories)
		r.Get("/products/{id}", catalogH.GetProduct)
		r.Get("/courses", catalogH.ListCourses)
		r.Get("/courses/{id}", catalogH.GetCourse)
		r.Get("/blog", catalogH.ListBlogPosts)
		r.Get("/blog/{id}", catalogH.GetBlogPost)

		// ---------- cart ----------
		r.Get("/cart", cartH.Get)
		r.Delete("/cart", cartH.Clear)
		r.Post("/cart/items", cartH.AddItem)
		r.Put("/cart/items/{id}", cartH.UpdateQuantity)
		r.Delete("/cart/items/{id}", cartH.RemoveItem)

		// ---------- auth ----------
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/logout", authH.Logout)

		// ---------- signed in ----------
		r.Group(func(r chi.Router) {
			r.Use(authMW.RequireUser)
			r.Get("/profile", profileH.Get)
			r.Put("/profile", profileH.Update)
			r.Get("/profile/orders", profileH.Orders)
			r.Post("/checkout", profileH.Checkout)
		})

		// ---------- dashboard ----------
		r.Route("/admin", func(r chi.Router) {
			r.Use(authMW.RequireUser, middleware.RequireAdmin)
			r.Get("/users", adminH.ListUsers)
			r.Put("/users/{id}/role", adminH.UpdateUserRole)
			r.Get("/audit", adminH.Audit)

			r.Get("/{kind}", adminH.List)
			r.Post("/{kind}", adminH.Create)
			r.Get("/{kind}/fields", adminH.Fields)
			r.Put("/{kind}/{id}", adminH.Update)
			r.Post("/{kind}/{id}/delete", adminH.StageDelete)
			r.Post("/{kind}/delete/confirm", adminH.ConfirmDelete)
			r.Post("/{kind}/delete/cancel", adminH.CancelDelete)
		})
	})

	return r
}
