package rest

import (
	"database/sql"
	"log/slog"

	"github.com/frahmantamala/budget-tracker/internal/category"
	"github.com/frahmantamala/budget-tracker/internal/note"
	"github.com/frahmantamala/budget-tracker/internal/purchase"
	"github.com/frahmantamala/budget-tracker/internal/transport/middleware"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes mounts the API under /api. Report routes are registered
// before the parameterized delete routes so chi never mistakes a report
// path for an identifier.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, categoryHandler *category.Handler, purchaseHandler *purchase.Handler, noteHandler *note.Handler, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/categories", func(cr chi.Router) {
			cr.Get("/", categoryHandler.ListCategories)
			cr.Get("/categoryBudget", categoryHandler.BudgetVsSpend)
			cr.Post("/", categoryHandler.CreateCategory)
			cr.Put("/", categoryHandler.UpdateCategory)
			cr.Delete("/{categoryId}", categoryHandler.DeleteCategory)
		})

		r.Route("/purchases", func(pr chi.Router) {
			pr.Get("/", purchaseHandler.ListPurchases)
			pr.Get("/countPurchases", purchaseHandler.CountPurchasesByDate)
			pr.Get("/amount", purchaseHandler.SumAmountByDate)
			pr.Get("/categorySpending", purchaseHandler.SpendingByCategory)
			pr.Get("/countPurchasesByCategory", purchaseHandler.CountPurchasesByCategory)
			pr.Post("/", purchaseHandler.CreatePurchase)
			pr.Put("/", purchaseHandler.UpdatePurchase)
			pr.Delete("/{purchaseId}", purchaseHandler.DeletePurchase)
		})

		r.Route("/notes", func(nr chi.Router) {
			nr.Get("/", noteHandler.ListNotes)
			nr.Post("/", noteHandler.CreateNote)
			nr.Put("/", noteHandler.UpdateNote)
			nr.Delete("/{noteId}", noteHandler.DeleteNote)
		})
	})
}
