package server

import (
	"net/http"

	"despensa/internal/client"
	"despensa/internal/product"
	"despensa/internal/rest"
	stockctrl "despensa/internal/stock/controller"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func NewRouter(
	clientCtrl *client.Controller,
	productCtrl *product.Controller,
	stockCtrl *stockctrl.StockController,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(recoverer(logger))

	r.Route("/clients", func(r chi.Router) {
		r.Post("/", clientCtrl.HandleCreate)
		r.Get("/", clientCtrl.HandleList)
		r.Get("/{id}", clientCtrl.HandleGet)
		r.Post("/{clientId}/addresses", clientCtrl.HandleAddAddress)
		r.Get("/{clientId}/addresses/", clientCtrl.HandleListAddresses)
	})

	r.Route("/products", func(r chi.Router) {
		r.Post("/", productCtrl.HandleCreate)
		r.Get("/", productCtrl.HandleList)
		r.Get("/{id}", productCtrl.HandleGet)
		r.Put("/{id}", productCtrl.HandleUpdate)
		r.Delete("/{id}", productCtrl.HandleDelete)
	})

	r.Get("/available-products/", stockCtrl.GetAvailableProducts)
	r.Post("/available-products/", stockCtrl.UpdateAvailability)
	r.Post("/stock/consume/", stockCtrl.ConsumeStock)

	return r
}

// recoverer turns a handler panic into the standard internal_error body
// instead of a dropped connection.
func recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic recovered", zap.Any("panic", rec), zap.String("path", r.URL.Path))
					_ = rest.WriteJSON(w, http.StatusInternalServerError, rest.ErrorResponse{
						Error: rest.ErrorInfo{
							Type:    rest.TypeInternal,
							Message: "an unexpected error occurred",
						},
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
