package api

import (
	"encoding/json"
	"net/http"

	_ "github.com/Hariom009/WellPlate-sub000/docs"
	"github.com/Hariom009/WellPlate-sub000/internal/api/handler"
	"github.com/Hariom009/WellPlate-sub000/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	wellnessHandler  *handler.WellnessHandler
	nutritionHandler *handler.NutritionHandler
}

func NewRouter(wellnessHandler *handler.WellnessHandler, nutritionHandler *handler.NutritionHandler) *Router {
	return &Router{
		wellnessHandler:  wellnessHandler,
		nutritionHandler: nutritionHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.Tracing)
	r.Use(middleware.Logger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		r.Route("/wellness", func(r chi.Router) {
			r.Get("/score", rt.wellnessHandler.GetScore)
			r.Get("/insights", rt.wellnessHandler.GetInsights)
			r.Route("/usage", func(r chi.Router) {
				r.Get("/", rt.wellnessHandler.GetUsage)
				r.Put("/manual", rt.wellnessHandler.SetManualUsage)
			})
		})

		r.Route("/nutrition", func(r chi.Router) {
			r.Route("/entries", func(r chi.Router) {
				r.Post("/", rt.nutritionHandler.Create)
				r.Get("/", rt.nutritionHandler.List)
			})
			r.Get("/days/{day}", rt.nutritionHandler.GetDayTotals)
		})
	})

	return r
}
