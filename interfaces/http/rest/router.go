// Package rest wires the HTTP surface: routing, middleware stack and the
// handler set.
package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Pratham-mehta/pha-inspection-system/application/services"
	"github.com/Pratham-mehta/pha-inspection-system/infrastructure/config"
	"github.com/Pratham-mehta/pha-inspection-system/interfaces/http/rest/handlers"
	"github.com/Pratham-mehta/pha-inspection-system/interfaces/http/rest/middleware"
	"github.com/Pratham-mehta/pha-inspection-system/pkg/auth"
	apperrors "github.com/Pratham-mehta/pha-inspection-system/pkg/errors"
)

// Services bundles the application services the router exposes.
type Services struct {
	Auth        *services.AuthService
	Inspections *services.InspectionService
	Responses   *services.ResponseService
	PMI         *services.PMIResponseService
	Images      *services.ImageService
	Signatures  *services.SignatureService
	Catalog     *services.CatalogService
	Dashboard   *services.DashboardService
}

// Router creates and configures the HTTP router.
type Router struct {
	cfg      *config.Config
	services Services
	jwt      *auth.JWTService
	logger   *zap.Logger
}

// NewRouter creates a Router.
func NewRouter(cfg *config.Config, svcs Services, jwt *auth.JWTService, logger *zap.Logger) *Router {
	return &Router{cfg: cfg, services: svcs, jwt: jwt, logger: logger}
}

// Setup configures all routes and middleware.
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.cfg.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	var metrics *middleware.MetricsCollector
	if rt.cfg.EnableMetrics {
		metrics = middleware.NewMetricsCollector("pha_inspection")
		router.Use(metrics.Middleware)
	}

	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)
	if metrics != nil {
		router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{}))
	}

	errHandler := apperrors.NewErrorHandler(rt.logger, rt.cfg.IsDevelopment())

	authHandler := handlers.NewAuthHandler(rt.services.Auth, errHandler, rt.logger)
	inspectionHandler := handlers.NewInspectionHandler(rt.services.Inspections, errHandler, rt.logger)
	responseHandler := handlers.NewResponseHandler(rt.services.Responses, errHandler, rt.logger)
	pmiHandler := handlers.NewPMIHandler(rt.services.PMI, errHandler, rt.logger)
	imageHandler := handlers.NewImageHandler(rt.services.Images, errHandler, rt.logger)
	signatureHandler := handlers.NewSignatureHandler(rt.services.Signatures, errHandler, rt.logger)
	catalogHandler := handlers.NewCatalogHandler(rt.services.Catalog, errHandler, rt.logger)
	dashboardHandler := handlers.NewDashboardHandler(rt.services.Dashboard, errHandler, rt.logger)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Everything past login requires a valid session token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(rt.jwt, rt.logger))

			r.Route("/inspectors", func(r chi.Router) {
				r.Post("/", authHandler.CreateInspector)
				r.Get("/", authHandler.ListInspectors)
				r.Get("/{inspectorID}", authHandler.GetInspector)
				r.Get("/{inspectorID}/inspections", inspectionHandler.ListByInspector)
			})

			r.Route("/inspections", func(r chi.Router) {
				r.Post("/", inspectionHandler.Create)
				r.Get("/", inspectionHandler.List)
				r.Get("/{soNumber}", inspectionHandler.Get)
				r.Put("/{soNumber}", inspectionHandler.Update)
				r.Post("/{soNumber}/submit", inspectionHandler.Submit)
				r.Delete("/{soNumber}", inspectionHandler.Delete)
				r.Delete("/{soNumber}/purge", inspectionHandler.Purge)

				r.Route("/{soNumber}/responses", func(r chi.Router) {
					r.Post("/", responseHandler.Save)
					r.Get("/", responseHandler.List)
					r.Get("/{itemID}", responseHandler.Get)
					r.Delete("/{itemID}", responseHandler.Delete)
				})
				r.Route("/{soNumber}/pmi-responses", func(r chi.Router) {
					r.Post("/", pmiHandler.Save)
					r.Get("/", pmiHandler.List)
					r.Get("/{itemID}", pmiHandler.Get)
					r.Delete("/{itemID}", pmiHandler.Delete)
				})
				r.Route("/{soNumber}/images", func(r chi.Router) {
					r.Post("/", imageHandler.Upload)
					r.Get("/", imageHandler.List)
					r.Get("/{imageID}", imageHandler.Get)
					r.Delete("/{imageID}", imageHandler.Delete)
				})
				r.Route("/{soNumber}/signatures", func(r chi.Router) {
					r.Post("/", signatureHandler.Upload)
					r.Get("/", signatureHandler.List)
					r.Get("/{signatureID}", signatureHandler.Get)
					r.Delete("/{signatureID}", signatureHandler.Delete)
				})
			})

			r.Get("/units/{unitNumber}/inspections", inspectionHandler.ListByUnit)

			r.Route("/areas", func(r chi.Router) {
				r.Get("/", catalogHandler.ListAreas)
				r.Get("/{areaName}/items", catalogHandler.ListAreaItems)
			})
			r.Route("/pmi/categories", func(r chi.Router) {
				r.Get("/", catalogHandler.ListPMICategories)
				r.Get("/{categoryID}/items", catalogHandler.ListPMIItems)
			})

			r.Get("/dashboard/summary", dashboardHandler.Summary)
		})
	})

	return router
}

func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
