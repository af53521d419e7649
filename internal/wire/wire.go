package wire

import (
	"net/http"

	"club-booking/internal/adaptor"
	"club-booking/internal/data/repository"
	"club-booking/internal/render"
	"club-booking/internal/usecase"
	"club-booking/pkg/clock"
	"club-booking/pkg/middleware"
	"club-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan router dan service yang dipakai proses background
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, config *utils.Config, clk clock.Clock, logger *zap.Logger) (*App, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	service := usecase.NewService(repo, config, clk, logger)
	handler := adaptor.NewHandler(service, renderer, config, logger)

	return &App{
		Router:  setupRouter(handler, config, logger),
		Service: service,
	}, nil
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware: recover paling luar supaya panic di logger juga tertangkap
	r.Use(middleware.Recover(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(config.CORS))
	r.Use(middleware.RateLimit(config.RateLimit, logger))

	auth := middleware.Authenticate(config.JWT, logger)

	wireAuth(r, handler.Auth, auth)
	wireCatalog(r, handler.Catalog)
	wireProfile(r, handler.Profile, auth)
	wireBooking(r, handler.Booking, auth)
	wireAdmin(r, handler.Admin, auth, logger)
	wirePages(r, handler.Page, auth)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
