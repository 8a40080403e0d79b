package router

import (
	"database/sql"
	"net/http"
	"time"

	"pet-care-assistant/internal/adapters/storage/kvstore"
	"pet-care-assistant/internal/adapters/storage/memory"
	pg "pet-care-assistant/internal/adapters/storage/postgres"
	"pet-care-assistant/internal/domain/meals"
	"pet-care-assistant/internal/domain/profiles"
	"pet-care-assistant/internal/domain/status"
	"pet-care-assistant/internal/middleware"
	"pet-care-assistant/internal/platform/logger"
	"pet-care-assistant/internal/ports/kv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	Logger logger.Logger // nil => nop

	// Store del dispositivo (sensores, comidas, perfiles). nil => memoria vacía.
	KV kv.Store

	// Opcional: si viene, perfiles, comidas y meta salen de Postgres.
	// Los sensores siempre se leen de KV.
	DB *sql.DB

	// StoreTimeout acota cada request contra los stores. 0 = sin límite.
	StoreTimeout time.Duration
}

type Services struct {
	Status   *status.Service
	Meals    *meals.Service
	Profiles *profiles.Service
}

// NewServices arma los services por módulo. Lo usan el router y el CLI.
func NewServices(opts Options) Services {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}
	store := opts.KV
	if store == nil {
		store = memory.NewStore()
	}

	var (
		profileRepo   profiles.Repository
		profileSource meals.ProfileSource
		mealRepo      meals.Repository
		metaReader    meals.MetaReader
	)
	if opts.DB != nil {
		pr, mr := pg.NewProfilesRepo(opts.DB), pg.NewMealsRepo(opts.DB)
		profileRepo, profileSource = pr, pr
		mealRepo, metaReader = mr, mr
	} else {
		pr, mr := kvstore.NewProfilesRepo(store), kvstore.NewMealsRepo(store)
		profileRepo, profileSource = pr, pr
		mealRepo, metaReader = mr, mr
	}

	return Services{
		Status:   status.NewService(store, log).WithTimeout(opts.StoreTimeout),
		Meals:    meals.NewService(profileSource, metaReader, mealRepo, log).WithTimeout(opts.StoreTimeout),
		Profiles: profiles.NewService(profileRepo).WithTimeout(opts.StoreTimeout),
	}
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(opts.Logger))
	r.Use(middleware.Recover(opts.Logger))
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	svcs := NewServices(opts)

	// Rutas por módulo
	status.RegisterRoutes(r, svcs.Status)
	meals.RegisterRoutes(r, svcs.Meals)
	profiles.RegisterRoutes(r, svcs.Profiles)

	return r
}
