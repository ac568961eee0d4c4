package router

import (
	"database/sql"
	"net/http"
	"os"

	gotrueadapter "livestock-records/internal/adapters/auth/gotrue"
	localauth "livestock-records/internal/adapters/auth/local"
	mem "livestock-records/internal/adapters/storage/memory"
	pg "livestock-records/internal/adapters/storage/postgres"
	"livestock-records/internal/domain/animals"
	"livestock-records/internal/domain/events"
	"livestock-records/internal/domain/farmers"
	"livestock-records/internal/domain/home"
	"livestock-records/internal/domain/identity"
	"livestock-records/internal/domain/vaccines"
	"livestock-records/internal/domain/veterinarians"
	"livestock-records/internal/middleware"
	"livestock-records/internal/platform/logger"
	"livestock-records/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Proveedor de auth. Si los tres vienen nil y hay AUTH_BASE_URL en env
	// se instancia GoTrue; si tampoco hay env, modo dev (provider local en
	// memoria + header X-Debug-User-ID).
	AuthVerifier  auth.AuthVerifier
	Authenticator auth.Authenticator
	Registrar     auth.Registrar

	// Opcional: si viene, usa Postgres. Si no, intenta DB_DSN y cae a
	// in-memory.
	DB *sql.DB

	Logger logger.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(log))

	verifier, authenticator, registrar := resolveAuth(opts, log)
	r.Use(middleware.AuthContext(verifier))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		usersRepo       identity.Repository
		animalsRepo     animals.Repository
		eventsRepo      events.Repository
		vaccinesRepo    vaccines.Repository
		farmersRepo     farmers.Repository
		vetsRepo        veterinarians.Repository
		assignmentsRepo veterinarians.AssignmentRepository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			} else {
				log.Warn("postgres unavailable, falling back to memory", map[string]any{"error": err.Error()})
			}
		}
	}

	if db != nil {
		usersRepo = pg.NewUsersRepo(db)
		animalsRepo = pg.NewAnimalsRepo(db)
		eventsRepo = pg.NewEventsRepo(db)
		vaccinesRepo = pg.NewVaccinesRepo(db)
		farmersRepo = pg.NewFarmersRepo(db)
		vetsRepo = pg.NewVetsRepo(db)
		assignmentsRepo = pg.NewAssignmentsRepo(db)
	} else {
		usersRepo = mem.NewUsersRepo()
		animalsRepo = mem.NewAnimalsRepo()
		eventsRepo = mem.NewEventsRepo()
		vaccinesRepo = mem.NewVaccinesRepo()
		farmersRepo = mem.NewFarmersRepo()
		vetsRepo = mem.NewVetsRepo()
		assignmentsRepo = mem.NewAssignmentsRepo()
	}

	// Services por módulo
	identitySvc := identity.NewService(usersRepo, authenticator)
	farmersSvc := farmers.NewService(farmersRepo, usersRepo, registrar)
	vetsSvc := veterinarians.NewService(vetsRepo, assignmentsRepo, usersRepo, farmersRepo, registrar)
	animalsSvc := animals.NewService(animalsRepo)
	vaccinesSvc := vaccines.NewService(vaccinesRepo)
	eventsSvc := events.NewService(eventsRepo, vaccinesSvc)
	homeSvc := home.NewService(identitySvc, animalsSvc, vetsSvc)

	// Rutas por módulo
	identity.RegisterRoutes(r, identitySvc)
	farmers.RegisterRoutes(r, farmersSvc)
	veterinarians.RegisterRoutes(r, vetsSvc)
	animals.RegisterRoutes(r, animalsSvc, vetsSvc)
	events.RegisterRoutes(r, eventsSvc, animalsSvc, vetsSvc)
	vaccines.RegisterRoutes(r, vaccinesSvc, animalsSvc, vetsSvc)
	home.RegisterRoutes(r, homeSvc)

	return r
}

// resolveAuth decide el proveedor: lo inyectado > GoTrue por env > dev local.
func resolveAuth(opts Options, log logger.Logger) (auth.AuthVerifier, auth.Authenticator, auth.Registrar) {
	if opts.Authenticator != nil || opts.Registrar != nil {
		return opts.AuthVerifier, opts.Authenticator, opts.Registrar
	}

	if baseURL := os.Getenv("AUTH_BASE_URL"); baseURL != "" {
		client, err := gotrueadapter.NewClient(gotrueadapter.Config{
			BaseURL: baseURL,
			APIKey:  os.Getenv("AUTH_API_KEY"),
		})
		if err == nil && client.IsConfigured() {
			return gotrueadapter.NewVerifier(client), client, client
		}
		if err != nil {
			log.Warn("gotrue misconfigured, falling back to dev auth", map[string]any{"error": err.Error()})
		}
	}

	// Dev: cuentas en memoria, claims vía X-Debug-User-ID (verifier nil).
	provider := localauth.NewProvider(uuid.NewString)
	return nil, provider, provider
}
