package routes

import (
	"log"

	"jobport/internal/config"
	"jobport/internal/database"
	"jobport/internal/delivery/http/handler"
	"jobport/internal/delivery/http/middleware"
	"jobport/internal/infrastructure/cache"
	"jobport/internal/pkg/jwt"
	"jobport/internal/repository"
	"jobport/internal/storage"
	"jobport/internal/usecase"
	ucauth "jobport/internal/usecase/auth"
	"jobport/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/static"
)

// Deps carries the process-wide collaborators built at startup.
type Deps struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Files  *storage.DiskStore
	Hub    *ws.Hub
	Logger *log.Logger
}

// Register wires repositories, usecases and handlers onto the app.
func Register(app *fiber.App, d Deps) {
	if app == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(d.Config.JWT.Secret, d.Config.JWT.ExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	userRepo := repository.NewPostgresUserRepository(d.DB)
	companyRepo := repository.NewPostgresCompanyRepository(d.DB)
	jobRepo := repository.NewPostgresJobRepository(d.DB)
	applicationRepo := repository.NewPostgresApplicationRepository(d.DB)

	notifier := ws.NewNotifier(d.Hub)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(userRepo, companyRepo), jwtSvc)
	jobUC := usecase.NewJobUsecase(jobRepo, companyRepo, d.Cache, d.Logger)
	companyUC := usecase.NewCompanyUsecase(companyRepo, applicationRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo, companyRepo, d.Files, notifier, d.Logger)

	handler.NewHealthHandler(d.DB).RegisterRoutes(app)
	handler.NewAuthHandler(authUC, authMw).RegisterRoutes(app.Group("/auth"))
	handler.NewJobsHandler(jobUC, authMw).RegisterRoutes(app.Group("/jobs"))
	handler.NewCompaniesHandler(companyUC, authMw).RegisterRoutes(app.Group("/companies"))
	handler.NewApplicationsHandler(applicationUC, authMw).RegisterRoutes(app.Group("/applications"))

	wsHandler := ws.NewHandler(d.Hub, companyRepo, d.Logger)
	app.Get("/ws/applications", wsHandler.HandleApplicationsWS, authMw.Middleware())

	if d.Files != nil {
		app.Get(storage.PublicPrefix+"/*", static.New(d.Files.Dir()))
	}
}
