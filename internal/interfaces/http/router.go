package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/auth"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UserUC         *usecase.UserUseCase
	CompanyUC      *usecase.CompanyUseCase
	EmployeeUC     *usecase.EmployeeUseCase
	VisitUC        *usecase.VisitUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	UsageUC        *usecase.UsageUseCase
	OnVisit        VisitRecordedHook
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC)
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	visitHandler := NewVisitHandler(deps.VisitUC, deps.OnVisit)
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)

	// Público
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	api.Get("/plans", subscriptionHandler.ListPlans)
	api.Get("/cards/:uniqueUrl", employeeHandler.GetCard)
	api.Post("/visits", visitHandler.Create)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	protected.Get("/companies/me", companyHandler.GetMe)
	protected.Put("/companies/me", adminOnly, companyHandler.UpdateMe)

	employees := protected.Group("/employees")
	employees.Post("/", adminOnly, RequireActiveSubscription(deps.SubscriptionUC), employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", adminOnly, employeeHandler.Update)
	employees.Delete("/:id", adminOnly, employeeHandler.Delete)
	employees.Post("/:id/photo", adminOnly, employeeHandler.UploadPhoto)
	employees.Get("/:id/visits/count", employeeHandler.CountVisits)
	employees.Get("/:id/card.pdf", employeeHandler.CardPDF)

	protected.Get("/visits", visitHandler.List)

	subs := protected.Group("/subscriptions")
	subs.Post("/", adminOnly, subscriptionHandler.Purchase)
	subs.Get("/current", subscriptionHandler.Current)
	subs.Get("/access", subscriptionHandler.Access)

	protected.Get("/usage", NewUsageHandler(deps.UsageUC).Get)
}
