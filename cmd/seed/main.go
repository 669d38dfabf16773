// seed crea un tenant de demostración: empresa + administrador, suscripción y perfiles de tarjeta.
//
// Uso: go run ./cmd/seed [ruta/demo.json]
// Sin argumento usa los datos de ejemplo embebidos. Es idempotente por email: si la empresa
// ya existe no se vuelve a crear.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/auth"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/dto"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/application/usecase"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/domain/entity"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/internal/infrastructure/postgres"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/config"
	"github.com/ahmedyasser1234/sharek-backend-test-sub001/pkg/logger"
)

type seedFile struct {
	Register  dto.RegisterRequest         `json:"register"`
	PlanID    string                      `json:"plan_id"`
	Employees []dto.CreateEmployeeRequest `json:"employees"`
}

var demo = seedFile{
	Register: dto.RegisterRequest{
		CompanyName: "Sharek Demo",
		Name:        "Administrador Demo",
		Email:       "demo@sharek.local",
		Password:    "demo12345",
	},
	PlanID: "pro",
	Employees: []dto.CreateEmployeeRequest{
		{Name: "Laura Martínez", JobTitle: "Directora Comercial", Email: "laura@sharek.local", DesignID: "modern"},
		{Name: "Omar Haddad", JobTitle: "Soporte", Phone: "+201000000000"},
		{Name: "Sofía Ruiz", JobTitle: "Diseño", DesignID: "minimal", UniqueURL: "sofia-ruiz"},
	},
}

func main() {
	data := demo
	if len(os.Args) > 1 {
		raw, err := os.ReadFile(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer archivo: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(raw, &data); err != nil {
			fmt.Fprintf(os.Stderr, "Decodificar JSON: %v\n", err)
			os.Exit(1)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.Level}).Component("seed")

	if _, err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	subRepo := postgres.NewSubscriptionRepository(pool)

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), subRepo, postgres.NewTxRunner(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	subUC := usecase.NewSubscriptionUseCase(postgres.NewPlanRepository(pool), subRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, postgres.NewVisitRepository(pool), companyRepo, nil, nil, cfg.Web.PublicBaseURL)

	reg, err := authUC.Register(ctx, data.Register)
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		log.Info().Str("email", data.Register.Email).Msg("la empresa demo ya existe, nada que hacer")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("registrar empresa")
	}
	companyID := reg.Company.ID

	if data.PlanID != "" {
		if _, err := subUC.Purchase(ctx, companyID, dto.PurchaseRequest{PlanID: data.PlanID}); err != nil {
			log.Fatal().Err(err).Str("plan_id", data.PlanID).Msg("contratar plan")
		}
	}

	for _, in := range data.Employees {
		emp, err := employeeUC.Create(ctx, companyID, in)
		if err != nil {
			log.Error().Err(err).Str("name", in.Name).Msg("crear perfil")
			continue
		}
		fmt.Printf("  %-20s %s\n", emp.Name, employeeUC.CardURL(&entity.Employee{DesignID: emp.DesignID, UniqueURL: emp.UniqueURL}))
	}
	fmt.Printf("Empresa %s (%s) lista. Login: %s\n", reg.Company.Name, companyID, data.Register.Email)
}
