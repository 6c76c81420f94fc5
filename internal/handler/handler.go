package handlers

import (
	"context"

	"github.com/go-playground/validator/v10"

	"dogwalkservice/internal/config"
	"dogwalkservice/internal/database"
	"dogwalkservice/internal/service"
)

type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

type Handlers struct {
	UserService   service.UserService
	DogService    service.DogService
	WalkService   service.WalkService
	WalkerService service.WalkerService
	TablesService service.TablesService
	DB            HealthChecker
	Readiness     *database.Readiness
	Cfg           *config.Config
	Validate      *validator.Validate
}

func NewHandlers(service *service.Service, db HealthChecker, readiness *database.Readiness, config *config.Config) *Handlers {
	return &Handlers{
		UserService:   service.User,
		DogService:    service.Dog,
		WalkService:   service.Walk,
		WalkerService: service.Walker,
		TablesService: service.Tables,
		DB:            db,
		Readiness:     readiness,
		Cfg:           config,
		Validate:      validator.New(),
	}
}
