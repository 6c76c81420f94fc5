package service

import (
	"dogwalkservice/internal/config"
	"dogwalkservice/internal/repository"
	"dogwalkservice/internal/storage"
)

type Service struct {
	User   UserService
	Dog    DogService
	Walk   WalkService
	Walker WalkerService
	Tables TablesService
}

// NewService wires the services; summaryCache may be nil to disable caching.
func NewService(rep *repository.Repository, cfg *config.Config, summaryCache storage.Cache) *Service {
	return &Service{
		User:   NewUserService(rep.User),
		Dog:    NewDogService(rep.Dog, cfg),
		Walk:   NewWalkService(rep.WalkRequest, rep.Dog, rep.Application, rep.Rating, summaryCache),
		Walker: NewWalkerService(rep.Walker, summaryCache, cfg.Redis.SummaryTTL),
		Tables: NewTablesService(rep.Tables),
	}
}
