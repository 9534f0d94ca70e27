package service

import (
	"github.com/ValievMarat/advert-service/internal/config"
	"github.com/ValievMarat/advert-service/internal/logger"
	"github.com/ValievMarat/advert-service/internal/store"
)

// Services bundles all business-logic services for injection into the
// transport layer.
type Services struct {
	UserService   UserService
	AdvertService AdvertService
}

// NewServices wires every service to the repositories.
func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		UserService:   NewUserService(repositories.UserRepository, cfg, logger),
		AdvertService: NewAdvertService(repositories.AdvertRepository, repositories.UserRepository, logger),
	}
}
