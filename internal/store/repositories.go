package store

import "github.com/ValievMarat/advert-service/internal/logger"

// Repositories bundles all persistence-layer implementations behind their
// interfaces for injection into the service layer.
type Repositories struct {
	UserRepository   UserRepository
	AdvertRepository AdvertRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, logger),
		AdvertRepository: NewAdvertRepository(db, logger),
	}
}
