package store

import "github.com/openscilab/lab-auth-keeper/internal/logger"

// Repositories bundles all persistence-layer repositories behind one
// handle for dependency wiring.
type Repositories struct {
	UserRepository UserRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
	}
}
