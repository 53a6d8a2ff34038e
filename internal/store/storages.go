package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-course-api/internal/config"
	"github.com/MKhiriev/go-course-api/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection. It is the single persistence entry point handed to the
// service layer.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository
}

// NewStorages connects to PostgreSQL, applies pending migrations, and
// constructs all repositories over the shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
	}, nil
}
