package testhelpers

import (
	"github.com/event-dashboard/internal/domain/repository"
	"github.com/event-dashboard/internal/repository/postgres"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewEventRepositoryForTest creates the event source over the test database
func NewEventRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.EventSource {
	return postgres.NewEventRepository(NewDBForTest(db, logger))
}
