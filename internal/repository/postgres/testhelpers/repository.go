package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"github.com/route-planner/internal/domain/repository"
	"github.com/route-planner/internal/repository/postgres"
	"go.uber.org/zap"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewPreferenceRepositoryForTest creates a preference repository with test database and logger
func NewPreferenceRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.PreferenceRepository {
	return postgres.NewPreferenceRepository(NewDBForTest(db, logger), logger)
}

// NewHistoryRepositoryForTest creates a history repository with test database and logger
func NewHistoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.HistoryRepository {
	return postgres.NewHistoryRepository(NewDBForTest(db, logger), logger)
}
