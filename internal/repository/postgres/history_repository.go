package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type historyRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewHistoryRepository создает репозиторий истории маршрутов
func NewHistoryRepository(db *DB, logger *zap.Logger) repository.HistoryRepository {
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

type historyRow struct {
	ID          string         `db:"id"`
	ProfileID   string         `db:"profile_id"`
	CreatedAt   time.Time      `db:"created_at"`
	Origin      string         `db:"origin"`
	Destination string         `db:"destination"`
	TotalMin    float64        `db:"total_min"`
	Modes       pq.StringArray `db:"modes"`
}

// Insert идемпотентен по id: повторная доставка события не создаёт дубликат
func (r *historyRepository) Insert(ctx context.Context, record domain.HistoryRecord) (bool, error) {
	modes := make(pq.StringArray, 0, len(record.Modes))
	for _, m := range record.Modes {
		modes = append(modes, string(m))
	}

	query := `
		INSERT INTO route_history (id, profile_id, created_at, origin, destination, total_min, modes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	res, err := r.db.ExecContext(ctx, query,
		record.ID, record.ProfileID, record.CreatedAt,
		record.Origin, record.Destination, record.TotalMin, modes,
	)
	if err != nil {
		r.logger.Error("failed to insert history record",
			zap.String("id", record.ID),
			zap.String("profile_id", record.ProfileID),
			zap.Error(err),
		)
		return false, fmt.Errorf("insert history: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert history rows affected: %w", err)
	}
	return n > 0, nil
}

func (r *historyRepository) ListByProfile(ctx context.Context, profileID string, limit int) ([]domain.HistoryRecord, error) {
	query := `
		SELECT id, profile_id, created_at, origin, destination, total_min, modes
		FROM route_history
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	var rows []historyRow
	if err := r.db.SelectContext(ctx, &rows, query, profileID, limit); err != nil {
		r.logger.Error("failed to list history", zap.String("profile_id", profileID), zap.Error(err))
		return nil, fmt.Errorf("list history: %w", err)
	}

	records := make([]domain.HistoryRecord, 0, len(rows))
	for _, row := range rows {
		modes := make([]domain.Mode, 0, len(row.Modes))
		for _, m := range row.Modes {
			modes = append(modes, domain.Mode(m))
		}
		records = append(records, domain.HistoryRecord{
			ID:          row.ID,
			ProfileID:   row.ProfileID,
			CreatedAt:   row.CreatedAt,
			Origin:      row.Origin,
			Destination: row.Destination,
			TotalMin:    row.TotalMin,
			Modes:       modes,
		})
	}

	return records, nil
}
