package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SeedHistory inserts n history rows for profileID, one minute apart,
// the newest first. Returns the inserted ids in that order.
func SeedHistory(db *sqlx.DB, profileID string, n int, base time.Time) ([]string, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := uuid.NewString()
		_, err := db.ExecContext(context.Background(), `
			INSERT INTO route_history (id, profile_id, created_at, origin, destination, total_min, modes)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			id, profileID, base.Add(-time.Duration(i)*time.Minute),
			fmt.Sprintf("origin-%d", i), fmt.Sprintf("destination-%d", i),
			float64(10+i), pq.StringArray{"WALK", "SUBWAY"},
		)
		if err != nil {
			return nil, fmt.Errorf("seed history %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
