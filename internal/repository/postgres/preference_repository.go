package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/route-planner/internal/domain"
	"github.com/route-planner/internal/domain/repository"
	"go.uber.org/zap"
)

type preferenceRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewPreferenceRepository создает репозиторий сохранённых профилей
func NewPreferenceRepository(db *DB, logger *zap.Logger) repository.PreferenceRepository {
	return &preferenceRepository{
		db:     db,
		logger: logger,
	}
}

type preferenceRow struct {
	ProfileID      string    `db:"profile_id"`
	CrowdWeight    float64   `db:"crowd_weight"`
	MaxCrowd       int       `db:"max_crowd"`
	WalkLimitMin   int       `db:"walk_limit_min"`
	ModePenalty    []byte    `db:"mode_penalty"`
	ModePreference []byte    `db:"mode_preference"`
	Runs           int       `db:"runs"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (row preferenceRow) toDomain() (*domain.SavedPreferences, error) {
	prefs := domain.PreferenceProfile{
		CrowdWeight:    row.CrowdWeight,
		MaxCrowd:       row.MaxCrowd,
		WalkLimitMin:   row.WalkLimitMin,
		ModePenalty:    map[domain.Mode]float64{},
		ModePreference: map[domain.Mode]float64{},
	}
	if len(row.ModePenalty) > 0 {
		if err := json.Unmarshal(row.ModePenalty, &prefs.ModePenalty); err != nil {
			return nil, fmt.Errorf("decode mode_penalty: %w", err)
		}
	}
	if len(row.ModePreference) > 0 {
		if err := json.Unmarshal(row.ModePreference, &prefs.ModePreference); err != nil {
			return nil, fmt.Errorf("decode mode_preference: %w", err)
		}
	}

	return &domain.SavedPreferences{
		ProfileID:   row.ProfileID,
		Preferences: prefs,
		Runs:        row.Runs,
		UpdatedAt:   row.UpdatedAt,
	}, nil
}

const preferenceColumns = `profile_id, crowd_weight, max_crowd, walk_limit_min,
	mode_penalty, mode_preference, runs, updated_at`

func (r *preferenceRepository) Get(ctx context.Context, profileID string) (*domain.SavedPreferences, error) {
	var row preferenceRow
	query := `SELECT ` + preferenceColumns + ` FROM route_preferences WHERE profile_id = $1`

	if err := r.db.GetContext(ctx, &row, query, profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("failed to get preferences", zap.String("profile_id", profileID), zap.Error(err))
		return nil, fmt.Errorf("get preferences: %w", err)
	}

	return row.toDomain()
}

func (r *preferenceRepository) Save(ctx context.Context, profileID string, prefs domain.PreferenceProfile) (*domain.SavedPreferences, error) {
	penalty, err := json.Marshal(prefs.ModePenalty)
	if err != nil {
		return nil, fmt.Errorf("encode mode_penalty: %w", err)
	}
	preference, err := json.Marshal(prefs.ModePreference)
	if err != nil {
		return nil, fmt.Errorf("encode mode_preference: %w", err)
	}

	query := `
		INSERT INTO route_preferences (
			profile_id, crowd_weight, max_crowd, walk_limit_min,
			mode_penalty, mode_preference, runs, updated_at
		) VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, 0, NOW())
		ON CONFLICT (profile_id) DO UPDATE SET
			crowd_weight    = EXCLUDED.crowd_weight,
			max_crowd       = EXCLUDED.max_crowd,
			walk_limit_min  = EXCLUDED.walk_limit_min,
			mode_penalty    = EXCLUDED.mode_penalty,
			mode_preference = EXCLUDED.mode_preference,
			updated_at      = NOW()
		RETURNING ` + preferenceColumns

	var row preferenceRow
	err = r.db.GetContext(ctx, &row, query,
		profileID, prefs.CrowdWeight, prefs.MaxCrowd, prefs.WalkLimitMin,
		string(penalty), string(preference),
	)
	if err != nil {
		r.logger.Error("failed to save preferences", zap.String("profile_id", profileID), zap.Error(err))
		return nil, fmt.Errorf("save preferences: %w", err)
	}

	r.logger.Debug("Preferences saved", zap.String("profile_id", profileID))
	return row.toDomain()
}

// IncrementRuns создаёт профиль с настройками по умолчанию, если его ещё нет
func (r *preferenceRepository) IncrementRuns(ctx context.Context, profileID string) error {
	defaults := domain.DefaultPreferences()
	penalty, _ := json.Marshal(defaults.ModePenalty)
	preference, _ := json.Marshal(defaults.ModePreference)

	query := `
		INSERT INTO route_preferences (
			profile_id, crowd_weight, max_crowd, walk_limit_min,
			mode_penalty, mode_preference, runs, updated_at
		) VALUES ($1, $2, $3, $4, $5::jsonb, $6::jsonb, 1, NOW())
		ON CONFLICT (profile_id) DO UPDATE SET
			runs       = route_preferences.runs + 1,
			updated_at = NOW()`

	_, err := r.db.ExecContext(ctx, query,
		profileID, defaults.CrowdWeight, defaults.MaxCrowd, defaults.WalkLimitMin,
		string(penalty), string(preference),
	)
	if err != nil {
		r.logger.Error("failed to increment runs", zap.String("profile_id", profileID), zap.Error(err))
		return fmt.Errorf("increment runs: %w", err)
	}

	return nil
}
