package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/location"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
)

type locationRepository struct {
	db *database.DB
}

func NewLocationRepository(db *database.DB) location.LocationRepository {
	return &locationRepository{db: db}
}

// GetByID implements location.LocationRepository.
func (l *locationRepository) GetByID(ctx context.Context, id string, organizationID string) (location.WorkLocation, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, organization_id, name, created_at, updated_at
		FROM work_locations
		WHERE id = $1
		  AND organization_id = $2
	`

	var loc location.WorkLocation
	err := q.QueryRow(ctx, query, id, organizationID).Scan(
		&loc.ID, &loc.OrganizationID, &loc.Name, &loc.CreatedAt, &loc.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return location.WorkLocation{}, location.ErrLocationNotFound
		}
		return location.WorkLocation{}, fmt.Errorf("failed to get work location: %w", err)
	}

	return loc, nil
}

// NamesByIDs implements location.LocationRepository.
func (l *locationRepository) NamesByIDs(ctx context.Context, ids []string, organizationID string) (map[string]string, error) {
	names := make(map[string]string)
	if len(ids) == 0 {
		return names, nil
	}

	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, name
		FROM work_locations
		WHERE id = ANY($1)
		  AND organization_id = $2
	`

	rows, err := q.Query(ctx, query, ids, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve location names: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan location name: %w", err)
		}
		names[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate location names: %w", err)
	}

	return names, nil
}
