package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shiftline-hq/timetrack-backend-go/internal/domain/punch"
	"github.com/shiftline-hq/timetrack-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) punch.PunchRepository {
	return &punchRepository{db: db}
}

const punchColumns = `id, employee_id, organization_id, entry_type, entry_timestamp,
	   location_id, is_manual, note, created_at, updated_at`

func scanPunch(row pgx.Row) (punch.PunchEvent, error) {
	var ev punch.PunchEvent
	err := row.Scan(
		&ev.ID, &ev.EmployeeID, &ev.OrganizationID, &ev.Type, &ev.Timestamp,
		&ev.LocationID, &ev.IsManual, &ev.Note, &ev.CreatedAt, &ev.UpdatedAt,
	)
	return ev, err
}

// ListByEmployeeRange implements punch.PunchRepository.
func (p *punchRepository) ListByEmployeeRange(ctx context.Context, employeeID string, fromUTC, toUTC time.Time, organizationID string) ([]punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE employee_id = $1
		  AND organization_id = $2
		  AND entry_timestamp >= $3
		  AND entry_timestamp < $4
		ORDER BY entry_timestamp ASC, created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, organizationID, fromUTC, toUTC)
	if err != nil {
		return nil, fmt.Errorf("failed to list punch events: %w", err)
	}
	defer rows.Close()

	var events []punch.PunchEvent
	for rows.Next() {
		ev, err := scanPunch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan punch event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punch events: %w", err)
	}

	return events, nil
}

// FindByTypeAndDay implements punch.PunchRepository. Returns nil when no
// event of the given type exists in the day window.
func (p *punchRepository) FindByTypeAndDay(ctx context.Context, employeeID string, entryType punch.EntryType, dayStartUTC, dayEndUTC time.Time, organizationID string) (*punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		SELECT ` + punchColumns + `
		FROM punch_events
		WHERE employee_id = $1
		  AND organization_id = $2
		  AND entry_type = $3
		  AND entry_timestamp >= $4
		  AND entry_timestamp < $5
		ORDER BY entry_timestamp DESC
		LIMIT 1
	`

	ev, err := scanPunch(q.QueryRow(ctx, query, employeeID, organizationID, entryType, dayStartUTC, dayEndUTC))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find punch event: %w", err)
	}

	return &ev, nil
}

// Create implements punch.PunchRepository.
func (p *punchRepository) Create(ctx context.Context, newEvent punch.PunchEvent) (punch.PunchEvent, error) {
	q := GetQuerier(ctx, p.db)

	query := `
		INSERT INTO punch_events (
			id, employee_id, organization_id, entry_type, entry_timestamp,
			location_id, is_manual, note
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEvent.ID,
		newEvent.EmployeeID,
		newEvent.OrganizationID,
		newEvent.Type,
		newEvent.Timestamp,
		newEvent.LocationID,
		newEvent.IsManual,
		newEvent.Note,
	).Scan(&newEvent.CreatedAt, &newEvent.UpdatedAt)

	if err != nil {
		return punch.PunchEvent{}, fmt.Errorf("failed to create punch event: %w", err)
	}

	return newEvent, nil
}

// UpdateTimestamp implements punch.PunchRepository. Corrected events are
// always marked manual.
func (p *punchRepository) UpdateTimestamp(ctx context.Context, id string, timestamp time.Time, note *string) error {
	q := GetQuerier(ctx, p.db)

	query := `
		UPDATE punch_events
		SET entry_timestamp = $2,
			is_manual = TRUE,
			note = COALESCE($3, note),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, timestamp, note)
	if err != nil {
		return fmt.Errorf("failed to update punch event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return punch.ErrPunchNotFound
	}

	return nil
}
