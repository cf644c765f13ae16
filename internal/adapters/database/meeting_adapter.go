package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"

	"github.com/simonindia/office-assistant/internal/domain/entities"
	"github.com/simonindia/office-assistant/internal/domain/repositories"
	"github.com/simonindia/office-assistant/internal/infrastructure/clients/sqlite"
	apperrors "github.com/simonindia/office-assistant/pkg/errors"
)

// MeetingAdapter implements meeting persistence in SQLite.
type MeetingAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewMeetingAdapter creates a new meeting adapter.
func NewMeetingAdapter(client *sqlite.Client) repositories.MeetingRepository {
	return &MeetingAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// ListByDate returns all meetings on a calendar date.
func (a *MeetingAdapter) ListByDate(ctx context.Context, date string) ([]entities.Meeting, error) {
	query, args, err := a.db.From("meetings").
		Select("id", "time", "title", "location", "brief", "critical", "date", "created_at").
		Where(goqu.C("date").Eq(date)).
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build meeting list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list meetings", err)
	}
	defer rows.Close()

	meetings := []entities.Meeting{}
	for rows.Next() {
		m, err := scanMeeting(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan meeting", err)
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

// GetByID retrieves a meeting by id.
func (a *MeetingAdapter) GetByID(ctx context.Context, id int64) (*entities.Meeting, error) {
	query, args, err := a.db.From("meetings").
		Select("id", "time", "title", "location", "brief", "critical", "date", "created_at").
		Where(goqu.C("id").Eq(id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build meeting query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	m, err := scanMeeting(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("meeting with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get meeting", err)
	}
	return &m, nil
}

// Create inserts a meeting row.
func (a *MeetingAdapter) Create(ctx context.Context, meeting *entities.Meeting) error {
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = time.Now().UTC()
	}

	query, args, err := a.db.Insert("meetings").Rows(goqu.Record{
		"time":       meeting.Time,
		"title":      meeting.Title,
		"location":   meeting.Location,
		"brief":      meeting.Brief,
		"critical":   meeting.Critical,
		"date":       meeting.Date,
		"created_at": formatTime(meeting.CreatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build meeting insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create meeting", err)
	}

	meeting.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read meeting id", err)
	}
	return nil
}

// Update overwrites a meeting's fields.
func (a *MeetingAdapter) Update(ctx context.Context, meeting *entities.Meeting) error {
	query, args, err := a.db.Update("meetings").Set(goqu.Record{
		"time":     meeting.Time,
		"title":    meeting.Title,
		"location": meeting.Location,
		"brief":    meeting.Brief,
		"critical": meeting.Critical,
		"date":     meeting.Date,
	}).Where(goqu.C("id").Eq(meeting.ID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build meeting update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update meeting", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("meeting with id %d not found", meeting.ID))
	}
	return nil
}

// Delete removes a meeting by id.
func (a *MeetingAdapter) Delete(ctx context.Context, id int64) error {
	query, args, err := a.db.Delete("meetings").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build meeting delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete meeting", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("meeting with id %d not found", id))
	}
	return nil
}

func scanMeeting(row scanner) (entities.Meeting, error) {
	var (
		m         entities.Meeting
		createdAt nullTime
	)
	err := row.Scan(&m.ID, &m.Time, &m.Title, &m.Location, &m.Brief, &m.Critical, &m.Date, &createdAt)
	if err != nil {
		return m, err
	}
	m.CreatedAt = createdAt.Time
	return m, nil
}
