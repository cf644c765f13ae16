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

// DailyBriefAdapter implements daily brief persistence in SQLite.
type DailyBriefAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewDailyBriefAdapter creates a new daily brief adapter.
func NewDailyBriefAdapter(client *sqlite.Client) repositories.DailyBriefRepository {
	return &DailyBriefAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// GetByDate retrieves the brief stored for a calendar date.
func (a *DailyBriefAdapter) GetByDate(ctx context.Context, date string) (*entities.DailyBrief, error) {
	query, args, err := a.db.From("daily_briefs").
		Select("id", "date", "brief_content", "decisions_required", "drafts",
			"followups", "risks", "next_actions", "proton_update", "created_at").
		Where(goqu.C("date").Eq(date)).
		Order(goqu.C("id").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build brief query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	b, err := scanDailyBrief(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("no brief found for %s", date))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get brief", err)
	}
	return &b, nil
}

// Upsert stores a brief for its date, overwriting every section field
// of an existing row. The lookup and write are separate statements;
// concurrent upserts for the same date can race.
func (a *DailyBriefAdapter) Upsert(ctx context.Context, brief *entities.DailyBrief) error {
	existing, err := a.GetByDate(ctx, brief.Date)
	if err != nil && !apperrors.IsNotFoundError(err) {
		return err
	}

	if existing != nil {
		query, args, err := a.db.Update("daily_briefs").Set(goqu.Record{
			"brief_content":      brief.BriefContent,
			"decisions_required": brief.DecisionsRequired,
			"drafts":             brief.Drafts,
			"followups":          brief.Followups,
			"risks":              brief.Risks,
			"next_actions":       brief.NextActions,
			"proton_update":      brief.ProtonUpdate,
		}).Where(goqu.C("id").Eq(existing.ID)).ToSQL()
		if err != nil {
			return apperrors.NewInternalError("failed to build brief update query", err)
		}
		if _, err := a.client.DB().ExecContext(ctx, query, args...); err != nil {
			return apperrors.NewInternalError("failed to update brief", err)
		}
		brief.ID = existing.ID
		brief.CreatedAt = existing.CreatedAt
		return nil
	}

	if brief.CreatedAt.IsZero() {
		brief.CreatedAt = time.Now().UTC()
	}
	query, args, err := a.db.Insert("daily_briefs").Rows(goqu.Record{
		"date":               brief.Date,
		"brief_content":      brief.BriefContent,
		"decisions_required": brief.DecisionsRequired,
		"drafts":             brief.Drafts,
		"followups":          brief.Followups,
		"risks":              brief.Risks,
		"next_actions":       brief.NextActions,
		"proton_update":      brief.ProtonUpdate,
		"created_at":         formatTime(brief.CreatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build brief insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create brief", err)
	}

	brief.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read brief id", err)
	}
	return nil
}

func scanDailyBrief(row scanner) (entities.DailyBrief, error) {
	var (
		b         entities.DailyBrief
		createdAt nullTime
	)
	err := row.Scan(&b.ID, &b.Date, &b.BriefContent, &b.DecisionsRequired, &b.Drafts,
		&b.Followups, &b.Risks, &b.NextActions, &b.ProtonUpdate, &createdAt)
	if err != nil {
		return b, err
	}
	b.CreatedAt = createdAt.Time
	return b, nil
}
