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

// ProjectAdapter implements project persistence in SQLite.
type ProjectAdapter struct {
	client *sqlite.Client
	db     *goqu.Database
}

// NewProjectAdapter creates a new project adapter.
func NewProjectAdapter(client *sqlite.Client) repositories.ProjectRepository {
	return &ProjectAdapter{
		client: client,
		db:     goqu.New("sqlite3", client.DB()),
	}
}

// List returns all projects in insertion order.
func (a *ProjectAdapter) List(ctx context.Context) ([]entities.Project, error) {
	query, args, err := a.db.From("projects").
		Select("id", "name", "health", "risk", "action", "created_at", "updated_at").
		Order(goqu.C("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build project list query", err)
	}

	rows, err := a.client.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list projects", err)
	}
	defer rows.Close()

	projects := []entities.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan project", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetByID retrieves a project by id.
func (a *ProjectAdapter) GetByID(ctx context.Context, id int64) (*entities.Project, error) {
	query, args, err := a.db.From("projects").
		Select("id", "name", "health", "risk", "action", "created_at", "updated_at").
		Where(goqu.C("id").Eq(id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build project query", err)
	}

	row := a.client.DB().QueryRowContext(ctx, query, args...)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("project with id %d not found", id))
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get project", err)
	}
	return &p, nil
}

// Create inserts a project row.
func (a *ProjectAdapter) Create(ctx context.Context, project *entities.Project) error {
	now := time.Now().UTC()
	if project.CreatedAt.IsZero() {
		project.CreatedAt = now
	}
	project.UpdatedAt = now

	query, args, err := a.db.Insert("projects").Rows(goqu.Record{
		"name":       project.Name,
		"health":     project.Health,
		"risk":       project.Risk,
		"action":     project.Action,
		"created_at": formatTime(project.CreatedAt),
		"updated_at": formatTime(project.UpdatedAt),
	}).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build project insert query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to create project", err)
	}

	project.ID, err = result.LastInsertId()
	if err != nil {
		return apperrors.NewInternalError("failed to read project id", err)
	}
	return nil
}

// Update overwrites a project's fields.
func (a *ProjectAdapter) Update(ctx context.Context, project *entities.Project) error {
	project.UpdatedAt = time.Now().UTC()

	query, args, err := a.db.Update("projects").Set(goqu.Record{
		"name":       project.Name,
		"health":     project.Health,
		"risk":       project.Risk,
		"action":     project.Action,
		"updated_at": formatTime(project.UpdatedAt),
	}).Where(goqu.C("id").Eq(project.ID)).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build project update query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to update project", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read update result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project with id %d not found", project.ID))
	}
	return nil
}

// Delete removes a project by id.
func (a *ProjectAdapter) Delete(ctx context.Context, id int64) error {
	query, args, err := a.db.Delete("projects").
		Where(goqu.C("id").Eq(id)).
		ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build project delete query", err)
	}

	result, err := a.client.DB().ExecContext(ctx, query, args...)
	if err != nil {
		return apperrors.NewInternalError("failed to delete project", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.NewInternalError("failed to read delete result", err)
	}
	if affected == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("project with id %d not found", id))
	}
	return nil
}

func scanProject(row scanner) (entities.Project, error) {
	var (
		p                    entities.Project
		createdAt, updatedAt nullTime
	)
	err := row.Scan(&p.ID, &p.Name, &p.Health, &p.Risk, &p.Action, &createdAt, &updatedAt)
	if err != nil {
		return p, err
	}
	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return p, nil
}
