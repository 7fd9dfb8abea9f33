package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/mleodato/restaurant-analytics-api/infrastructure/database/postgres"
	"github.com/mleodato/restaurant-analytics-api/internal/domain"
)

const dashboardSnapshotsTable = "dashboard_snapshots dsn"

type DashboardSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, snapshot *domain.DashboardSnapshot) error
	GetByDay(ctx context.Context, day time.Time) (*domain.DashboardSnapshot, error)
}

type dashboardSnapshotRepository struct {
	conn postgres.Queryer
}

func NewDashboardSnapshotRepository(conn postgres.Queryer) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{conn: conn}
}

func (r *dashboardSnapshotRepository) SaveOrUpdate(ctx context.Context, snapshot *domain.DashboardSnapshot) error {
	var summaryJSON []byte
	var err error

	if snapshot.Summary != nil {
		summaryJSON, err = json.Marshal(snapshot.Summary)
		if err != nil {
			return fmt.Errorf("erro ao serializar resumo para JSON: %w", err)
		}
	}

	query, args, err := squirrel.StatementBuilder.
		Insert("dashboard_snapshots").
		Columns("day", "summary").
		Values(snapshot.Day.Format(time.DateOnly), summaryJSON).
		Suffix(`
			ON CONFLICT (day) DO UPDATE SET
				summary = EXCLUDED.summary,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) GetByDay(ctx context.Context, day time.Time) (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select("dsn.id, dsn.day, dsn.summary, dsn.created_at, dsn.updated_at").
		From(dashboardSnapshotsTable).
		Where(squirrel.Eq{"dsn.day": day.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.DashboardSnapshot{}
	var summaryJSON []byte

	row := r.conn.QueryRowContext(ctx, query, args...)
	err = row.Scan(
		&snapshot.ID,
		&snapshot.Day,
		&summaryJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	if summaryJSON != nil {
		summary := &domain.DashboardSummary{}
		if err := json.Unmarshal(summaryJSON, summary); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON do resumo: %w", err)
		}
		snapshot.Summary = summary
	}

	return snapshot, nil
}
