package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/secwatch/sirt/domain/entity"
)

const incidentsSchema = `
CREATE TABLE IF NOT EXISTS incidents (
	incident_id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT NOT NULL,
	type TEXT NOT NULL,
	risk TEXT NOT NULL,
	status TEXT NOT NULL,
	reported_date DATETIME NOT NULL,
	assigned_to TEXT,
	resolution_notes TEXT
);
CREATE INDEX IF NOT EXISTS idx_incidents_status ON incidents(status);
CREATE INDEX IF NOT EXISTS idx_incidents_risk ON incidents(risk);
`

const incidentColumns = "incident_id, title, description, type, risk, status, reported_date, assigned_to, resolution_notes"

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	r := &SQLiteRepository{db: db}
	if err := r.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return r, nil
}

type SQLiteRepository struct {
	db *sql.DB

	mu      sync.Mutex
	lastErr error
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) initSchema() error {
	_, err := r.db.Exec(incidentsSchema)
	return err
}

// LastError returns the most recent storage failure. Callers that need to
// distinguish "no rows" from "storage down" check it after an empty result.
func (r *SQLiteRepository) LastError() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}

func (r *SQLiteRepository) fail(msg string, err error) error {
	wrapped := fmt.Errorf("%s: %w", msg, err)
	slog.Error(msg, slog.Any("error", err))
	r.mu.Lock()
	r.lastErr = wrapped
	r.mu.Unlock()
	return wrapped
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]entity.Incident, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT "+incidentColumns+" FROM incidents")
	if err != nil {
		return nil, r.fail("failed to fetch incidents", err)
	}
	defer rows.Close()

	var incidents []entity.Incident
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			// A corrupt row is rejected and reported, not fatal to the scan.
			r.fail("failed to map incident row", err)
			continue
		}
		incidents = append(incidents, *incident)
	}
	if err := rows.Err(); err != nil {
		return incidents, r.fail("failed to iterate incidents", err)
	}
	return incidents, nil
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id int64) (*entity.Incident, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+incidentColumns+" FROM incidents WHERE incident_id = ?", id)
	incident, err := scanIncident(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, r.fail("failed to fetch incident by id", err)
	}
	return incident, nil
}

// Add inserts the incident ignoring any id on the input and returns the
// storage-generated identity. Attaching it to the in-memory entity is the
// caller's job.
func (r *SQLiteRepository) Add(ctx context.Context, incident *entity.Incident) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO incidents (title, description, type, risk, status, reported_date, assigned_to, resolution_notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		incident.Title,
		incident.Description,
		string(incident.Type),
		string(incident.Risk),
		string(incident.Status),
		incident.ReportedDate,
		nullableText(incident.AssignedTo),
		nullableText(incident.ResolutionNotes),
	)
	if err != nil {
		return 0, r.fail("failed to add incident", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, r.fail("failed to read generated incident id", err)
	}
	return id, nil
}

// Update replaces every mutable column of the row keyed by the incident id.
// A missing row is a silent no-op.
func (r *SQLiteRepository) Update(ctx context.Context, incident *entity.Incident) error {
	if incident.ID == nil {
		return fmt.Errorf("incident id is required for update")
	}
	_, err := r.db.ExecContext(ctx,
		`UPDATE incidents SET title=?, description=?, type=?, risk=?, status=?, reported_date=?, assigned_to=?, resolution_notes=?
		 WHERE incident_id=?`,
		incident.Title,
		incident.Description,
		string(incident.Type),
		string(incident.Risk),
		string(incident.Status),
		incident.ReportedDate,
		nullableText(incident.AssignedTo),
		nullableText(incident.ResolutionNotes),
		*incident.ID,
	)
	if err != nil {
		return r.fail("failed to update incident", err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, "DELETE FROM incidents WHERE incident_id=?", id)
	if err != nil {
		return r.fail("failed to delete incident", err)
	}
	return nil
}

func scanIncident(s interface{ Scan(dest ...any) error }) (*entity.Incident, error) {
	var (
		id                          int64
		title, description          string
		typeTag, riskTag, statusTag string
		reportedDate                time.Time
		assignedTo, resolutionNotes sql.NullString
	)
	if err := s.Scan(&id, &title, &description, &typeTag, &riskTag, &statusTag, &reportedDate, &assignedTo, &resolutionNotes); err != nil {
		return nil, err
	}

	incidentType, err := entity.ParseIncidentType(typeTag)
	if err != nil {
		return nil, err
	}
	risk, err := entity.ParseRisk(riskTag)
	if err != nil {
		return nil, err
	}
	status, err := entity.ParseStatus(statusTag)
	if err != nil {
		return nil, err
	}

	return &entity.Incident{
		ID:              &id,
		Title:           title,
		Description:     description,
		Type:            incidentType,
		Risk:            risk,
		Status:          status,
		ReportedDate:    reportedDate,
		AssignedTo:      assignedTo.String,
		ResolutionNotes: resolutionNotes.String,
	}, nil
}

func nullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}
