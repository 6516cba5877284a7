package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// StoredAnalysis is one persisted analysis report plus its storage metadata.
type StoredAnalysis struct {
	ID        uuid.UUID            `json:"id"`
	CreatedAt time.Time            `json:"created_at"`
	Report    types.AnalysisReport `json:"report"`
}

// CandidateSummary is a lightweight view of a stored analysis for listing.
type CandidateSummary struct {
	ID         uuid.UUID `json:"id"`
	Source     string    `json:"source"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	FinalScore *float64  `json:"final_score,omitempty"` // nil when analyzed without a JD
	Grade      string    `json:"grade,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CandidateFilters holds optional filters for listing candidates
type CandidateFilters struct {
	Name     string
	MinScore float64
	Limit    int
}

// SaveAnalysis stores a full analysis report and returns its ID. The
// candidate name, email, score, and grade are denormalized into columns
// so candidate listings never have to unpack the JSONB report.
func (db *DB) SaveAnalysis(ctx context.Context, report *types.AnalysisReport) (uuid.UUID, error) {
	jsonBytes, err := json.Marshal(report)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal report: %w", err)
	}

	var name, email string
	if report.ResumeAnalysis != nil {
		name = report.ResumeAnalysis.Contact.Name
		email = report.ResumeAnalysis.Contact.Email
	}

	var finalScore *float64
	var grade *string
	if report.ATSScore != nil {
		finalScore = &report.ATSScore.FinalScore
		grade = &report.ATSScore.Grade
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (source, candidate_name, email, final_score, grade, report)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		report.Source, name, email, finalScore, grade, jsonBytes,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no row
// matches.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*StoredAnalysis, error) {
	var stored StoredAnalysis
	var reportBytes []byte

	err := db.pool.QueryRow(ctx,
		`SELECT id, created_at, report FROM analyses WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.CreatedAt, &reportBytes)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	if err := json.Unmarshal(reportBytes, &stored.Report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}
	return &stored, nil
}

// ListCandidates retrieves candidate summaries with optional filters,
// newest first.
func (db *DB) ListCandidates(ctx context.Context, filters CandidateFilters) ([]CandidateSummary, error) {
	if filters.Limit == 0 {
		filters.Limit = 50
	}

	query := `SELECT id, source, candidate_name, email, final_score, COALESCE(grade, ''), created_at
		FROM analyses WHERE 1=1`
	args := []any{}
	argNum := 1

	if filters.Name != "" {
		query += fmt.Sprintf(" AND candidate_name ILIKE $%d", argNum)
		args = append(args, "%"+filters.Name+"%")
		argNum++
	}
	if filters.MinScore > 0 {
		query += fmt.Sprintf(" AND final_score >= $%d", argNum)
		args = append(args, filters.MinScore)
		argNum++
	}

	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", argNum)
	args = append(args, filters.Limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []CandidateSummary
	for rows.Next() {
		var c CandidateSummary
		if err := rows.Scan(&c.ID, &c.Source, &c.Name, &c.Email, &c.FinalScore, &c.Grade, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// DeleteAnalysis deletes a stored analysis by ID
func (db *DB) DeleteAnalysis(ctx context.Context, id uuid.UUID) error {
	result, err := db.pool.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete analysis: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("analysis not found: %s", id)
	}
	return nil
}
