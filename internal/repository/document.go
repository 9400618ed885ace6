package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/LuminaryOps/Production-Rates-sub000/internal/domain"
)

// calendarDocumentName keys the single availability document; the table
// can hold other documents later (quote history lives elsewhere today).
const calendarDocumentName = "availability"

// DocumentProvider persists the calendar as one JSONB document in
// Postgres. The whole store is written per save; there is no partial
// persistence.
type DocumentProvider struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewDocumentProvider(db *dbpg.DB) *DocumentProvider {
	return &DocumentProvider{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (p *DocumentProvider) LoadCalendarData(ctx context.Context) (*domain.RawCalendarPayload, error) {
	query := `SELECT data FROM calendar_documents WHERE name = $1`
	row, err := p.db.QueryRowWithRetry(ctx, p.strategy, query, calendarDocumentName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("load calendar document: %w", err)
	}

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan calendar document: %w", err)
	}

	var raw domain.RawCalendarPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode calendar document: %w", err)
	}
	return &raw, nil
}

func (p *DocumentProvider) SaveCalendarData(ctx context.Context, availability *domain.Availability) error {
	data, err := json.Marshal(availability)
	if err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}

	query := `INSERT INTO calendar_documents (name, data, updated_at)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (name) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at`
	if _, err := p.db.ExecWithRetry(ctx, p.strategy, query, calendarDocumentName, data, time.Now().UTC()); err != nil {
		return fmt.Errorf("save calendar document: %w", err)
	}
	return nil
}
