package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sonic "github.com/bytedance/sonic"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Xenos72/NHLStatsAnalyzer1/internal/domain/selection"
)

const (
	selectSessionQuery = `SELECT id, selections, created_at, updated_at FROM analysis_sessions WHERE id = $1`
	upsertSessionQuery = `INSERT INTO analysis_sessions (id, selections, created_at, updated_at)
VALUES (:id, CAST(:selections AS jsonb), :created_at, :updated_at)
ON CONFLICT (id) DO UPDATE SET selections = EXCLUDED.selections, updated_at = EXCLUDED.updated_at`
	deleteSessionQuery = `DELETE FROM analysis_sessions WHERE id = $1`

	pqUndefinedTable = "42P01"
)

// SessionRepository stores sessions in analysis_sessions, one jsonb document
// of selections per row.
type SessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (selection.State, bool, error) {
	var row sessionTableModel
	if err := r.db.GetContext(ctx, &row, selectSessionQuery, sessionID); err != nil {
		if isNotFound(err) {
			return selection.State{}, false, nil
		}
		return selection.State{}, false, wrapQueryError("select session", err)
	}

	state, err := sessionFromRow(row)
	if err != nil {
		return selection.State{}, false, err
	}
	return state, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, state selection.State) error {
	row, err := sessionToRow(state)
	if err != nil {
		return err
	}
	if _, err := r.db.NamedExecContext(ctx, upsertSessionQuery, row); err != nil {
		return wrapQueryError("upsert session", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, deleteSessionQuery, sessionID); err != nil {
		return wrapQueryError("delete session", err)
	}
	return nil
}

func sessionToRow(state selection.State) (sessionTableModel, error) {
	raw, err := sonic.Marshal(toSelectionDocuments(state.Selections))
	if err != nil {
		return sessionTableModel{}, fmt.Errorf("encode selections: %w", err)
	}
	return sessionTableModel{
		ID:         state.SessionID,
		Selections: string(raw),
		CreatedAt:  state.CreatedAt.UTC(),
		UpdatedAt:  state.UpdatedAt.UTC(),
	}, nil
}

func sessionFromRow(row sessionTableModel) (selection.State, error) {
	var docs []selectionDocument
	if row.Selections != "" {
		if err := sonic.UnmarshalString(row.Selections, &docs); err != nil {
			return selection.State{}, fmt.Errorf("decode selections for session %s: %w", row.ID, err)
		}
	}
	return selection.State{
		SessionID:  row.ID,
		Selections: fromSelectionDocuments(docs),
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func wrapQueryError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pqUndefinedTable {
		return fmt.Errorf("%s: table missing, run migrations: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
