package telemetry

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/liuhaotian2024-prog/Ryder-Core-Simulation/internal/thermo"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	session_id   TEXT PRIMARY KEY,
	label        TEXT,
	config_json  TEXT NOT NULL,
	created_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS cieu_log (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id      TEXT NOT NULL,
	step            INTEGER NOT NULL,
	observation_raw REAL NOT NULL,
	heat            REAL NOT NULL,
	viscosity       REAL NOT NULL,
	phase           TEXT NOT NULL,
	amplitude       REAL NOT NULL,
	frequency       REAL NOT NULL,
	waveform        REAL NOT NULL,
	target          REAL NOT NULL,
	observed        REAL NOT NULL,
	reward          REAL NOT NULL,
	FOREIGN KEY (session_id) REFERENCES sessions(session_id)
);

CREATE INDEX IF NOT EXISTS idx_cieu_session_step ON cieu_log(session_id, step);
`

// #endregion schema

// #region store

// Store persists controller sessions and their CIEU logs in SQLite.
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// #endregion store

// #region create-session

// CreateSession registers a new session and returns its ID. configJSON is the
// serialized configuration set the session runs with.
func (s *Store) CreateSession(label, configJSON string) (string, error) {
	id := uuid.New().String()
	_, err := s.db.Exec(
		`INSERT INTO sessions (session_id, label, config_json, created_at) VALUES (?, ?, ?, ?)`,
		id, label, configJSON, time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

// #endregion create-session

// #region append-steps

// AppendSteps writes a batch of step rows in one transaction.
func (s *Store) AppendSteps(sessionID string, rows []StepRow) error {
	if len(rows) == 0 {
		return nil
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO cieu_log (session_id, step, observation_raw, heat, viscosity, phase,
			amplitude, frequency, waveform, target, observed, reward)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		r := row.Record
		_, err := stmt.Exec(
			sessionID, r.Step, row.RawObservation,
			r.Context.Heat, r.Context.Viscosity, string(r.Context.Phase),
			r.Action.Amplitude, r.Action.Frequency, r.Action.Waveform,
			r.Target, r.Observed, r.Reward,
		)
		if err != nil {
			return fmt.Errorf("insert step %d: %w", r.Step, err)
		}
	}
	return tx.Commit()
}

// #endregion append-steps

// #region load-session

// LoadSession reads all step rows of a session in step order.
func (s *Store) LoadSession(sessionID string) ([]StepRow, error) {
	rows, err := s.db.Query(
		`SELECT step, observation_raw, heat, viscosity, phase, amplitude, frequency,
			waveform, target, observed, reward
		 FROM cieu_log WHERE session_id = ? ORDER BY step ASC`, sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	defer rows.Close()

	var out []StepRow
	for rows.Next() {
		var row StepRow
		var phase string
		err := rows.Scan(
			&row.Record.Step, &row.RawObservation,
			&row.Record.Context.Heat, &row.Record.Context.Viscosity, &phase,
			&row.Record.Action.Amplitude, &row.Record.Action.Frequency, &row.Record.Action.Waveform,
			&row.Record.Target, &row.Record.Observed, &row.Record.Reward,
		)
		if err != nil {
			return nil, fmt.Errorf("scan step row: %w", err)
		}
		row.Record.Context.Phase = thermo.Phase(phase)
		out = append(out, row)
	}
	return out, rows.Err()
}

// SessionConfig returns the serialized configuration a session was run with.
func (s *Store) SessionConfig(sessionID string) (string, error) {
	var configJSON string
	err := s.db.QueryRow(
		`SELECT config_json FROM sessions WHERE session_id = ?`, sessionID,
	).Scan(&configJSON)
	if err != nil {
		return "", fmt.Errorf("session config %s: %w", sessionID, err)
	}
	return configJSON, nil
}

// #endregion load-session

// #region list-sessions

// ListSessions returns stored sessions, most recent first.
func (s *Store) ListSessions() ([]SessionInfo, error) {
	rows, err := s.db.Query(
		`SELECT s.session_id, COALESCE(s.label, ''), s.created_at, COUNT(c.id)
		 FROM sessions s LEFT JOIN cieu_log c ON c.session_id = s.session_id
		 GROUP BY s.session_id ORDER BY s.created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionInfo
	for rows.Next() {
		var info SessionInfo
		if err := rows.Scan(&info.ID, &info.Label, &info.CreatedAt, &info.Steps); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// #endregion list-sessions
