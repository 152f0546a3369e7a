package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pable/go-poker-hud/internal/model"
)

// ImportRun is one recorded import.
type ImportRun struct {
	ID         string
	Source     string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is unfinished
	Parsed     int
	Inserted   int
	Skipped    int
}

// BeginImport records the start of an import from source and returns its run id.
func (db *DB) BeginImport(source string) (string, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO imports(id, source, started_at) VALUES (?, ?, ?)",
		id, source, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("begin import: %w", err)
	}
	return id, nil
}

// FinishImport stores the final counts of an import run.
func (db *DB) FinishImport(id string, parsed, inserted, skipped int) error {
	res, err := db.conn.Exec(`
		UPDATE imports SET finished_at = ?, parsed = ?, inserted = ?, skipped = ?
		WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339), parsed, inserted, skipped, id,
	)
	if err != nil {
		return fmt.Errorf("finish import: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("finish import: unknown run %s", id)
	}
	return nil
}

// ListImports returns every import run, newest first.
func (db *DB) ListImports() ([]ImportRun, error) {
	var out []ImportRun
	err := db.each(`
		SELECT id, source, started_at, finished_at, parsed, inserted, skipped
		FROM imports ORDER BY started_at DESC, rowid DESC`, nil,
		func(rows *sql.Rows) error {
			var (
				r        ImportRun
				started  string
				finished sql.NullString
			)
			if err := rows.Scan(&r.ID, &r.Source, &started, &finished, &r.Parsed, &r.Inserted, &r.Skipped); err != nil {
				return err
			}
			r.StartedAt, _ = time.Parse(time.RFC3339, started)
			if finished.Valid {
				r.FinishedAt, _ = time.Parse(time.RFC3339, finished.String)
			}
			out = append(out, r)
			return nil
		})
	return out, err
}

// SaveStatistics replaces the stored snapshot of every player in stats.
func (db *DB) SaveStatistics(stats model.StatsByPlayer) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR REPLACE INTO statistics(player, hands_played, payload, updated_at)
		VALUES (?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339)
	for name, ps := range stats {
		payload, err := json.Marshal(ps)
		if err != nil {
			return fmt.Errorf("encode statistics for %s: %w", name, err)
		}
		if _, err := stmt.Exec(name, ps.HandsPlayed, string(payload), now); err != nil {
			return fmt.Errorf("insert statistics for %s: %w", name, err)
		}
	}
	return tx.Commit()
}

// LoadStatistics returns the stored snapshot of every player.
func (db *DB) LoadStatistics() (model.StatsByPlayer, error) {
	out := make(model.StatsByPlayer)
	err := db.each("SELECT player, payload FROM statistics ORDER BY player", nil,
		func(rows *sql.Rows) error {
			var name, payload string
			if err := rows.Scan(&name, &payload); err != nil {
				return err
			}
			ps := model.NewPlayerStatistics(name)
			if err := json.Unmarshal([]byte(payload), ps); err != nil {
				return fmt.Errorf("decode statistics for %s: %w", name, err)
			}
			out[name] = ps
			return nil
		})
	if err != nil {
		return nil, err
	}
	return out, nil
}
