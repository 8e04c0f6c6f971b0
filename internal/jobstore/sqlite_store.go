package jobstore

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS jobs (
	id TEXT PRIMARY KEY,
	kind TEXT,
	state TEXT,
	message TEXT,
	params TEXT,
	result TEXT,
	created_at TEXT,
	updated_at TEXT
)`

type sqliteStore struct {
	db *sql.DB
}

func openSQLiteStore(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &sqliteStore{db: db}, nil
}

// Save replaces the entire jobs table with jobs, matching jsonStore's
// whole-set overwrite semantics.
func (s *sqliteStore) Save(jobs []Job) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM jobs"); err != nil {
		tx.Rollback()
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO jobs
		(id, kind, state, message, params, result, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()
	for _, j := range jobs {
		if _, err := stmt.Exec(j.ID, j.Kind, j.State, j.Message, j.Params, j.Result,
			j.CreatedAt.UTC().Format(timeLayout), j.UpdatedAt.UTC().Format(timeLayout)); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (s *sqliteStore) Load() ([]Job, error) {
	rows, err := s.db.Query(`SELECT id, kind, state, message, params, result, created_at, updated_at FROM jobs`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var j Job
		var created, updated string
		if err := rows.Scan(&j.ID, &j.Kind, &j.State, &j.Message, &j.Params, &j.Result, &created, &updated); err != nil {
			return nil, err
		}
		j.CreatedAt = parseTime(created)
		j.UpdatedAt = parseTime(updated)
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (s *sqliteStore) Close() error { return s.db.Close() }
