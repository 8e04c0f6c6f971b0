// Package jobstore persists the metadata of asynchronous batch jobs (a
// taxdump refresh, a whole-genome ORF scan) behind a Store interface with
// two backends: a flat JSON file and a SQLite table. Only job metadata is
// persisted here; the taxonomy engine and ORF results are never stored
// by this package and are always rebuilt from their own sources.
package jobstore

import "time"

// Job is one unit of tracked async work.
type Job struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"` // e.g. "orf-scan", "taxdump-refresh"
	State     string    `json:"state"` // "queued", "running", "done", "failed"
	Message   string    `json:"message"`
	Params    string    `json:"params"` // opaque JSON blob, kind-specific
	Result    string    `json:"result"` // opaque, kind-specific (e.g. "12 orfs" for "orf-scan")
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists and retrieves the full job set. Implementations need not
// support concurrent writers; callers serialize access themselves.
type Store interface {
	Save(jobs []Job) error
	Load() ([]Job, error)
	Close() error
}

// Open builds a Store for driver ("json" or "sqlite") backed by path. An
// unrecognised driver defaults to "json", matching Config's zero value.
func Open(driver, path string) (Store, error) {
	switch driver {
	case "sqlite":
		return openSQLiteStore(path)
	default:
		return &jsonStore{path: path}, nil
	}
}
