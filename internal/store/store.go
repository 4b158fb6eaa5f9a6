// Package store persists job descriptions and analysis results in an
// embedded bbolt database. Values are JSON-encoded under per-kind buckets;
// writes are transactional, so a crash mid-write cannot corrupt previously
// committed rows.
package store

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	bolt "go.etcd.io/bbolt"
)

var (
	bucketJobs    = []byte("jobs")
	bucketResults = []byte("results")
)

// Store wraps the bbolt database handle.
type Store struct {
	db *bolt.DB
}

// Open opens (or creates) the database at path and ensures the buckets
// exist.
func Open(path string) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketJobs, bucketResults} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("bbolt init: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Job is a stored job description: the keyword source for analysis runs.
type Job struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Keywords    []string  `json:"keywords"`
	CreatedAt   time.Time `json:"created_at"`
}

// ResultRow is one persisted analysis outcome, one row per analyzed CV.
type ResultRow struct {
	ID          uint64        `json:"id"`
	CVFile      string        `json:"cv_file"`
	JobTitle    string        `json:"job_title,omitempty"`
	Algorithm   string        `json:"algorithm"`
	Matched     []string      `json:"matched_keywords"`
	Missing     []string      `json:"missing_keywords"`
	Score       float64       `json:"relevance_score"`
	Comparisons int           `json:"comparisons"`
	Elapsed     time.Duration `json:"elapsed"`
	CreatedAt   time.Time     `json:"created_at"`
}

// itob encodes a sequence number as a big-endian key, keeping bucket
// iteration in insertion order.
func itob(id uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, id)
	return key
}

// SaveJob stores a job description and returns its assigned ID.
func (s *Store) SaveJob(job *Job) (uint64, error) {
	if strings.TrimSpace(job.Title) == "" {
		return 0, fmt.Errorf("job title is required")
	}
	if len(job.Keywords) == 0 {
		return 0, fmt.Errorf("job %q has no keywords", job.Title)
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketJobs)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		job.ID = id
		if job.CreatedAt.IsZero() {
			job.CreatedAt = time.Now().UTC()
		}

		data, err := json.Marshal(job)
		if err != nil {
			return fmt.Errorf("marshal job: %w", err)
		}
		return b.Put(itob(id), data)
	})
	if err != nil {
		return 0, err
	}

	return job.ID, nil
}

// Jobs returns all stored job descriptions in insertion order.
func (s *Store) Jobs() ([]*Job, error) {
	var jobs []*Job

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketJobs).ForEach(func(_, v []byte) error {
			var job Job
			if err := json.Unmarshal(v, &job); err != nil {
				return fmt.Errorf("unmarshal job: %w", err)
			}
			jobs = append(jobs, &job)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return jobs, nil
}

// FindJob returns the stored job with the given title, or nil when absent.
// Titles are compared case-insensitively.
func (s *Store) FindJob(title string) (*Job, error) {
	jobs, err := s.Jobs()
	if err != nil {
		return nil, err
	}

	for _, job := range jobs {
		if strings.EqualFold(job.Title, title) {
			return job, nil
		}
	}
	return nil, nil
}

// SaveResult stores one analysis result row and returns its assigned ID.
func (s *Store) SaveResult(row *ResultRow) (uint64, error) {
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketResults)
		id, err := b.NextSequence()
		if err != nil {
			return err
		}

		row.ID = id
		if row.CreatedAt.IsZero() {
			row.CreatedAt = time.Now().UTC()
		}

		data, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		return b.Put(itob(id), data)
	})
	if err != nil {
		return 0, err
	}

	return row.ID, nil
}

// Results returns stored result rows in insertion order, filtered by job
// title when one is given.
func (s *Store) Results(jobTitle string) ([]*ResultRow, error) {
	var rows []*ResultRow

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketResults).ForEach(func(_, v []byte) error {
			var row ResultRow
			if err := json.Unmarshal(v, &row); err != nil {
				return fmt.Errorf("unmarshal result: %w", err)
			}
			if jobTitle == "" || strings.EqualFold(row.JobTitle, jobTitle) {
				rows = append(rows, &row)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
