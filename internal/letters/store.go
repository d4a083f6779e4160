package letters

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Store struct {
	DB *sql.DB
}

var ErrNotFound = errors.New("not found")

type Letter struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	CreatedAt time.Time `json:"created_at"`
}

func (s *Store) Record(ctx context.Context, sessionID, fileName, filePath string) (string, error) {
	id := uuid.NewString()
	const q = `
		INSERT INTO sanction_letters (id, session_id, file_name, file_path)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := s.DB.ExecContext(ctx, q, id, sessionID, fileName, filePath); err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetByFileName(ctx context.Context, fileName string) (*Letter, error) {
	const q = `
		SELECT id, session_id, file_name, file_path, created_at
		FROM sanction_letters
		WHERE file_name = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`
	var l Letter
	err := s.DB.QueryRowContext(ctx, q, fileName).Scan(&l.ID, &l.SessionID, &l.FileName, &l.FilePath, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &l, nil
}

func (s *Store) List(ctx context.Context, limit int) ([]Letter, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	const q = `
		SELECT id, session_id, file_name, file_path, created_at
		FROM sanction_letters
		ORDER BY created_at DESC
		LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Letter
	for rows.Next() {
		var l Letter
		if err := rows.Scan(&l.ID, &l.SessionID, &l.FileName, &l.FilePath, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
