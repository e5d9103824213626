package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/sharefile/internal/common"
	"github.com/dmitrijs2005/sharefile/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, rec *Record) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		query := `insert into transfers (id, transfer_id, status, message, expires_in_days, error, created_at)
			values (?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query, rec.ID, rec.TransferID, string(rec.Status), rec.Message,
			rec.ExpiresInDays, rec.Error, rec.CreatedAt.UnixMilli())
		if err != nil {
			return fmt.Errorf("failed to insert transfer: %w", err)
		}

		for i, email := range rec.Recipients {
			_, err := tx.ExecContext(ctx,
				`insert into transfer_recipients (history_id, position, email) values (?, ?, ?)`,
				rec.ID, i, email)
			if err != nil {
				return fmt.Errorf("failed to insert recipient: %w", err)
			}
		}

		for i, f := range rec.Files {
			_, err := tx.ExecContext(ctx,
				`insert into transfer_files (history_id, position, name, size, mime_type) values (?, ?, ?, ?, ?)`,
				rec.ID, i, f.Name, f.Size, f.MimeType)
			if err != nil {
				return fmt.Errorf("failed to insert file: %w", err)
			}
		}

		return nil
	})
}

const selectTransfers = `select id, transfer_id, status, message, expires_in_days, error, created_at from transfers`

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Record, error) {
	row := r.db.QueryRowContext(ctx, selectTransfers+` where id=?`, id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select transfer: %w", err)
	}

	if err := r.loadDetails(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *SQLiteRepository) List(ctx context.Context, limit int) ([]*Record, error) {
	query := selectTransfers + ` order by created_at desc, rowid desc`
	args := []any{}
	if limit > 0 {
		query += ` limit ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error selecting transfers: %w", err)
	}
	defer rows.Close()

	var result []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// the single connection is free again once rows is drained
	for _, rec := range result {
		if err := r.loadDetails(ctx, rec); err != nil {
			return nil, err
		}
	}
	return result, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*Record, error) {
	rec := &Record{}
	var status string
	var createdAt int64
	if err := s.Scan(&rec.ID, &rec.TransferID, &status, &rec.Message, &rec.ExpiresInDays, &rec.Error, &createdAt); err != nil {
		return nil, err
	}
	rec.Status = Status(status)
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}

func (r *SQLiteRepository) loadDetails(ctx context.Context, rec *Record) error {
	rows, err := r.db.QueryContext(ctx,
		`select email from transfer_recipients where history_id=? order by position`, rec.ID)
	if err != nil {
		return fmt.Errorf("error selecting recipients: %w", err)
	}
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			rows.Close()
			return err
		}
		rec.Recipients = append(rec.Recipients, email)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return err
	}
	rows.Close()

	rows, err = r.db.QueryContext(ctx,
		`select name, size, mime_type from transfer_files where history_id=? order by position`, rec.ID)
	if err != nil {
		return fmt.Errorf("error selecting files: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.Name, &f.Size, &f.MimeType); err != nil {
			return err
		}
		rec.Files = append(rec.Files, f)
	}
	return rows.Err()
}
