package memo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines methods for accessing memo records.
type Repository interface {
	Create(ctx context.Context, m *Memo) error
	GetByID(ctx context.Context, id string) (*Memo, error)
	// ListVisible returns unexpired memos addressed to the given email,
	// broadcast to everyone, or sent by the given user, oldest first.
	ListVisible(ctx context.Context, email, userID string) ([]*Memo, error)
	Delete(ctx context.Context, id string) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

// NewPgxRepository creates a Repository backed by PostgreSQL.
func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

func (r *pgxRepository) Create(ctx context.Context, m *Memo) error {
	const query = `
		INSERT INTO public.memos (id, sender_id, recipient, content, created_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query, m.ID, m.SenderID, m.Recipient, m.Content, m.CreatedAt, m.ExpiresAt)
	if err != nil {
		return fmt.Errorf("create memo failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id string) (*Memo, error) {
	const query = `
		SELECT id, sender_id, recipient, content, created_at, expires_at
		FROM public.memos
		WHERE id = $1
	`
	var m Memo
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.SenderID, &m.Recipient, &m.Content, &m.CreatedAt, &m.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get memo failed: %w", err)
	}
	return &m, nil
}

func (r *pgxRepository) ListVisible(ctx context.Context, email, userID string) ([]*Memo, error) {
	const query = `
		SELECT id, sender_id, recipient, content, created_at, expires_at
		FROM public.memos
		WHERE (recipient = $1 OR recipient = $2 OR sender_id = $3)
		  AND expires_at > now()
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, BroadcastRecipient, email, userID)
	if err != nil {
		return nil, fmt.Errorf("list memos failed: %w", err)
	}
	defer rows.Close()

	var memos []*Memo
	for rows.Next() {
		var m Memo
		if err := rows.Scan(&m.ID, &m.SenderID, &m.Recipient, &m.Content, &m.CreatedAt, &m.ExpiresAt); err != nil {
			return nil, fmt.Errorf("scan memo failed: %w", err)
		}
		memos = append(memos, &m)
	}
	return memos, nil
}

func (r *pgxRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM public.memos WHERE id = $1`
	ct, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete memo failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
