package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/petclub-shop/internal/db"
	"github.com/nikolayk812/petclub-shop/internal/port"
)

type cartStorage struct {
	q *db.Queries
}

func NewCartStorage(pool *pgxpool.Pool) (port.CartStorage, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &cartStorage{q: db.New(pool)}, nil
}

func NewCartStorageWithTx(tx pgx.Tx) port.CartStorage {
	return &cartStorage{q: db.New(tx)}
}

func (s *cartStorage) Load(ctx context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	blob, err := s.q.GetCartBlob(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("q.GetCartBlob: %w", err)
	}

	return blob.Payload, true, nil
}

func (s *cartStorage) Save(ctx context.Context, key string, blob []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	err := s.q.UpsertCartBlob(ctx, db.UpsertCartBlobParams{
		CartKey: key,
		Payload: blob,
	})
	if err != nil {
		return fmt.Errorf("q.UpsertCartBlob: %w", err)
	}

	return nil
}
