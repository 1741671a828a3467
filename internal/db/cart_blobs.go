package db

import (
	"context"
)

const getCartBlob = `-- name: GetCartBlob :one
SELECT cart_key, payload, updated_at
FROM cart_blobs
WHERE cart_key = $1
`

func (q *Queries) GetCartBlob(ctx context.Context, cartKey string) (CartBlob, error) {
	row := q.db.QueryRow(ctx, getCartBlob, cartKey)
	var i CartBlob
	err := row.Scan(&i.CartKey, &i.Payload, &i.UpdatedAt)
	return i, err
}

const upsertCartBlob = `-- name: UpsertCartBlob :exec
INSERT INTO cart_blobs (cart_key, payload)
VALUES ($1, $2)
ON CONFLICT (cart_key) DO UPDATE
    SET payload    = EXCLUDED.payload,
        updated_at = NOW()
`

type UpsertCartBlobParams struct {
	CartKey string
	Payload []byte
}

func (q *Queries) UpsertCartBlob(ctx context.Context, arg UpsertCartBlobParams) error {
	_, err := q.db.Exec(ctx, upsertCartBlob, arg.CartKey, arg.Payload)
	return err
}
