package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Journal adalah arsip pesanan lokal: append-only, status boleh berubah,
// baris tidak pernah dihapus. Sheet remote tetap system of record; journal
// ini yang dibaca seller hub supaya tidak tergantung latensi sheet.
type Journal struct{ DB *pgxpool.Pool }

var (
	ErrNotFound      = errors.New("order not found")
	ErrBadTransition = errors.New("illegal status transition")
)

// Append: idempotent via order id (worker bisa menerima event yang sama
// dua kali). Kalau id sudah ada, tidak ada yang ditulis ulang.
func (j *Journal) Append(ctx context.Context, o Order, items []OrderItem) (inserted bool, err error) {
	tx, err := j.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	ct, err := tx.Exec(ctx, `
		INSERT INTO orders(id, customer_name, phone, address, items_summary, total, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$8)
		ON CONFLICT (id) DO NOTHING
	`, o.ID, o.CustomerName, o.Phone, o.Address, o.ItemsSummary, o.Total, string(o.Status), o.CreatedAt)
	if err != nil {
		return false, err
	}
	if ct.RowsAffected() == 0 {
		return false, tx.Commit(ctx)
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items(order_id, product_id, name, qty, price)
			VALUES ($1,$2,$3,$4,$5)
		`, o.ID, it.ProductID, it.Name, it.Qty, it.Price); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateStatus checks the transition table before writing.
func (j *Journal) UpdateStatus(ctx context.Context, orderID string, to Status) (from Status, err error) {
	tx, err := j.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return "", err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var cur string
	err = tx.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1 FOR UPDATE`, orderID).Scan(&cur)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	from = Status(cur)
	if !CanTransition(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrBadTransition, from, to)
	}

	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=$3 WHERE id=$1`,
		orderID, string(to), time.Now().UTC()); err != nil {
		return from, err
	}
	return from, tx.Commit(ctx)
}

func (j *Journal) Get(ctx context.Context, orderID string) (Order, error) {
	var o Order
	var st string
	err := j.DB.QueryRow(ctx, `
		SELECT id, customer_name, phone, address, items_summary, total, status, created_at, updated_at
		FROM orders WHERE id=$1`, orderID).
		Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.ItemsSummary, &o.Total, &st, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrNotFound
	}
	if err != nil {
		return Order{}, err
	}
	o.Status = Status(st)
	return o, nil
}

func (j *Journal) List(ctx context.Context) ([]Order, error) {
	rows, err := j.DB.Query(ctx, `
		SELECT id, customer_name, phone, address, items_summary, total, status, created_at, updated_at
		FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var o Order
		var st string
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &o.ItemsSummary,
			&o.Total, &st, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		o.Status = Status(st)
		out = append(out, o)
	}
	return out, rows.Err()
}
