package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradewell/tradelog-backend/internal/models"
)

type TradeRepo struct {
	pool *pgxpool.Pool
}

func NewTradeRepo(pool *pgxpool.Pool) *TradeRepo {
	return &TradeRepo{pool: pool}
}

func (r *TradeRepo) Create(ctx context.Context, t *models.Trade) (*models.Trade, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO trades
		 (id, user_id, trade_date, pair, direction, entry_price, exit_price,
		  lot_size, stop_loss, take_profit, profit_loss, notes)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		 RETURNING *`,
		uuid.New(), t.UserID, t.TradeDate, t.Pair, t.Direction,
		t.EntryPrice, t.ExitPrice, t.LotSize, t.StopLoss, t.TakeProfit,
		t.ProfitLoss, t.Notes,
	)
	return scanTrade(row)
}

// ListByUser returns a user's trades, newest trade date first.
func (r *TradeRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Trade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT * FROM trades WHERE user_id = $1 ORDER BY trade_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrades(rows)
}

// ListChronological returns a user's trades ascending by trade date, for
// equity-curve accumulation. Date ties keep insertion order.
func (r *TradeRepo) ListChronological(ctx context.Context, userID uuid.UUID) ([]models.Trade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT * FROM trades WHERE user_id = $1 ORDER BY trade_date ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrades(rows)
}

// ListTrailingWeek returns a user's trades dated within the trailing seven
// days, inclusive of today.
func (r *TradeRepo) ListTrailingWeek(ctx context.Context, userID uuid.UUID) ([]models.Trade, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT * FROM trades
		 WHERE user_id = $1 AND trade_date >= CURRENT_DATE - INTERVAL '7 days'
		 ORDER BY trade_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTrades(rows)
}

// Update replaces every field of a trade except its id and owner.
// Returns (nil, nil) when no trade has the id.
func (r *TradeRepo) Update(ctx context.Context, t *models.Trade) (*models.Trade, error) {
	row := r.pool.QueryRow(ctx,
		`UPDATE trades
		 SET trade_date=$1, pair=$2, direction=$3, entry_price=$4, exit_price=$5,
		     lot_size=$6, stop_loss=$7, take_profit=$8, profit_loss=$9, notes=$10
		 WHERE id=$11
		 RETURNING *`,
		t.TradeDate, t.Pair, t.Direction, t.EntryPrice, t.ExitPrice,
		t.LotSize, t.StopLoss, t.TakeProfit, t.ProfitLoss, t.Notes,
		t.ID,
	)
	updated, err := scanTrade(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a trade by id. Returns false when no row matched.
func (r *TradeRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM trades WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// --- scan helpers ---

func scanTrade(row scannable) (*models.Trade, error) {
	var t models.Trade
	var sl, tp decimal.NullDecimal
	err := row.Scan(
		&t.ID, &t.UserID, &t.TradeDate, &t.Pair, &t.Direction,
		&t.EntryPrice, &t.ExitPrice, &t.LotSize, &sl, &tp,
		&t.ProfitLoss, &t.Notes, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if sl.Valid {
		d := sl.Decimal
		t.StopLoss = &d
	}
	if tp.Valid {
		d := tp.Decimal
		t.TakeProfit = &d
	}
	return &t, nil
}

func collectTrades(rows rowsIter) ([]models.Trade, error) {
	var out []models.Trade
	for rows.Next() {
		var t models.Trade
		var sl, tp decimal.NullDecimal
		if err := rows.Scan(
			&t.ID, &t.UserID, &t.TradeDate, &t.Pair, &t.Direction,
			&t.EntryPrice, &t.ExitPrice, &t.LotSize, &sl, &tp,
			&t.ProfitLoss, &t.Notes, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		if sl.Valid {
			d := sl.Decimal
			t.StopLoss = &d
		}
		if tp.Valid {
			d := tp.Decimal
			t.TakeProfit = &d
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
