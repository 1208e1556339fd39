package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tradewell/tradelog-backend/internal/models"
)

type JournalRepo struct {
	pool *pgxpool.Pool
}

func NewJournalRepo(pool *pgxpool.Pool) *JournalRepo {
	return &JournalRepo{pool: pool}
}

func (r *JournalRepo) Create(ctx context.Context, e *models.JournalEntry) (*models.JournalEntry, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO journal_entries
		 (id, user_id, entry_date, emotion_before, emotion_after, lesson_learned)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 RETURNING *`,
		uuid.New(), e.UserID, e.EntryDate, e.EmotionBefore, e.EmotionAfter, e.LessonLearned,
	)
	return scanEntry(row)
}

// ListByUser returns a user's journal entries, newest entry date first.
func (r *JournalRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.JournalEntry, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT * FROM journal_entries WHERE user_id = $1 ORDER BY entry_date DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEntries(rows)
}

// --- scan helpers ---

func scanEntry(row scannable) (*models.JournalEntry, error) {
	var e models.JournalEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.EntryDate,
		&e.EmotionBefore, &e.EmotionAfter, &e.LessonLearned, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEntries(rows rowsIter) ([]models.JournalEntry, error) {
	var out []models.JournalEntry
	for rows.Next() {
		var e models.JournalEntry
		if err := rows.Scan(
			&e.ID, &e.UserID, &e.EntryDate,
			&e.EmotionBefore, &e.EmotionAfter, &e.LessonLearned, &e.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
