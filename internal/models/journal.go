package models

import (
	"time"

	"github.com/google/uuid"
)

type JournalEntry struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	EntryDate     time.Time `json:"entry_date"`
	EmotionBefore string    `json:"emotion_before"`
	EmotionAfter  string    `json:"emotion_after"`
	LessonLearned string    `json:"lesson_learned"`
	CreatedAt     time.Time `json:"created_at"`
}
