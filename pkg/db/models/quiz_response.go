package models

import (
	"time"

	"github.com/google/uuid"
)

// QuizResponse stores one answer to one onboarding question. Rows are upserted
// on (user_id, question_id) so re-submitting the quiz overwrites in place.
type QuizResponse struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;column:user_id;not null;uniqueIndex:idx_quiz_user_question"`
	QuestionID   int       `gorm:"column:question_id;not null;uniqueIndex:idx_quiz_user_question"`
	QuestionText string    `gorm:"column:question_text;not null"`
	Answer       string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}
