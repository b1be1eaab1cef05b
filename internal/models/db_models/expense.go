package db_models

import "github.com/google/uuid"

// Expense rows are append-only; they disappear only when the owning plan is
// deleted.
type Expense struct {
	BaseModel
	UserID      string    `gorm:"index;not null"`
	PlanID      uuid.UUID `gorm:"type:uuid;index;not null"`
	Category    string
	Amount      float64
	Description string
	Date        string `gorm:"size:32"`
}
