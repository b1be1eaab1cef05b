package db_models

import (
	"gorm.io/datatypes"
)

// TravelPlan is owned exclusively by its user; every query filters on UserID.
// Itinerary is the nested JSON the model produced, stored opaquely.
type TravelPlan struct {
	BaseModel
	UserID      string  `gorm:"index;not null"`
	Destination string  `gorm:"not null"`
	StartDate   *string `gorm:"size:10"` // YYYY-MM-DD
	EndDate     *string `gorm:"size:10"`
	Days        int
	Budget      float64
	Travelers   int
	Preferences string
	Itinerary   datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
}
