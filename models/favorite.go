package models

import (
	"time"

	"github.com/google/uuid"
)

// Favorite pins one member for one user. The pair is the key: adding
// twice is a no-op, removing an absent row is a no-op.
type Favorite struct {
	UserID     uuid.UUID `json:"user_id" gorm:"type:uuid;primaryKey"`
	BioguideID string    `json:"bioguide_id" gorm:"type:varchar(20);primaryKey"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Favorite) TableName() string {
	return "favorites"
}

// FavoritesResponse returns both the raw id set (what the directory
// filter consumes) and the hydrated members (what the favorites page
// renders).
type FavoritesResponse struct {
	BioguideIDs []string `json:"bioguide_ids"`
	Members     []Member `json:"members"`
}
