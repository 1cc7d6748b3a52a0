package db_models

import "github.com/google/uuid"

// Course is a saved roadmap snapshot. Payload holds the roadmap exactly as it
// was returned by the generation service; it is parsed and shape-checked again
// on every read, never trusted because it was valid when written.
type Course struct {
	BaseModel
	AccountID   uuid.UUID `gorm:"type:uuid;index"`
	Topic       string
	Title       string
	Description string
	Payload     string `gorm:"type:jsonb"`
}
