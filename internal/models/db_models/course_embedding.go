package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

type CourseEmbedding struct {
	CourseID  uuid.UUID `gorm:"type:uuid;primaryKey;column:course_id"`
	Topic     string
	Title     string
	Topics    pq.StringArray  `gorm:"type:text[]"`
	Embedding pgvector.Vector `gorm:"type:vector(768)"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
}
