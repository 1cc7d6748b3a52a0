package repositories

import (
	"context"
	"errors"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"coursemap/internal/models/db_models"
)

type ICourseEmbeddingRepository interface {
	Insert(ctx context.Context, embedding *db_models.CourseEmbedding) error
	FindByCourseId(ctx context.Context, courseID string) (*db_models.CourseEmbedding, error)
	FindNearest(ctx context.Context, vector pgvector.Vector, excludeCourseID string, limit int) ([]RelatedCourseRow, error)
}

// RelatedCourseRow carries the similarity computed by the vector query
// alongside the embedding row fields.
type RelatedCourseRow struct {
	CourseID   string  `gorm:"column:course_id"`
	Topic      string  `gorm:"column:topic"`
	Title      string  `gorm:"column:title"`
	Similarity float64 `gorm:"column:similarity"`
}

type courseEmbeddingRepository struct {
	db *gorm.DB
}

func NewCourseEmbeddingRepository(db *gorm.DB) ICourseEmbeddingRepository {
	return &courseEmbeddingRepository{
		db: db,
	}
}

func (r *courseEmbeddingRepository) Insert(ctx context.Context, embedding *db_models.CourseEmbedding) error {
	return r.db.WithContext(ctx).Create(embedding).Error
}

func (r *courseEmbeddingRepository) FindByCourseId(ctx context.Context, courseID string) (*db_models.CourseEmbedding, error) {
	var embedding db_models.CourseEmbedding
	err := r.db.WithContext(ctx).First(&embedding, "course_id = ?", courseID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &embedding, nil
}

func (r *courseEmbeddingRepository) FindNearest(ctx context.Context, vector pgvector.Vector, excludeCourseID string, limit int) ([]RelatedCourseRow, error) {
	var results []RelatedCourseRow

	query := `
        SELECT course_id, topic, title, (1 - (embedding <=> ?)) AS similarity
        FROM course_embeddings
        WHERE course_id <> ?
          AND (1 - (embedding <=> ?)) > 0.5
        ORDER BY embedding <=> ?
        LIMIT ?
    `

	vecStr := vector.String()
	err := r.db.WithContext(ctx).
		Raw(query, vecStr, excludeCourseID, vecStr, vecStr, limit).
		Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}
