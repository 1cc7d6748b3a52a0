package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"coursemap/internal/models/db_models"
)

type CourseRepository interface {
	Insert(ctx context.Context, course *db_models.Course) error
	FindById(ctx context.Context, id string) (*db_models.Course, error)
	FindByAccount(ctx context.Context, accountID string) ([]db_models.Course, error)
}

type courseRepository struct {
	db *gorm.DB
}

func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{
		db: db,
	}
}

func (r *courseRepository) Insert(ctx context.Context, course *db_models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) FindById(ctx context.Context, id string) (*db_models.Course, error) {
	var course db_models.Course
	err := r.db.WithContext(ctx).First(&course, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &course, nil
}

func (r *courseRepository) FindByAccount(ctx context.Context, accountID string) ([]db_models.Course, error) {
	var courses []db_models.Course
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&courses).Error

	if err != nil {
		return nil, err
	}
	return courses, nil
}
