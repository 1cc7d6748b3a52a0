package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"coursemap/internal/models/db_models"
	"coursemap/internal/models/response_models"
	"coursemap/internal/repositories"
	"coursemap/pkg/utils"
)

type SuggestionServiceInterface interface {
	IndexCourse(ctx context.Context, course *db_models.Course, roadmap *response_models.Roadmap) error
	RelatedCourses(ctx context.Context, courseID string) ([]response_models.RelatedCourseResponse, error)
}

// SuggestionService embeds saved courses so similar ones can be surfaced
// next to a roadmap.
type SuggestionService struct {
	aiClient      utils.AIClientInterface
	embeddingRepo repositories.ICourseEmbeddingRepository
}

func NewSuggestionService(aiClient utils.AIClientInterface, embeddingRepo repositories.ICourseEmbeddingRepository) SuggestionServiceInterface {
	return &SuggestionService{
		aiClient:      aiClient,
		embeddingRepo: embeddingRepo,
	}
}

func (s *SuggestionService) IndexCourse(ctx context.Context, course *db_models.Course, roadmap *response_models.Roadmap) error {
	topics := flattenTopics(roadmap)

	text := course.Topic + " " + course.Title + " " + strings.Join(topics, " ")
	vector, err := s.aiClient.GetEmbedding(ctx, text)
	if err != nil {
		return fmt.Errorf("embedding course: %w", err)
	}

	embedding := &db_models.CourseEmbedding{
		CourseID:  course.ID,
		Topic:     course.Topic,
		Title:     course.Title,
		Topics:    topics,
		Embedding: vector,
	}
	return s.embeddingRepo.Insert(ctx, embedding)
}

func (s *SuggestionService) RelatedCourses(ctx context.Context, courseID string) ([]response_models.RelatedCourseResponse, error) {
	embedding, err := s.embeddingRepo.FindByCourseId(ctx, courseID)
	if err != nil {
		log.Printf("loading embedding for course %s failed: %v", courseID, err)
		return nil, utils.ErrDatabaseError
	}
	if embedding == nil {
		return nil, utils.ErrCourseNotFound
	}

	rows, err := s.embeddingRepo.FindNearest(ctx, embedding.Embedding, courseID, 5)
	if err != nil {
		log.Printf("related course lookup for %s failed: %v", courseID, err)
		return nil, utils.ErrDatabaseError
	}

	related := make([]response_models.RelatedCourseResponse, 0, len(rows))
	for _, row := range rows {
		related = append(related, response_models.RelatedCourseResponse{
			ID:         row.CourseID,
			Topic:      row.Topic,
			Title:      row.Title,
			Similarity: row.Similarity,
		})
	}
	return related, nil
}

func flattenTopics(roadmap *response_models.Roadmap) []string {
	var topics []string
	for _, m := range roadmap.Modules {
		topics = append(topics, m.Topics...)
	}
	return topics
}
