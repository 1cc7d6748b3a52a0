package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursemap/internal/models/db_models"
	"coursemap/internal/models/request_models"
	"coursemap/internal/models/response_models"
	"coursemap/internal/repositories"
	"coursemap/pkg/utils"
)

const (
	generationTimeout = 30 * time.Second
	maxTopicLength    = 500
)

type CourseServiceInterface interface {
	GenerateQuestions(ctx context.Context, topic string) ([]response_models.Question, error)
	GenerateRoadmap(ctx context.Context, topic string, answers []request_models.AnsweredQuestion) (*response_models.Roadmap, error)
	SaveCourse(ctx context.Context, accountID string, request request_models.SaveCourseRequest) (*response_models.CourseResponse, error)
	ListCourses(ctx context.Context, accountID string) ([]response_models.CourseResponse, error)
	GetCourse(ctx context.Context, courseID string) (*response_models.CourseResponse, error)
}

type CourseService struct {
	aiClient    utils.AIClientInterface
	courseRepo  repositories.CourseRepository
	suggestions SuggestionServiceInterface
}

func NewCourseService(
	aiClient utils.AIClientInterface,
	courseRepo repositories.CourseRepository,
	suggestions SuggestionServiceInterface,
) CourseServiceInterface {
	return &CourseService{
		aiClient:    aiClient,
		courseRepo:  courseRepo,
		suggestions: suggestions,
	}
}

// GenerateQuestions asks the model for diagnostic questions on topic. The
// call is single-shot: no retry, no caching, one bounded model invocation.
// Everything past input validation collapses into ErrQuestionGeneration with
// the cause logged server-side only.
func (s *CourseService) GenerateQuestions(ctx context.Context, topic string) ([]response_models.Question, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, utils.ErrTopicRequired
	}
	if len([]rune(topic)) > maxTopicLength {
		return nil, utils.ErrTopicTooLong
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.aiClient.GenerateJSON(ctx, buildQuestionsPrompt(topic))
	if err != nil {
		log.Printf("question generation failed: %v", err)
		return nil, utils.ErrQuestionGeneration
	}

	var payload struct {
		Questions []response_models.Question `json:"questions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		log.Printf("question generation returned unexpected JSON: %v", err)
		return nil, utils.ErrQuestionGeneration
	}
	if err := validateQuestions(payload.Questions); err != nil {
		log.Printf("question generation schema check failed: %v", err)
		return nil, utils.ErrQuestionGeneration
	}

	return payload.Questions, nil
}

// GenerateRoadmap turns the answered diagnostic questions into a course
// roadmap. Same single-shot, collapse-to-generic-error policy as questions.
func (s *CourseService) GenerateRoadmap(ctx context.Context, topic string, answers []request_models.AnsweredQuestion) (*response_models.Roadmap, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, utils.ErrTopicRequired
	}
	if len(answers) == 0 {
		return nil, utils.ErrAnswersRequired
	}

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	raw, err := s.aiClient.GenerateJSON(ctx, buildRoadmapPrompt(topic, answers))
	if err != nil {
		log.Printf("roadmap generation failed: %v", err)
		return nil, utils.ErrRoadmapGeneration
	}

	var roadmap response_models.Roadmap
	if err := json.Unmarshal([]byte(raw), &roadmap); err != nil {
		log.Printf("roadmap generation returned unexpected JSON: %v", err)
		return nil, utils.ErrRoadmapGeneration
	}
	if err := validateRoadmap(&roadmap); err != nil {
		log.Printf("roadmap generation schema check failed: %v", err)
		return nil, utils.ErrRoadmapGeneration
	}

	return &roadmap, nil
}

func (s *CourseService) SaveCourse(ctx context.Context, accountID string, request request_models.SaveCourseRequest) (*response_models.CourseResponse, error) {
	topic := strings.TrimSpace(request.Topic)
	if topic == "" {
		return nil, utils.ErrTopicRequired
	}

	roadmap, err := ParseRoadmapPayload(request.Roadmap)
	if err != nil {
		return nil, err
	}

	owner, err := uuid.Parse(accountID)
	if err != nil {
		return nil, utils.ErrAccountNotFound
	}

	payload, err := json.Marshal(roadmap)
	if err != nil {
		return nil, utils.ErrInvalidRoadmap
	}

	course := &db_models.Course{
		AccountID:   owner,
		Topic:       topic,
		Title:       roadmap.Title,
		Description: roadmap.Description,
		Payload:     string(payload),
	}
	if err := s.courseRepo.Insert(ctx, course); err != nil {
		log.Printf("saving course failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	// Indexing is best-effort: a missing embedding only degrades the
	// related-courses lookup, it must not fail the save.
	if err := s.suggestions.IndexCourse(ctx, course, roadmap); err != nil {
		log.Printf("indexing course %s failed: %v", course.ID, err)
	}

	return courseToResponse(course, roadmap), nil
}

func (s *CourseService) ListCourses(ctx context.Context, accountID string) ([]response_models.CourseResponse, error) {
	courses, err := s.courseRepo.FindByAccount(ctx, accountID)
	if err != nil {
		log.Printf("listing courses failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.CourseResponse, 0, len(courses))
	for i := range courses {
		responses = append(responses, *courseToResponse(&courses[i], nil))
	}
	return responses, nil
}

func (s *CourseService) GetCourse(ctx context.Context, courseID string) (*response_models.CourseResponse, error) {
	course, err := s.courseRepo.FindById(ctx, courseID)
	if err != nil {
		log.Printf("loading course %s failed: %v", courseID, err)
		return nil, utils.ErrDatabaseError
	}
	if course == nil {
		return nil, utils.ErrCourseNotFound
	}

	roadmap, err := ParseRoadmapPayload([]byte(course.Payload))
	if err != nil {
		return nil, err
	}

	return courseToResponse(course, roadmap), nil
}

func courseToResponse(course *db_models.Course, roadmap *response_models.Roadmap) *response_models.CourseResponse {
	return &response_models.CourseResponse{
		ID:          course.ID.String(),
		Topic:       course.Topic,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
		Roadmap:     roadmap,
	}
}

// validateQuestions enforces field shape, not cardinality. The prompt asks
// for exactly 4 questions but a usable reply with a different count is
// accepted; see DESIGN.md.
func validateQuestions(questions []response_models.Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("no questions in response")
	}
	for i, q := range questions {
		if strings.TrimSpace(q.ID) == "" {
			return fmt.Errorf("question %d has no id", i+1)
		}
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d has no text", i+1)
		}
	}
	return nil
}

func validateRoadmap(roadmap *response_models.Roadmap) error {
	if strings.TrimSpace(roadmap.Title) == "" {
		return fmt.Errorf("roadmap has no title")
	}
	if len(roadmap.Modules) == 0 {
		return fmt.Errorf("roadmap has no modules")
	}
	for i, m := range roadmap.Modules {
		if strings.TrimSpace(m.Title) == "" {
			return fmt.Errorf("module %d has no title", i+1)
		}
		if len(m.Topics) == 0 {
			return fmt.Errorf("module %d has no topics", i+1)
		}
	}
	return nil
}

func buildQuestionsPrompt(topic string) string {
	return fmt.Sprintf(`
You are an expert course designer.

The user wants to learn: "%s"

Generate exactly 4 short diagnostic questions to estimate the user's familiarity level.

IMPORTANT:
- Each question must be independent from the others.
- Do NOT build questions that logically follow one another.
- Do NOT progressively increase difficulty.
- Do NOT reference previous questions.
- Avoid very specific technical subtopics.
- Keep questions general and broad.
- Keep them simple and neutral.
- Each question must be ONE sentence.
- Maximum 14 words per question.
- Avoid definitions.
- Avoid multi-part questions.
- Make them feel casual and natural.

The goal is to capture different signals:
- Exposure
- Confidence
- Practical experience
- Conceptual familiarity

Return **JSON only**, exactly this shape:
{"questions":[{"id":"q1","text":"..."}]}
`, topic)
}

func buildRoadmapPrompt(topic string, answers []request_models.AnsweredQuestion) string {
	var formatted strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&formatted, "Q%d: %s\nA%d: %s\n\n", i+1, a.Question, i+1, a.Answer)
	}

	return fmt.Sprintf(`
You are an expert course architect.

The user wants to learn: "%s"

Based on their answers below, determine their knowledge level and create a structured learning roadmap.

User Answers:
%s
Create:
- A course title
- A short course description
- 4 to 8 structured modules
- Each module must contain 3-6 specific topics

Return **JSON only**, exactly this shape:
{"title":"...","description":"...","modules":[{"title":"...","topics":["..."]}]}
`, topic, formatted.String())
}
