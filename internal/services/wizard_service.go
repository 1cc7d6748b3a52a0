package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"coursemap/internal/models/request_models"
	"coursemap/internal/models/response_models"
	mem "coursemap/pkg/memcache"
	"coursemap/pkg/utils"
)

const (
	wizardSessionTTL = 30 * time.Minute
	minTopicLength   = 5
)

type WizardServiceInterface interface {
	Start(ctx context.Context, topic string) (*response_models.WizardResponse, error)
	Get(sessionID string) (*response_models.WizardResponse, error)
	Answer(sessionID string, answer string) (*response_models.WizardResponse, error)
	Next(sessionID string) (*response_models.WizardResponse, error)
	Back(sessionID string) (*response_models.WizardResponse, error)
	Finish(ctx context.Context, sessionID string) (*response_models.Roadmap, error)
}

// WizardService runs the diagnostic wizard server-side: one session per
// topic intake, one question shown at a time, answers collected in the order
// the generation service delivered the questions.
type WizardService struct {
	courseService CourseServiceInterface
	store         mem.WizardSessionStore
}

func NewWizardService(courseService CourseServiceInterface, store mem.WizardSessionStore) WizardServiceInterface {
	return &WizardService{
		courseService: courseService,
		store:         store,
	}
}

func (w *WizardService) Start(ctx context.Context, topic string) (*response_models.WizardResponse, error) {
	topic = strings.TrimSpace(topic)
	if len([]rune(topic)) < minTopicLength {
		return nil, utils.ErrTopicTooShort
	}
	if len([]rune(topic)) > maxTopicLength {
		return nil, utils.ErrTopicTooLong
	}

	questions, err := w.courseService.GenerateQuestions(ctx, topic)
	if err != nil {
		return nil, err
	}

	items := make([]mem.WizardQA, len(questions))
	for i, q := range questions {
		items[i] = mem.WizardQA{
			QuestionID: q.ID,
			Question:   q.Text,
		}
	}

	session := &mem.WizardSession{
		ID:    uuid.New().String(),
		Topic: topic,
		Items: items,
	}
	w.store.Put(session, wizardSessionTTL)

	return snapshot(session), nil
}

func (w *WizardService) Get(sessionID string) (*response_models.WizardResponse, error) {
	session, ok := w.store.Get(sessionID)
	if !ok {
		return nil, utils.ErrSessionNotFound
	}
	return snapshot(session), nil
}

// Answer records the answer for the question currently shown. Blank answers
// are allowed; the step does not move.
func (w *WizardService) Answer(sessionID string, answer string) (*response_models.WizardResponse, error) {
	session, err := w.store.Update(sessionID, func(s *mem.WizardSession) error {
		if s.Submitting {
			return utils.ErrWizardBusy
		}
		s.Items[s.Step].Answer = answer
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return snapshot(session), nil
}

// Next advances one question. At the last question it is a no-op; the step
// never leaves [0, N-1].
func (w *WizardService) Next(sessionID string) (*response_models.WizardResponse, error) {
	session, err := w.store.Update(sessionID, func(s *mem.WizardSession) error {
		if s.Submitting {
			return utils.ErrWizardBusy
		}
		if s.Step < len(s.Items)-1 {
			s.Step++
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return snapshot(session), nil
}

func (w *WizardService) Back(sessionID string) (*response_models.WizardResponse, error) {
	session, err := w.store.Update(sessionID, func(s *mem.WizardSession) error {
		if s.Submitting {
			return utils.ErrWizardBusy
		}
		if s.Step > 0 {
			s.Step--
		}
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}
	return snapshot(session), nil
}

// Finish submits the answered questions for roadmap generation. Only valid
// at the last question, and only one submission may be in flight per session.
// On failure the session stays at the last step with all answers retained so
// Finish can be retried.
func (w *WizardService) Finish(ctx context.Context, sessionID string) (*response_models.Roadmap, error) {
	session, err := w.store.Update(sessionID, func(s *mem.WizardSession) error {
		if s.Submitting {
			return utils.ErrWizardBusy
		}
		if s.Step != len(s.Items)-1 {
			return utils.ErrWizardNotAtEnd
		}
		s.Submitting = true
		return nil
	})
	if err != nil {
		return nil, mapStoreError(err)
	}

	answers := make([]request_models.AnsweredQuestion, len(session.Items))
	for i, item := range session.Items {
		answers[i] = request_models.AnsweredQuestion{
			ID:       i + 1,
			Question: item.Question,
			Answer:   item.Answer,
		}
	}

	roadmap, err := w.courseService.GenerateRoadmap(ctx, session.Topic, answers)
	if err != nil {
		_, _ = w.store.Update(sessionID, func(s *mem.WizardSession) error {
			s.Submitting = false
			return nil
		})
		return nil, err
	}

	w.store.Delete(sessionID)
	return roadmap, nil
}

func snapshot(session *mem.WizardSession) *response_models.WizardResponse {
	current := session.Items[session.Step]
	return &response_models.WizardResponse{
		SessionID:   session.ID,
		Topic:       session.Topic,
		CurrentStep: session.Step,
		TotalSteps:  len(session.Items),
		Question: response_models.Question{
			ID:   current.QuestionID,
			Text: current.Question,
		},
		Answer:     current.Answer,
		IsLastStep: session.Step == len(session.Items)-1,
	}
}

func mapStoreError(err error) error {
	if errors.Is(err, mem.ErrSessionNotFound) {
		return utils.ErrSessionNotFound
	}
	return err
}
