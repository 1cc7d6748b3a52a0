package services

import (
	"context"
	"strings"
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursemap/internal/models/request_models"
	"coursemap/pkg/utils"
)

type fakeAIClient struct {
	response string
	err      error
	calls    int
	prompts  []string
}

func (f *fakeAIClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeAIClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	return pgvector.NewVector(make([]float32, utils.EmbeddingDimensions)), nil
}

func (f *fakeAIClient) Close() error { return nil }

func newCourseService(client *fakeAIClient) CourseServiceInterface {
	return NewCourseService(client, nil, nil)
}

const fourQuestions = `{"questions":[
	{"id":"q1","text":"Have you written any Python before?"},
	{"id":"q2","text":"How comfortable are you reading code?"},
	{"id":"q3","text":"Have you used a terminal?"},
	{"id":"q4","text":"Do you know what a variable is?"}]}`

func TestGenerateQuestionsRejectsEmptyTopic(t *testing.T) {
	client := &fakeAIClient{}
	svc := newCourseService(client)

	_, err := svc.GenerateQuestions(context.Background(), "   ")
	assert.ErrorIs(t, err, utils.ErrTopicRequired)
	assert.Equal(t, 0, client.calls, "no model call on validation failure")
}

func TestGenerateQuestionsRejectsLongTopic(t *testing.T) {
	client := &fakeAIClient{}
	svc := newCourseService(client)

	_, err := svc.GenerateQuestions(context.Background(), strings.Repeat("a", 501))
	assert.ErrorIs(t, err, utils.ErrTopicTooLong)
	assert.Equal(t, 0, client.calls)
}

func TestGenerateQuestionsSuccess(t *testing.T) {
	client := &fakeAIClient{response: fourQuestions}
	svc := newCourseService(client)

	questions, err := svc.GenerateQuestions(context.Background(), "Learn Python basics")
	require.NoError(t, err)
	require.Len(t, questions, 4)

	// order must match the model's reply exactly
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, "q4", questions[3].ID)

	assert.Equal(t, 1, client.calls)
	assert.Contains(t, client.prompts[0], `"Learn Python basics"`)
}

func TestGenerateQuestionsAcceptsOffCountReply(t *testing.T) {
	// the prompt asks for 4 but a usable 2-question reply is not rejected
	client := &fakeAIClient{response: `{"questions":[{"id":"q1","text":"a"},{"id":"q2","text":"b"}]}`}
	svc := newCourseService(client)

	questions, err := svc.GenerateQuestions(context.Background(), "Learn Go")
	require.NoError(t, err)
	assert.Len(t, questions, 2)
}

func TestGenerateQuestionsProviderFailure(t *testing.T) {
	client := &fakeAIClient{err: assert.AnError}
	svc := newCourseService(client)

	_, err := svc.GenerateQuestions(context.Background(), "Learn Go")
	assert.ErrorIs(t, err, utils.ErrQuestionGeneration)
}

func TestGenerateQuestionsMalformedReply(t *testing.T) {
	for name, response := range map[string]string{
		"not json":     `{"questions": [`,
		"empty list":   `{"questions":[]}`,
		"missing id":   `{"questions":[{"id":"","text":"a"}]}`,
		"missing text": `{"questions":[{"id":"q1","text":"  "}]}`,
		"wrong shape":  `{"items":[{"id":"q1","text":"a"}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newCourseService(&fakeAIClient{response: response})
			_, err := svc.GenerateQuestions(context.Background(), "Learn Go")
			assert.ErrorIs(t, err, utils.ErrQuestionGeneration)
		})
	}
}

func sampleAnswers() []request_models.AnsweredQuestion {
	return []request_models.AnsweredQuestion{
		{ID: 1, Question: "Have you written any Python before?", Answer: "A little"},
		{ID: 2, Question: "Have you used a terminal?", Answer: ""},
	}
}

const validRoadmap = `{"title":"Python Foundations","description":"From zero to scripts","modules":[
	{"title":"Getting Started","topics":["Installing Python","The REPL","Your first script"]},
	{"title":"Core Concepts","topics":["Variables","Control flow","Functions"]}]}`

func TestGenerateRoadmapRejectsEmptyTopic(t *testing.T) {
	client := &fakeAIClient{}
	svc := newCourseService(client)

	_, err := svc.GenerateRoadmap(context.Background(), "", sampleAnswers())
	assert.ErrorIs(t, err, utils.ErrTopicRequired)
	assert.Equal(t, 0, client.calls)
}

func TestGenerateRoadmapRejectsEmptyAnswers(t *testing.T) {
	client := &fakeAIClient{}
	svc := newCourseService(client)

	_, err := svc.GenerateRoadmap(context.Background(), "Learn Python", nil)
	assert.ErrorIs(t, err, utils.ErrAnswersRequired)
	assert.Equal(t, 0, client.calls)
}

func TestGenerateRoadmapSuccess(t *testing.T) {
	client := &fakeAIClient{response: validRoadmap}
	svc := newCourseService(client)

	roadmap, err := svc.GenerateRoadmap(context.Background(), "Learn Python", sampleAnswers())
	require.NoError(t, err)

	assert.Equal(t, "Python Foundations", roadmap.Title)
	require.Len(t, roadmap.Modules, 2)
	assert.Equal(t, []string{"Variables", "Control flow", "Functions"}, roadmap.Modules[1].Topics)

	prompt := client.prompts[0]
	assert.Contains(t, prompt, "Q1: Have you written any Python before?")
	assert.Contains(t, prompt, "A1: A little")
	assert.Contains(t, prompt, "Q2: Have you used a terminal?")
	assert.Contains(t, prompt, `"Learn Python"`)
}

func TestGenerateRoadmapMalformedReply(t *testing.T) {
	for name, response := range map[string]string{
		"not json":        `oops`,
		"no title":        `{"title":" ","description":"d","modules":[{"title":"m","topics":["t"]}]}`,
		"no modules":      `{"title":"T","description":"d"}`,
		"empty modules":   `{"title":"T","description":"d","modules":[]}`,
		"untitled module": `{"title":"T","description":"d","modules":[{"title":"","topics":["t"]}]}`,
		"topicless":       `{"title":"T","description":"d","modules":[{"title":"m","topics":[]}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			svc := newCourseService(&fakeAIClient{response: response})
			_, err := svc.GenerateRoadmap(context.Background(), "Learn Go", sampleAnswers())
			assert.ErrorIs(t, err, utils.ErrRoadmapGeneration)
		})
	}
}

func TestGenerateRoadmapProviderFailure(t *testing.T) {
	svc := newCourseService(&fakeAIClient{err: assert.AnError})

	_, err := svc.GenerateRoadmap(context.Background(), "Learn Go", sampleAnswers())
	assert.ErrorIs(t, err, utils.ErrRoadmapGeneration)
}
