package request_models

import "encoding/json"

type GenerateQuestionsRequest struct {
	Topic string `json:"topic"`
}

// AnsweredQuestion is one numbered question/answer pair as submitted by the
// wizard. Answer may be empty when the user skipped the question.
type AnsweredQuestion struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type GenerateRoadmapRequest struct {
	Topic   string             `json:"topic"`
	Answers []AnsweredQuestion `json:"answers"`
}

// SaveCourseRequest carries the roadmap as raw JSON; the service re-validates
// the shape before persisting it.
type SaveCourseRequest struct {
	Topic   string          `json:"topic"`
	Roadmap json.RawMessage `json:"roadmap"`
}
