package utils

import "errors"

var (
	ErrTopicRequired      = errors.New("course topic is required")
	ErrTopicTooShort      = errors.New("course topic is too short")
	ErrTopicTooLong       = errors.New("course topic is too long")
	ErrAnswersRequired    = errors.New("answers are required")
	ErrQuestionGeneration = errors.New("question generation failed")
	ErrRoadmapGeneration  = errors.New("roadmap generation failed")
	ErrInvalidRoadmap     = errors.New("invalid roadmap data")

	ErrSessionNotFound = errors.New("wizard session not found")
	ErrWizardNotAtEnd  = errors.New("wizard is not at the last question")
	ErrWizardBusy      = errors.New("wizard submission already in flight")

	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCourseNotFound     = errors.New("course not found")
	ErrDatabaseError      = errors.New("database error")
)
