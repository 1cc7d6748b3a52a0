package response_models

// Question is one diagnostic question as produced by the generation service.
type Question struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// QuestionsResponse is the wire shape of POST /api/courses/generate/questions.
type QuestionsResponse struct {
	Success bool       `json:"success"`
	Topic   string     `json:"topic"`
	Result  []Question `json:"result"`
}

type RoadmapModule struct {
	Title  string   `json:"title"`
	Topics []string `json:"topics"`
}

// Roadmap is terminal output: generated once, never mutated afterwards.
type Roadmap struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Modules     []RoadmapModule `json:"modules"`
}

type CourseResponse struct {
	ID          string   `json:"id"`
	Topic       string   `json:"topic"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"created_at"`
	Roadmap     *Roadmap `json:"roadmap,omitempty"`
}

type RelatedCourseResponse struct {
	ID         string  `json:"id"`
	Topic      string  `json:"topic"`
	Title      string  `json:"title"`
	Similarity float64 `json:"similarity"`
}
