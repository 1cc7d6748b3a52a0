package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coursemap/internal/models/response_models"
	"coursemap/internal/services"
	mem "coursemap/pkg/memcache"
)

func setupWizardRouter(cs *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	wizard := services.NewWizardService(cs, mem.NewWizardSessions())
	wc := NewWizardController(wizard)

	r.POST("/api/wizard/start", wc.StartHandler)
	r.GET("/api/wizard/sessions/:id", wc.GetHandler)
	r.POST("/api/wizard/sessions/:id/answer", wc.AnswerHandler)
	r.POST("/api/wizard/sessions/:id/next", wc.NextHandler)
	r.POST("/api/wizard/sessions/:id/back", wc.BackHandler)
	r.POST("/api/wizard/sessions/:id/finish", wc.FinishHandler)
	return r
}

func decodeSession(t *testing.T, w *httptest.ResponseRecorder) response_models.WizardResponse {
	t.Helper()
	var session response_models.WizardResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &session))
	return session
}

func TestWizardFlowOverHTTP(t *testing.T) {
	cs := &stubCourseService{
		questions: []response_models.Question{
			{ID: "q1", Text: "first"},
			{ID: "q2", Text: "second"},
		},
		roadmap: &response_models.Roadmap{
			Title:   "T",
			Modules: []response_models.RoadmapModule{{Title: "M", Topics: []string{"t"}}},
		},
	}
	r := setupWizardRouter(cs)

	w := postJSON(r, "/api/wizard/start", `{"topic":"Learn Python basics"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	session := decodeSession(t, w)
	assert.Equal(t, 0, session.CurrentStep)
	assert.Equal(t, 2, session.TotalSteps)
	assert.Equal(t, "q1", session.Question.ID)

	w = postJSON(r, "/api/wizard/sessions/"+session.SessionID+"/answer", `{"answer":"some exposure"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "some exposure", decodeSession(t, w).Answer)

	w = postJSON(r, "/api/wizard/sessions/"+session.SessionID+"/next", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	next := decodeSession(t, w)
	assert.Equal(t, 1, next.CurrentStep)
	assert.True(t, next.IsLastStep)

	w = postJSON(r, "/api/wizard/sessions/"+session.SessionID+"/finish", `{}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"title":"T","description":"","modules":[{"title":"M","topics":["t"]}]}`, w.Body.String())

	// completed sessions disappear
	req := httptest.NewRequest(http.MethodGet, "/api/wizard/sessions/"+session.SessionID, nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestWizardStartRejectsShortTopic(t *testing.T) {
	r := setupWizardRouter(&stubCourseService{})

	w := postJSON(r, "/api/wizard/start", `{"topic":"AI"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Please enter a course topic"}`, w.Body.String())
}

func TestWizardFinishBeforeLastQuestion(t *testing.T) {
	cs := &stubCourseService{
		questions: []response_models.Question{
			{ID: "q1", Text: "first"},
			{ID: "q2", Text: "second"},
		},
	}
	r := setupWizardRouter(cs)

	w := postJSON(r, "/api/wizard/start", `{"topic":"Learn Python basics"}`)
	session := decodeSession(t, w)

	w = postJSON(r, "/api/wizard/sessions/"+session.SessionID+"/finish", `{}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"All questions must be shown before finishing"}`, w.Body.String())
}

func TestWizardUnknownSession(t *testing.T) {
	r := setupWizardRouter(&stubCourseService{})

	w := postJSON(r, "/api/wizard/sessions/missing/next", `{}`)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Wizard session not found"}`, w.Body.String())
}
