package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursemap/internal/models/request_models"
	"coursemap/internal/models/response_models"
	"coursemap/internal/services"
	"coursemap/pkg/utils"
)

type CourseController struct {
	courseService     services.CourseServiceInterface
	suggestionService services.SuggestionServiceInterface
}

func NewCourseController(
	courseService services.CourseServiceInterface,
	suggestionService services.SuggestionServiceInterface,
) *CourseController {
	return &CourseController{
		courseService:     courseService,
		suggestionService: suggestionService,
	}
}

// GenerateQuestionsHandler godoc
// @Summary Generate diagnostic questions for a topic
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.GenerateQuestionsRequest true "Course topic"
// @Success 200 {object} response_models.QuestionsResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/courses/generate/questions [post]
func (cc *CourseController) GenerateQuestionsHandler(c *gin.Context) {
	var req request_models.GenerateQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	questions, err := cc.courseService.GenerateQuestions(c.Request.Context(), req.Topic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.QuestionsResponse{
		Success: true,
		Topic:   req.Topic,
		Result:  questions,
	})
}

// GenerateRoadmapHandler godoc
// @Summary Generate a course roadmap from answered questions
// @Tags Courses
// @Accept json
// @Produce json
// @Param request body request_models.GenerateRoadmapRequest true "Topic and answers"
// @Success 200 {object} response_models.Roadmap
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/courses/generate/roadmap [post]
func (cc *CourseController) GenerateRoadmapHandler(c *gin.Context) {
	var req request_models.GenerateRoadmapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	roadmap, err := cc.courseService.GenerateRoadmap(c.Request.Context(), req.Topic, req.Answers)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	// the roadmap is the whole response body, matching the client contract
	c.JSON(http.StatusOK, roadmap)
}

func (cc *CourseController) SaveCourseHandler(c *gin.Context) {
	var req request_models.SaveCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	course, err := cc.courseService.SaveCourse(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, course)
}

func (cc *CourseController) ListCoursesHandler(c *gin.Context) {
	courses, err := cc.courseService.ListCourses(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, courses)
}

func (cc *CourseController) GetCourseHandler(c *gin.Context) {
	course, err := cc.courseService.GetCourse(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

func (cc *CourseController) RelatedCoursesHandler(c *gin.Context) {
	related, err := cc.suggestionService.RelatedCourses(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, related)
}
