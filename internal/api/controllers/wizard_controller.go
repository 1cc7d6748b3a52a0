package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coursemap/internal/models/request_models"
	"coursemap/internal/services"
	"coursemap/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

func (wc *WizardController) StartHandler(c *gin.Context) {
	var req request_models.WizardStartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := wc.wizardService.Start(c.Request.Context(), req.Topic)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

func (wc *WizardController) GetHandler(c *gin.Context) {
	session, err := wc.wizardService.Get(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (wc *WizardController) AnswerHandler(c *gin.Context) {
	var req request_models.WizardAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	session, err := wc.wizardService.Answer(c.Param("id"), req.Answer)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (wc *WizardController) NextHandler(c *gin.Context) {
	session, err := wc.wizardService.Next(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (wc *WizardController) BackHandler(c *gin.Context) {
	session, err := wc.wizardService.Back(c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

func (wc *WizardController) FinishHandler(c *gin.Context) {
	roadmap, err := wc.wizardService.Finish(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, roadmap)
}
