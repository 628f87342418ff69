package handlers

import (
	"trickhub/helper"
	"trickhub/middleware"
	"trickhub/models"
	"trickhub/services"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagementService services.EngagementService
	Helper            *helper.HTTPHelper
}

func NewEngagementHandler(engagementService services.EngagementService, httpHelper *helper.HTTPHelper) *EngagementHandler {
	return &EngagementHandler{engagementService: engagementService, Helper: httpHelper}
}

func (h *EngagementHandler) GetLikes(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	likes, err := h.engagementService.ListLikes(id)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Likes loaded", likes)
}

func (h *EngagementHandler) ToggleLike(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	actor := middleware.CurrentActor(c)
	if actor == nil {
		h.Helper.SendUnauthorizedError(c, "Authentication credentials were not provided.", h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.engagementService.ToggleLike(id, actor.UserID)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, string(response.Status), response)
}

func (h *EngagementHandler) GetComments(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	comments, err := h.engagementService.ListComments(id)
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Comments loaded", comments)
}

func (h *EngagementHandler) CreateComment(c *gin.Context) {
	id, ok := pathID(c, h.Helper)
	if !ok {
		return
	}

	var req models.CreateCommentRequest
	if !bindRequest(c, h.Helper, &req) {
		return
	}

	comment, err := h.engagementService.CreateComment(id, req, middleware.CurrentActor(c))
	if err != nil {
		h.Helper.SendAppError(c, err)
		return
	}

	h.Helper.SendCreated(c, "Comment created", comment)
}
