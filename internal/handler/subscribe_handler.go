package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/VeloraJewelry/storefront_api/internal/service"
	"github.com/VeloraJewelry/storefront_api/internal/utils"
	"github.com/VeloraJewelry/storefront_api/pkg/formrelay"
)

// SubscribeHandler handles subscription/contact form submissions.
type SubscribeHandler struct {
	subscribeService *service.SubscribeService
}

// NewSubscribeHandler constructs a SubscribeHandler.
func NewSubscribeHandler(subscribeService *service.SubscribeService) *SubscribeHandler {
	return &SubscribeHandler{subscribeService: subscribeService}
}

type subscribeRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Subscribe relays a form submission and reports a simple success/error state.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, utils.ErrInvalidSubmission.Error(), "Name and a valid contact are required")
		return
	}

	err := h.subscribeService.Submit(c.Request.Context(), formrelay.Submission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidSubmission):
			utils.Error(c, 400, utils.ErrInvalidSubmission.Error(), "Name and a valid contact are required")
		case errors.Is(err, utils.ErrRelayNotConfigured):
			utils.Error(c, 503, utils.ErrRelayNotConfigured.Error(), "Subscriptions are temporarily unavailable")
		default:
			utils.Error(c, 502, utils.ErrUpstreamFailure.Error(), "Failed to submit, please try again")
		}
		return
	}

	utils.Success(c, 200, "Submission received", nil)
}
