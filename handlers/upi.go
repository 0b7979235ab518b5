package handlers

import (
	"errors"
	"net/http"

	"onehour/middleware"
	"onehour/models"
	"onehour/services/payment"
	"onehour/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UPIHandler exposes the manual transfer proof endpoint.
type UPIHandler struct {
	Svc    payment.PaymentService
	Logger *zap.Logger
}

// NewUPIHandler constructs a UPIHandler.
func NewUPIHandler(svc payment.PaymentService, logger *zap.Logger) *UPIHandler {
	return &UPIHandler{Svc: svc, Logger: logger}
}

// SubmitUTR handles POST /upi/submit.
func (h *UPIHandler) SubmitUTR(c *gin.Context) {
	var req models.UTRSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if userID := c.GetString(middleware.IdentityKey); userID != "" {
		req.UserID = userID
	}

	_, err := h.Svc.SubmitUTR(c.Request.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, payment.ErrMissingReference):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "UTR number and booking details are required"})
		return
	case errors.Is(err, payment.ErrDuplicateReference):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "This UTR number has already been used"})
		return
	case errors.Is(err, payment.ErrInvalidPlanOrDuration):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid plan or duration"})
		return
	default:
		h.Logger.Error("UTR submission failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to record payment", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Payment recorded successfully"})
}
