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

// PaymentHandler exposes the gateway payment endpoints.
type PaymentHandler struct {
	Svc    payment.PaymentService
	Logger *zap.Logger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc payment.PaymentService, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Svc: svc, Logger: logger}
}

// CreateOrder handles POST /payments/create-order.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if userID := c.GetString(middleware.IdentityKey); userID != "" {
		req.UserID = userID
	}

	resp, err := h.Svc.CreateOrder(c.Request.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, payment.ErrInvalidPlanOrDuration):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid plan or duration"})
		return
	case errors.Is(err, payment.ErrGatewayUnavailable):
		// Distinct from a generic 500 so operators can tell "misconfigured"
		// from "broken".
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured. Please contact support."})
		return
	default:
		h.Logger.Error("order creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create payment order", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": resp.Order, "key": resp.Key})
}

// VerifyPayment handles POST /payments/verify.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.Svc.VerifyPayment(c.Request.Context(), req)
	switch {
	case err == nil:
	case errors.Is(err, payment.ErrSignatureMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Payment verification failed"})
		return
	case errors.Is(err, payment.ErrPaymentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No payment found for this order"})
		return
	case errors.Is(err, payment.ErrGatewayUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "Payment gateway not configured. Please contact support."})
		return
	default:
		h.Logger.Error("payment verification failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "payment verification failed", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Payment verified successfully"})
}

// GetUserPayments handles GET /payments/user/:userId.
func (h *PaymentHandler) GetUserPayments(c *gin.Context) {
	userID := c.Param("userId")
	payments, err := h.Svc.GetUserPayments(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to fetch user payments", zap.String("userId", userID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payments", "")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// GetAllPayments handles GET /payments/all.
func (h *PaymentHandler) GetAllPayments(c *gin.Context) {
	payments, err := h.Svc.GetAllPayments(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to fetch payments", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payments", "")
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}

// GetPricing handles GET /payments/pricing.
func (h *PaymentHandler) GetPricing(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.Pricing())
}
