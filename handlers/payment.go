package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mltransport/models"
	"mltransport/services/booking"
	"mltransport/services/checkout"
	"mltransport/services/gateway"
	"mltransport/services/pricing"
	"mltransport/utils"
)

// PaymentHandler serves the payment-link and confirmation endpoints.
type PaymentHandler struct {
	Resolver     pricing.Resolver
	Gateway      gateway.Client
	Confirmation booking.ConfirmationService
	Merchant     checkout.MerchantConfig
	MinCharge    int64
	MaxCharge    int64
	Logger       *zap.Logger
}

func NewPaymentHandler(
	resolver pricing.Resolver,
	gw gateway.Client,
	confirmation booking.ConfirmationService,
	merchant checkout.MerchantConfig,
	minCharge, maxCharge int64,
	logger *zap.Logger,
) *PaymentHandler {
	return &PaymentHandler{
		Resolver:     resolver,
		Gateway:      gw,
		Confirmation: confirmation,
		Merchant:     merchant,
		MinCharge:    minCharge,
		MaxCharge:    maxCharge,
		Logger:       logger,
	}
}

// CreatePaymentLink prices the booking server-side and creates a hosted
// checkout link for it.
func (h *PaymentHandler) CreatePaymentLink(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if h.Merchant.LocationID == "" {
		utils.JSONError(c, http.StatusInternalServerError, "payment gateway is not configured", "")
		return
	}

	quote, err := h.Resolver.Resolve(req.Route, req.VehicleClass, req.TripType, req.Hours)
	if err != nil {
		var perr *pricing.PricingError
		if errors.As(err, &perr) {
			utils.JSONError(c, http.StatusBadRequest, perr.Message, "")
			return
		}
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")
		return
	}

	if quote.Amount < h.MinCharge || quote.Amount > h.MaxCharge {
		utils.JSONError(c, http.StatusBadRequest, "amount out of allowed range", "")
		return
	}

	order := checkout.Build(req, quote, h.Merchant)
	link, err := h.Gateway.CreatePaymentLink(c.Request.Context(), order)
	if err != nil {
		h.Logger.Error("Payment link creation failed",
			zap.String("route", req.Route), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "payment gateway error", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":            true,
		"url":           link.URL,
		"longUrl":       link.LongURL,
		"paymentLinkId": link.ID,
		"orderId":       link.OrderID,
	})
}

// confirmBookingInput is the request body for ConfirmBooking.
type confirmBookingInput struct {
	OrderID        string                `json:"orderId"`
	BookingDetails models.BookingDetails `json:"bookingDetails"`
}

// ConfirmBooking verifies the payment behind an order and reports the
// notification outcome. A not-yet-paid order is a 200 with a pending
// status so the client can keep polling.
func (h *PaymentHandler) ConfirmBooking(c *gin.Context) {
	var input confirmBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.Confirmation.Confirm(c.Request.Context(), input.OrderID, input.BookingDetails)
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			utils.JSONError(c, http.StatusBadRequest, verr.Message, "")
			return
		}
		var np *booking.NotPaidError
		if errors.As(err, &np) {
			// Not an error: a 200 with an explicit status keeps the
			// client's polling loop alive.
			c.JSON(http.StatusOK, gin.H{"ok": false, "error": np.Error(), "status": np.Status})
			return
		}
		h.Logger.Error("Booking confirmation failed",
			zap.String("orderId", input.OrderID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "confirmation failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":                 true,
		"confirmationNumber": result.ConfirmationNumber,
		"ownerNotified":      result.OwnerNotified,
		"customerNotified":   result.CustomerNotified,
		"alreadyNotified":    result.AlreadyNotified,
	})
}
