package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type PaymentUseCase interface {
	AddPayment(ctx context.Context, orderID uint, draft dto.PaymentDraft) (*domain.Payment, error)
	EditPayment(ctx context.Context, paymentID uint, draft dto.PaymentDraft) (*domain.Payment, error)
	DeletePayment(ctx context.Context, paymentID uint) (*domain.Payment, error)
}

type PaymentController struct {
	useCase PaymentUseCase
	logger  *zap.Logger
}

func NewPaymentController(useCase PaymentUseCase, logger *zap.Logger) *PaymentController {
	return &PaymentController{useCase: useCase, logger: logger}
}

func (c *PaymentController) AddPayment(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orderID, detail := parseIDParam(r, "orderId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderId", *detail)
		return
	}

	draft, ok := c.decodeDraft(w, r, logger)
	if !ok {
		return
	}

	payment, err := c.useCase.AddPayment(r.Context(), orderID, draft)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, dto.NewPaymentDTO(*payment))
}

func (c *PaymentController) EditPayment(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	paymentID, detail := parseIDParam(r, "paymentId")
	if detail != nil {
		writeValidationError(w, logger, "invalid paymentId", *detail)
		return
	}

	draft, ok := c.decodeDraft(w, r, logger)
	if !ok {
		return
	}

	payment, err := c.useCase.EditPayment(r.Context(), paymentID, draft)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, dto.NewPaymentDTO(*payment))
}

func (c *PaymentController) DeletePayment(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	paymentID, detail := parseIDParam(r, "paymentId")
	if detail != nil {
		writeValidationError(w, logger, "invalid paymentId", *detail)
		return
	}

	payment, err := c.useCase.DeletePayment(r.Context(), paymentID)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, dto.NewPaymentDTO(*payment))
}

func (c *PaymentController) decodeDraft(w http.ResponseWriter, r *http.Request, logger *zap.Logger) (dto.PaymentDraft, bool) {
	var req dto.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field: "body", Message: "request body must be valid JSON",
		})
		return dto.PaymentDraft{}, false
	}

	scheduledDate, detail := parseDate("scheduledDate", req.ScheduledDate)
	if detail != nil {
		writeValidationError(w, logger, "validation failed", *detail)
		return dto.PaymentDraft{}, false
	}

	return dto.PaymentDraft{
		Amount:        req.Amount,
		Method:        req.Method,
		ScheduledDate: scheduledDate,
		Received:      req.Received,
	}, true
}

func (c *PaymentController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}
