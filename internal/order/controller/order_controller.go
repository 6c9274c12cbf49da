package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"viveiro/internal/commons"
	"viveiro/internal/domain"
	"viveiro/internal/dto"
	apperrors "viveiro/internal/errors"
)

type OrderManager interface {
	Create(ctx context.Context, draft dto.OrderDraft) (*domain.Order, error)
	Edit(ctx context.Context, orderID uint, changes dto.OrderChanges) (*domain.Order, error)
	Cancel(ctx context.Context, orderID uint) (*domain.Order, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, orderID uint) (*dto.OrderView, error)
	ListOrders(ctx context.Context, orderType string) ([]dto.OrderView, error)
}

type OrderController struct {
	manager OrderManager
	queries OrderQueries
	logger  *zap.Logger
}

func NewOrderController(manager OrderManager, queries OrderQueries, logger *zap.Logger) *OrderController {
	return &OrderController{
		manager: manager,
		queries: queries,
		logger:  logger,
	}
}

func (c *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field: "body", Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	orderDate, detail := parseDate("orderDate", req.OrderDate)
	if detail != nil {
		details = append(details, *detail)
	}
	deliveryDate, detail := parseDate("deliveryDate", req.DeliveryDate)
	if detail != nil {
		details = append(details, *detail)
	}
	if len(details) > 0 {
		writeValidationError(w, logger, "validation failed", details...)
		return
	}

	userID, ok := commons.UserIDFrom(r.Context())
	if !ok {
		logger.Error("caller identity missing from context")
		writeJSON(w, logger, http.StatusUnauthorized, errorResponse{
			Error: "UNAUTHENTICATED", Message: "missing caller identity",
		})
		return
	}

	draft := dto.OrderDraft{
		Type:               req.Type,
		OrderDate:          orderDate,
		DeliveryDate:       deliveryDate,
		NfNumber:           req.NfNumber,
		CustomerPropertyID: req.CustomerPropertyID,
		UserID:             userID,
	}

	order, err := c.manager.Create(r.Context(), draft)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, dto.NewOrderDTO(*order))
}

func (c *OrderController) EditOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orderID, detail := parseIDParam(r, "orderId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderId", *detail)
		return
	}

	var req dto.EditOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field: "body", Message: "request body must be valid JSON",
		})
		return
	}

	var details []apperrors.ValidationDetail
	orderDate, dateDetail := parseDate("orderDate", req.OrderDate)
	if dateDetail != nil {
		details = append(details, *dateDetail)
	}
	deliveryDate, dateDetail := parseDate("deliveryDate", req.DeliveryDate)
	if dateDetail != nil {
		details = append(details, *dateDetail)
	}
	if len(details) > 0 {
		writeValidationError(w, logger, "validation failed", details...)
		return
	}

	changes := dto.OrderChanges{
		OrderDate:          orderDate,
		DeliveryDate:       deliveryDate,
		NfNumber:           req.NfNumber,
		CustomerPropertyID: req.CustomerPropertyID,
	}

	order, err := c.manager.Edit(r.Context(), orderID, changes)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusCreated, dto.NewOrderDTO(*order))
}

func (c *OrderController) CancelOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orderID, detail := parseIDParam(r, "orderId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderId", *detail)
		return
	}

	order, err := c.manager.Cancel(r.Context(), orderID)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, dto.NewOrderDTO(*order))
}

// GetOrder answers 200 with a null body for an unknown id.
func (c *OrderController) GetOrder(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orderID, detail := parseIDParam(r, "orderId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderId", *detail)
		return
	}

	view, err := c.queries.GetOrder(r.Context(), orderID)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, view)
}

func (c *OrderController) ListOrders(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	views, err := c.queries.ListOrders(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, views)
}

func (c *OrderController) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}
