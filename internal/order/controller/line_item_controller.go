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

// ItemRoutes is what the router needs from any of the five line-item
// controllers.
type ItemRoutes interface {
	AddItems(w http.ResponseWriter, r *http.Request)
	EditItem(w http.ResponseWriter, r *http.Request)
	DeleteItem(w http.ResponseWriter, r *http.Request)
}

type ItemUseCase[T any] interface {
	AddBatch(ctx context.Context, orderID uint, items []T) ([]T, error)
	EditItem(ctx context.Context, itemID uint, item T) (T, error)
	DeleteItem(ctx context.Context, itemID uint) (T, error)
}

// LineItemController serves one line-item collection. R is the request
// shape, T the domain item, D the response DTO; the two mapping funcs are all
// that differs between the five instantiations.
type LineItemController[R any, T any, D any] struct {
	kind     string
	useCase  ItemUseCase[T]
	toDomain func(R) T
	toDTO    func(T) D
	logger   *zap.Logger
}

func NewLineItemController[R any, T any, D any](
	kind string,
	useCase ItemUseCase[T],
	toDomain func(R) T,
	toDTO func(T) D,
	logger *zap.Logger,
) *LineItemController[R, T, D] {
	return &LineItemController[R, T, D]{
		kind:     kind,
		useCase:  useCase,
		toDomain: toDomain,
		toDTO:    toDTO,
		logger:   logger,
	}
}

func (c *LineItemController[R, T, D]) AddItems(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	orderID, detail := parseIDParam(r, "orderId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderId", *detail)
		return
	}

	var reqs []R
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		logger.Warn("invalid JSON body", zap.String("kind", c.kind), zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field: "body", Message: "request body must be a JSON array of items",
		})
		return
	}

	items := make([]T, len(reqs))
	for i, req := range reqs {
		items[i] = c.toDomain(req)
	}

	result, err := c.useCase.AddBatch(r.Context(), orderID, items)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	out := make([]D, 0, len(result))
	for _, item := range result {
		out = append(out, c.toDTO(item))
	}

	writeJSON(w, logger, http.StatusCreated, out)
}

func (c *LineItemController[R, T, D]) EditItem(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	itemID, detail := parseIDParam(r, "orderItemId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderItemId", *detail)
		return
	}

	var req R
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.String("kind", c.kind), zap.Error(err))
		writeValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field: "body", Message: "request body must be valid JSON",
		})
		return
	}

	item, err := c.useCase.EditItem(r.Context(), itemID, c.toDomain(req))
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, c.toDTO(item))
}

func (c *LineItemController[R, T, D]) DeleteItem(w http.ResponseWriter, r *http.Request) {
	logger := c.requestLogger()

	itemID, detail := parseIDParam(r, "orderItemId")
	if detail != nil {
		writeValidationError(w, logger, "invalid orderItemId", *detail)
		return
	}

	item, err := c.useCase.DeleteItem(r.Context(), itemID)
	if err != nil {
		handleError(w, logger, err)
		return
	}

	writeJSON(w, logger, http.StatusOK, c.toDTO(item))
}

func (c *LineItemController[R, T, D]) requestLogger() *zap.Logger {
	return c.logger.With(zap.String("traceId", uuid.New().String()))
}

func NewFruitItemController(useCase ItemUseCase[domain.FruitOrderItem], logger *zap.Logger) *LineItemController[dto.FruitItemRequest, domain.FruitOrderItem, dto.FruitItemDTO] {
	return NewLineItemController("fruit", useCase, dto.FruitItemRequest.ToDomain, dto.NewFruitItemDTO, logger)
}

func NewSeedItemController(useCase ItemUseCase[domain.SeedOrderItem], logger *zap.Logger) *LineItemController[dto.SeedItemRequest, domain.SeedOrderItem, dto.SeedItemDTO] {
	return NewLineItemController("seed", useCase, dto.SeedItemRequest.ToDomain, dto.NewSeedItemDTO, logger)
}

func NewRootstockItemController(useCase ItemUseCase[domain.RootstockOrderItem], logger *zap.Logger) *LineItemController[dto.RootstockItemRequest, domain.RootstockOrderItem, dto.RootstockItemDTO] {
	return NewLineItemController("rootstock", useCase, dto.RootstockItemRequest.ToDomain, dto.NewRootstockItemDTO, logger)
}

func NewBorbulhaItemController(useCase ItemUseCase[domain.BorbulhaOrderItem], logger *zap.Logger) *LineItemController[dto.BorbulhaItemRequest, domain.BorbulhaOrderItem, dto.BorbulhaItemDTO] {
	return NewLineItemController("borbulha", useCase, dto.BorbulhaItemRequest.ToDomain, dto.NewBorbulhaItemDTO, logger)
}

func NewSeedlingBenchItemController(useCase ItemUseCase[domain.SeedlingBenchOrderItem], logger *zap.Logger) *LineItemController[dto.SeedlingBenchItemRequest, domain.SeedlingBenchOrderItem, dto.SeedlingBenchItemDTO] {
	return NewLineItemController("seedlingBench", useCase, dto.SeedlingBenchItemRequest.ToDomain, dto.NewSeedlingBenchItemDTO, logger)
}
