package usecase

import (
	"strings"

	"viveiro/internal/domain"
	apperrors "viveiro/internal/errors"
)

// Validation bounds are uniform across the five item types: quantity at least
// one and a positive price. Rootstock keeps its stricter unityPrice >= 1
// bound carried over from the legacy system.

func FruitItemRule(i domain.FruitOrderItem) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail
	details = appendNameChecks(details, i.Name, i.Quantity)
	if i.BoxPrice <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "boxPrice", Message: "boxPrice must be positive",
		})
	}
	return details
}

func SeedItemRule(i domain.SeedOrderItem) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail
	details = appendNameChecks(details, i.Name, i.Quantity)
	if i.KgPrice <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "kgPrice", Message: "kgPrice must be positive",
		})
	}
	return details
}

func RootstockItemRule(i domain.RootstockOrderItem) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail
	if i.RootstockID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "rootstockId", Message: "rootstockId is required",
		})
	}
	if i.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field: "quantity", Message: "quantity must be at least 1",
		})
	}
	if i.UnityPrice < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field: "unityPrice", Message: "unityPrice must be at least 1",
		})
	}
	return details
}

func BorbulhaItemRule(i domain.BorbulhaOrderItem) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail
	details = appendNameChecks(details, i.Name, i.Quantity)
	if i.UnityPrice <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "unityPrice", Message: "unityPrice must be positive",
		})
	}
	return details
}

func SeedlingBenchItemRule(i domain.SeedlingBenchOrderItem) []apperrors.ValidationDetail {
	var details []apperrors.ValidationDetail
	if i.SeedlingBenchID == 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "seedlingBenchId", Message: "seedlingBenchId is required",
		})
	}
	if i.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field: "quantity", Message: "quantity must be at least 1",
		})
	}
	if i.UnityPrice <= 0 {
		details = append(details, apperrors.ValidationDetail{
			Field: "unityPrice", Message: "unityPrice must be positive",
		})
	}
	return details
}

func appendNameChecks(details []apperrors.ValidationDetail, name string, quantity int) []apperrors.ValidationDetail {
	if strings.TrimSpace(name) == "" {
		details = append(details, apperrors.ValidationDetail{
			Field: "name", Message: "name must not be empty",
		})
	}
	if quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field: "quantity", Message: "quantity must be at least 1",
		})
	}
	return details
}
