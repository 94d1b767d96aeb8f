package dto

import "github.com/yigit/collegehub/internal/pkg/apperrors"

// Request binding errors
var (
	ErrInvalidFee         = apperrors.NewValidationError("minFee and maxFee must be non-negative numbers")
	ErrInvalidRequestBody = apperrors.NewBadRequestError("Invalid request body")
)
