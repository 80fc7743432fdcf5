package api

import (
	"errors"
	"net/http"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего юзера. ID устанавливается в
// middlewares.AuthRequired. В случае, если значения в контексте нет или ошибка
// утверждения типа - вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// abortWithServiceError транслирует ошибку сервисного слоя в HTTP статус.
// Неопознанные ошибки считаются внутренними и клиенту не раскрываются.
func abortWithServiceError(c *gin.Context, err error) {
	var amountErr *domain.AmountRangeError
	var transitionErr *domain.InvalidStatusTransitionError
	var upstreamErr *domain.UpstreamError

	switch {
	case errors.As(err, &amountErr):
		_ = c.AbortWithError(http.StatusBadRequest, amountErr).SetType(gin.ErrorTypePublic)
	case errors.As(err, &transitionErr):
		_ = c.AbortWithError(http.StatusUnprocessableEntity, transitionErr).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrNotEnoughBalance):
		_ = c.AbortWithError(http.StatusPaymentRequired, domain.ErrNotEnoughBalance).
			SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrRecordNotFound):
		_ = c.AbortWithError(http.StatusNotFound, domain.ErrRecordNotFound).SetType(gin.ErrorTypePublic)
	case errors.Is(err, domain.ErrUpstreamTimeout):
		_ = c.AbortWithError(http.StatusRequestTimeout, domain.ErrUpstreamTimeout).
			SetType(gin.ErrorTypePublic)
	case errors.As(err, &upstreamErr):
		_ = c.AbortWithError(http.StatusBadGateway, upstreamErr).SetType(gin.ErrorTypePublic)
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
