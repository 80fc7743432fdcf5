package api

import (
	"context"
	"encoding/base64"
	"net/http"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentsHandler struct {
	paymentSvs PaymentServicer
}

func NewPaymentsHandler(paymentSvs PaymentServicer) *PaymentsHandler {
	return &PaymentsHandler{
		paymentSvs: paymentSvs,
	}
}

// GenerateQRParams binding не проверяет наличие суммы: отсутствующее поле
// декодируется в ноль и отбрасывается проверкой диапазона в сервисе.
type GenerateQRParams struct {
	Amount decimal.Decimal `json:"amount"`
}

type QRResponse struct {
	Success       bool    `json:"success"`
	TransactionID string  `json:"transaction_id"`
	Fingerprint   string  `json:"md5_hash"`
	Amount        float64 `json:"amount"`
	ExpiresAt     string  `json:"expires_at"`
	// ImagePNG - PNG картинка QR кода в base64.
	ImagePNG string `json:"qr_image"`
}

// GenerateQR POST RouteGroup + PaymentQRRoute. Генерирует платежный QR код
// на переданную сумму.
func (h *PaymentsHandler) GenerateQR(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params GenerateQRParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	qr, err := h.paymentSvs.GenerateQR(reqCtx, currentUserID, params.Amount)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, QRResponse{
		Success:       true,
		TransactionID: qr.TransactionID,
		Fingerprint:   qr.Fingerprint,
		Amount:        qr.Amount.InexactFloat64(),
		ExpiresAt:     qr.Expiry.Format(time.RFC3339),
		ImagePNG:      base64.StdEncoding.EncodeToString(qr.ImagePNG),
	})
}

type CheckPaymentParams struct {
	TransactionID string `binding:"required" json:"transaction_id"`
}

type PaymentStatusResponse struct {
	Status  domain.PaymentStatusType `json:"status"`
	Message string                   `json:"message,omitempty"`
}

// Check POST RouteGroup + PaymentCheckRoute. Один шаг опроса статуса оплаты
// по transaction_id.
func (h *PaymentsHandler) Check(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CheckPaymentParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transaction, findErr := h.paymentSvs.FindTransaction(reqCtx, currentUserID, params.TransactionID)
	if findErr != nil {
		abortWithServiceError(c, findErr)
		return
	}

	status, err := h.paymentSvs.Poll(reqCtx, transaction.Fingerprint)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PaymentStatusResponse{Status: status.Status, Message: status.Message})
}

// CheckByFingerprint GET RouteGroup + PaymentCheckRoute. Опрос статуса оплаты
// по отпечатку платежной строки, без обращения к локальной записи юзера.
func (h *PaymentsHandler) CheckByFingerprint(c *gin.Context) {
	fingerprint := c.Query("md5")
	if fingerprint == "" {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "md5 query param is required"})
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	status, err := h.paymentSvs.Poll(reqCtx, fingerprint)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, PaymentStatusResponse{Status: status.Status, Message: status.Message})
}
