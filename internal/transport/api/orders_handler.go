package api

import (
	"context"
	"net/http"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/gin-gonic/gin"
)

type OrdersHandler struct {
	orderSvs OrderServicer
}

func NewOrdersHandler(orderSvs OrderServicer) *OrdersHandler {
	return &OrdersHandler{
		orderSvs: orderSvs,
	}
}

type CreateOrderParams struct {
	Service string `binding:"required,min=1,max=64" json:"service"`
}

type CreateOrderResponse struct {
	Success bool    `json:"success"`
	Mail    string  `json:"mail"`
	OrderID string  `json:"order_id"`
	Cost    float64 `json:"cost"`
}

// Create POST RouteGroup + OrdersRoute. Заказывает у провайдера одноразовый
// ящик для указанного сервиса.
func (o *OrdersHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateOrderParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultProvisionTimeout)
	defer cancel()

	order, createErr := o.orderSvs.Create(reqCtx, currentUserID, params.Service)
	if createErr != nil {
		abortWithServiceError(c, createErr)
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{
		Success: true,
		Mail:    order.Mail,
		OrderID: order.OrderID,
		Cost:    order.Cost.InexactFloat64(),
	})
}

type OrderResponse struct {
	CreatedAt time.Time              `json:"created_at"`
	OrderID   string                 `json:"order_id"`
	Service   string                 `json:"service"`
	Mail      string                 `json:"mail"`
	OTP       string                 `json:"otp,omitempty"`
	Cost      float64                `json:"cost"`
	Status    domain.OrderStatusType `json:"status"`
}

// Index GET RouteGroup + OrdersRoute.
func (o *OrdersHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()
	orders, err := o.orderSvs.GetByUserID(reqCtx, currentUserID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	if len(orders) == 0 {
		c.AbortWithStatus(http.StatusNoContent)
		return
	}

	var response = make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderResponse{
			CreatedAt: order.CreatedAt,
			OrderID:   order.OrderID,
			Service:   order.Service,
			Mail:      order.Mail,
			OTP:       order.OTP,
			Cost:      order.Cost.InexactFloat64(),
			Status:    order.Status,
		}
	}

	c.JSON(http.StatusOK, response)
}

type OTPResponse struct {
	Success bool    `json:"success"`
	OTP     string  `json:"otp"`
	Amount  float64 `json:"amount,omitempty"`
}

// OTP POST RouteGroup + OrderOTPRoute. Один шаг опроса кода подтверждения.
// Пустой otp в ответе означает, что код еще не пришел.
func (o *OrdersHandler) OTP(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID := c.Param("orderID")

	reqCtx, cancel := context.WithTimeout(c, DefaultProvisionTimeout)
	defer cancel()

	result, err := o.orderSvs.PollOTP(reqCtx, currentUserID, orderID)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, OTPResponse{
		Success: true,
		OTP:     result.OTP,
		Amount:  result.Amount.InexactFloat64(),
	})
}

// Complete POST RouteGroup + OrderCompleteRoute. Переводит заказ в терминальный
// статус. Повторный вызов - no-op успех.
func (o *OrdersHandler) Complete(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID := c.Param("orderID")

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.orderSvs.Complete(reqCtx, currentUserID, orderID); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": domain.OrderStatusCompleted})
}

type UpdateOrderStatusParams struct {
	Status domain.OrderStatusType `binding:"required" json:"status"`
}

// UpdateStatus POST RouteGroup + OrderStatusRoute. Перевод заказа в указанный
// статус согласно таблице переходов.
func (o *OrdersHandler) UpdateStatus(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)
	orderID := c.Param("orderID")

	var params UpdateOrderStatusParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := o.orderSvs.UpdateStatus(reqCtx, currentUserID, orderID, params.Status); err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "status": params.Status})
}
