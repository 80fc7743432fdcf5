package api

import (
	"time"

	"github.com/MengJong168/tdmmail/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 15 * time.Second
	// DefaultProvisionTimeout создание заказа и опрос OTP у провайдера
	// заметно медленнее остальных вызовов.
	DefaultProvisionTimeout = 35 * time.Second
)

const (
	RouteGroup         = "/api"
	RegisterRoute      = "/user/register"
	LoginRoute         = "/user/login"
	BalanceRoute       = "/user/balance"
	OrdersRoute        = "/user/orders"
	OrderOTPRoute      = "/user/orders/:orderID/otp"
	OrderCompleteRoute = "/user/orders/:orderID/complete"
	OrderStatusRoute   = "/user/orders/:orderID/status"
	PaymentQRRoute     = "/payments/qr"
	PaymentCheckRoute  = "/payments/check"
)

type RouterArgs struct {
	Logger         *logrus.Logger
	UserService    UserServicer
	PaymentService PaymentServicer
	OrderService   OrderServicer
	BlService      BalanceServicer
	JWTSecretKey   []byte
}

func New(args RouterArgs) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors())

	authHandler := NewAuthHandler(args.UserService)
	paymentsHandler := NewPaymentsHandler(args.PaymentService)
	ordersHandler := NewOrdersHandler(args.OrderService)
	balanceHandler := NewBalanceHandler(args.BlService)

	api := r.Group(RouteGroup)

	api.POST(RegisterRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Register)
	api.POST(LoginRoute, middlewares.NonAuthRequired(args.JWTSecretKey), authHandler.Login)

	// опрос по отпечатку не требует авторизации: отпечаток сам по себе
	// не раскрывает ничего, кроме статуса оплаты.
	api.GET(PaymentCheckRoute, paymentsHandler.CheckByFingerprint)

	api.Use(middlewares.AuthRequired(args.JWTSecretKey))
	// ниже все роуты группы требуют авторизованного пользователя.
	api.GET(BalanceRoute, balanceHandler.Index)

	api.GET(OrdersRoute, ordersHandler.Index)
	api.POST(OrdersRoute, ordersHandler.Create)
	api.POST(OrderOTPRoute, ordersHandler.OTP)
	api.POST(OrderCompleteRoute, ordersHandler.Complete)
	api.POST(OrderStatusRoute, ordersHandler.UpdateStatus)

	api.POST(PaymentQRRoute, paymentsHandler.GenerateQR)
	api.POST(PaymentCheckRoute, paymentsHandler.Check)

	return r
}
