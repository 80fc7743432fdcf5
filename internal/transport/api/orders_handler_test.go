package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/logger"
	"github.com/MengJong168/tdmmail/internal/service"
	"github.com/MengJong168/tdmmail/internal/service/tokens"
	"github.com/MengJong168/tdmmail/internal/transport/api/mocks"
	"github.com/MengJong168/tdmmail/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockOrderService *mocks.MockOrderServicer
	jwtSecret        []byte
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockOrderService = mocks.NewMockOrderServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:       logger.New(os.Stdout),
		OrderService: s.mockOrderService,
		JWTSecretKey: s.jwtSecret,
	})
}

func (s *OrderHandlerTestSuite) TestCreateOrder() {
	var currentUserID int64 = 1
	var brokeUserID int64 = 2

	currentUserJWTToken, cJWTTokenErr := tokens.GenerateUserJWT(currentUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(cJWTTokenErr)

	brokeUserJWTToken, bJWTTokenErr := tokens.GenerateUserJWT(brokeUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(bJWTTokenErr)

	// Моки
	// Валидный запрос
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentUserID, "telegram").
		Return(&service.ProvisionedOrder{
			Mail:    "abc123@tdmmail.pro",
			OrderID: "ORD1700000000",
			Cost:    service.ServiceCost(),
		}, nil).Times(1)
	// Баланса не хватает.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), brokeUserID, "telegram").
		Return(nil, domain.ErrNotEnoughBalance).Times(1)
	// Провайдер не ответил вовремя.
	s.mockOrderService.EXPECT().
		Create(gomock.Any(), currentUserID, "whatsapp").
		Return(nil, domain.ErrUpstreamTimeout).Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
		jwtToken   string
	}{
		{
			name:       "all ok",
			payload:    `{"service":"telegram"}`,
			wantStatus: http.StatusOK,
			jwtToken:   currentUserJWTToken,
		}, {
			name:       "not enough balance",
			payload:    `{"service":"telegram"}`,
			wantStatus: http.StatusPaymentRequired,
			jwtToken:   brokeUserJWTToken,
		}, {
			name:       "provider timeout",
			payload:    `{"service":"whatsapp"}`,
			wantStatus: http.StatusRequestTimeout,
			jwtToken:   currentUserJWTToken,
		}, {
			name:       "not authorized",
			payload:    `{"service":"telegram"}`,
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "missing service",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
			jwtToken:   currentUserJWTToken,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + OrdersRoute,
				Body:   bytes.NewReader([]byte(t.payload)),
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}
			reqOpts = append(reqOpts, testutils.WithHeader("Content-Type", "application/json"))
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response CreateOrderResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.True(response.Success)
				s.Equal("abc123@tdmmail.pro", response.Mail)
				s.Equal("ORD1700000000", response.OrderID)
				s.InDelta(0.045, response.Cost, 1e-9)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestIndex() {
	var userID int64 = 1
	var noOrdersUserID int64 = 2

	userJWTToken, uJWTErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(uJWTErr)
	userNoOrdersJWTToken, uNoOrdersJWTErr := tokens.GenerateUserJWT(noOrdersUserID, time.Hour, s.jwtSecret)
	s.Require().NoError(uNoOrdersJWTErr)

	orders := []domain.Order{
		{
			CreatedAt: time.Now(),
			OrderID:   "ORD1700000000",
			UserID:    userID,
			Service:   "telegram",
			Mail:      "abc123@tdmmail.pro",
			Cost:      decimal.RequireFromString("0.045"),
			Status:    domain.OrderStatusRunning,
		},
	}
	s.mockOrderService.EXPECT().GetByUserID(gomock.Any(), userID).Return(orders, nil)
	s.mockOrderService.EXPECT().GetByUserID(gomock.Any(), noOrdersUserID).Return([]domain.Order{}, nil)

	cases := []struct {
		name       string
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			jwtToken:   userJWTToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "not authorized",
			jwtToken:   "",
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "no orders",
			jwtToken:   userNoOrdersJWTToken,
			wantStatus: http.StatusNoContent,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodGet,
				URL:    RouteGroup + OrdersRoute,
			}
			var reqOpts []func(*testutils.RequestOptions)
			if t.jwtToken != "" {
				reqOpts = append(reqOpts, testutils.WithBearerToken(t.jwtToken))
			}
			res, err := testutils.MakeRequest(args, reqOpts...)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Require().NoError(err)
			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var response []OrderResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
				s.Require().Len(response, 1)
				s.Equal("ORD1700000000", response[0].OrderID)
				s.Equal(domain.OrderStatusRunning, response[0].Status)
			}
		})
	}
}

func (s *OrderHandlerTestSuite) TestOTP() {
	var userID int64 = 1
	orderID := "ORD1700000000"

	jwtToken, jwtErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	gomock.InOrder(
		s.mockOrderService.EXPECT().
			PollOTP(gomock.Any(), userID, orderID).
			Return(&service.OTPResult{}, nil),
		s.mockOrderService.EXPECT().
			PollOTP(gomock.Any(), userID, orderID).
			Return(&service.OTPResult{OTP: "12345", Amount: service.ServiceCost()}, nil),
	)

	for _, wantOTP := range []string{"", "12345"} {
		res, err := testutils.MakeRequest(testutils.RequestArgs{
			Router: s.router,
			Method: http.MethodPost,
			URL:    RouteGroup + "/user/orders/" + orderID + "/otp",
		}, testutils.WithBearerToken(jwtToken))
		s.Require().NoError(err)

		s.Equal(http.StatusOK, res.StatusCode)
		var response OTPResponse
		s.Require().NoError(json.NewDecoder(res.Body).Decode(&response))
		s.Require().NoError(res.Body.Close())

		s.True(response.Success)
		s.Equal(wantOTP, response.OTP)
	}
}

func (s *OrderHandlerTestSuite) TestUpdateStatus() {
	var userID int64 = 1
	orderID := "ORD1700000000"

	jwtToken, jwtErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), userID, orderID, domain.OrderStatusCompleted).
		Return(nil).Times(1)
	s.mockOrderService.EXPECT().
		UpdateStatus(gomock.Any(), userID, orderID, domain.OrderStatusRunning).
		Return(domain.NewInvalidStatusTransitionError(domain.OrderStatusCompleted, domain.OrderStatusRunning)).
		Times(1)

	cases := []struct {
		name       string
		payload    string
		wantStatus int
	}{
		{
			name:       "valid transition",
			payload:    `{"status":"completed"}`,
			wantStatus: http.StatusOK,
		}, {
			name:       "backwards transition",
			payload:    `{"status":"running"}`,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing status",
			payload:    `{}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPost,
				URL:    RouteGroup + "/user/orders/" + orderID + "/status",
				Body:   bytes.NewReader([]byte(t.payload)),
			}, testutils.WithBearerToken(jwtToken), testutils.WithHeader("Content-Type", "application/json"))
			s.Require().NoError(err)

			defer func() {
				closeErr := res.Body.Close()
				s.Require().NoError(closeErr)
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *OrderHandlerTestSuite) TestComplete() {
	var userID int64 = 1
	orderID := "ORD1700000000"

	jwtToken, jwtErr := tokens.GenerateUserJWT(userID, time.Hour, s.jwtSecret)
	s.Require().NoError(jwtErr)

	s.mockOrderService.EXPECT().
		Complete(gomock.Any(), userID, orderID).
		Return(nil).Times(1)

	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodPost,
		URL:    RouteGroup + "/user/orders/" + orderID + "/complete",
	}, testutils.WithBearerToken(jwtToken))
	s.Require().NoError(err)

	defer func() {
		closeErr := res.Body.Close()
		s.Require().NoError(closeErr)
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}
