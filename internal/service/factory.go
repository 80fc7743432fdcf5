package service

import (
	"fmt"

	"github.com/MengJong168/tdmmail/internal/khqr"
	"github.com/sirupsen/logrus"
)

type AppServices struct {
	UserService    *UserService
	PaymentService *PaymentService
	OrderService   *OrderService
	BalanceService *BalanceService
}

type FactoryArgs struct {
	RecordKeeper RecordKeeper
	StatusClient PaymentStatusClient
	Provisioner  Provisioner
	Renderer     QRRenderer
	Merchant     Merchant
	EncoderMode  khqr.Mode
	JWTSecret    []byte
	Logger       *logrus.Logger
}

func Factory(args FactoryArgs) (*AppServices, error) {
	encoder, encoderErr := khqr.New(args.EncoderMode)
	if encoderErr != nil {
		return nil, fmt.Errorf("service factory: %s", encoderErr.Error())
	}

	return &AppServices{
		UserService: NewUserService(args.RecordKeeper, args.JWTSecret),
		PaymentService: NewPaymentService(
			args.RecordKeeper,
			args.StatusClient,
			encoder,
			args.Renderer,
			args.Merchant,
			args.Logger,
		),
		OrderService:   NewOrderService(args.RecordKeeper, args.Provisioner, args.Logger),
		BalanceService: NewBalanceService(args.RecordKeeper),
	}, nil
}
