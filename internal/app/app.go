package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MengJong168/tdmmail/internal/config"
	"github.com/MengJong168/tdmmail/internal/khqr"
	"github.com/MengJong168/tdmmail/internal/qrimg"
	"github.com/MengJong168/tdmmail/internal/service"
	"github.com/MengJong168/tdmmail/internal/transport/api"
	"github.com/MengJong168/tdmmail/internal/transport/bakong"
	"github.com/MengJong168/tdmmail/internal/transport/provisioning"
	"github.com/MengJong168/tdmmail/internal/transport/recordkeeper"
	"github.com/sirupsen/logrus"
)

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app on %s", a.Config.RunAddress)

	recordKeeperClient := recordkeeper.New(a.Config.RecordKeeperURL)
	statusClient := bakong.New(a.Config.BakongStatusURL)
	provisionerClient := provisioning.New(a.Config.ProvisioningURL, a.Config.ProvisioningKey)

	services, sErr := service.Factory(service.FactoryArgs{
		RecordKeeper: recordKeeperClient,
		StatusClient: statusClient,
		Provisioner:  provisionerClient,
		Renderer:     qrimg.NewRenderer(),
		Merchant: service.Merchant{
			BankAccount:   a.Config.BankAccount,
			Name:          a.Config.MerchantName,
			City:          a.Config.MerchantCity,
			StoreLabel:    a.Config.StoreLabel,
			PhoneNumber:   a.Config.PhoneNumber,
			TerminalLabel: a.Config.TerminalLabel,
		},
		EncoderMode: khqr.Mode(a.Config.SignerMode),
		JWTSecret:   []byte(a.Config.JWTUserSecret),
		Logger:      a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router := api.New(api.RouterArgs{
		Logger:         a.Logger,
		UserService:    services.UserService,
		PaymentService: services.PaymentService,
		OrderService:   services.OrderService,
		BlService:      services.BalanceService,
		JWTSecretKey:   []byte(a.Config.JWTUserSecret),
	})

	errChan := make(chan error, 1)

	go func() {
		if runErr := router.Run(a.Config.RunAddress); runErr != nil {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}
