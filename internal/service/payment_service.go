package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MengJong168/tdmmail/internal/domain"
	"github.com/MengJong168/tdmmail/internal/khqr"
	"github.com/MengJong168/tdmmail/internal/transport/recordkeeper"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	// Currency платежи принимаются только в долларах.
	Currency = "USD"
	// TransactionTTL срок жизни сгенерированного QR кода.
	TransactionTTL = 3 * time.Minute
)

// maxAmount верхняя граница суммы одного платежа.
var maxAmount = decimal.NewFromInt(10000)

// Merchant статические реквизиты мерчанта, зашиваемые в каждую платежную строку.
type Merchant struct {
	BankAccount   string
	Name          string
	City          string
	StoreLabel    string
	PhoneNumber   string
	TerminalLabel string
}

// PaymentService генерирует QR платежи и опрашивает их статус.
type PaymentService struct {
	recordKeeper RecordKeeper
	statusClient PaymentStatusClient
	encoder      khqr.Encoder
	renderer     QRRenderer
	merchant     Merchant
	l            *logrus.Entry
	// now выделено в поле для подмены времени в тестах истечения срока.
	now func() time.Time
}

func NewPaymentService(
	recordKeeper RecordKeeper,
	statusClient PaymentStatusClient,
	encoder khqr.Encoder,
	renderer QRRenderer,
	merchant Merchant,
	l *logrus.Logger,
) *PaymentService {
	return &PaymentService{
		recordKeeper: recordKeeper,
		statusClient: statusClient,
		encoder:      encoder,
		renderer:     renderer,
		merchant:     merchant,
		l:            l.WithField("component", "payment_service"),
		now:          time.Now,
	}
}

// QRCode результат генерации платежного QR кода.
type QRCode struct {
	Expiry        time.Time
	TransactionID string
	Fingerprint   string
	Amount        decimal.Decimal
	ImagePNG      []byte
}

// GenerateQR создает платежную строку на сумму amount, её отпечаток и PNG
// изображение, после чего регистрирует транзакцию в сервисе учета.
//
// Граница суммы проверяется до какого-либо сетевого вызова. Сбой регистрации
// транзакции не фатален. QR все равно возвращается, а опрос статуса деградирует
// до работы без локальной записи.
func (s *PaymentService) GenerateQR(ctx context.Context, userID int64, amount decimal.Decimal) (*QRCode, error) {
	if !amount.IsPositive() || amount.GreaterThan(maxAmount) {
		return nil, domain.NewAmountRangeError(amount.String())
	}

	now := s.now()
	transactionID := fmt.Sprintf("TRX%d", now.Unix())

	payload, encodeErr := s.encoder.Encode(khqr.PaymentArgs{
		BankAccount:   s.merchant.BankAccount,
		MerchantName:  s.merchant.Name,
		MerchantCity:  s.merchant.City,
		Amount:        amount,
		Currency:      Currency,
		StoreLabel:    s.merchant.StoreLabel,
		PhoneNumber:   s.merchant.PhoneNumber,
		BillNumber:    transactionID,
		TerminalLabel: s.merchant.TerminalLabel,
	})
	if encodeErr != nil {
		return nil, fmt.Errorf("generate qr: %w", encodeErr)
	}
	hash := s.encoder.Fingerprint(payload)

	image, renderErr := s.renderer.Render(payload)
	if renderErr != nil {
		return nil, fmt.Errorf("generate qr: %w", renderErr)
	}

	expiry := now.Add(TransactionTTL)
	if saveErr := s.recordKeeper.CreateTransaction(ctx, userID, recordkeeper.CreateTransactionArgs{
		TransactionID: transactionID,
		Amount:        amount,
		Fingerprint:   hash,
		Expiry:        expiry,
	}); saveErr != nil {
		s.l.WithError(saveErr).WithField("transactionID", transactionID).
			Warn("failed to save transaction to record keeper")
	}

	return &QRCode{
		Expiry:        expiry,
		TransactionID: transactionID,
		Fingerprint:   hash,
		Amount:        amount,
		ImagePNG:      image,
	}, nil
}

// PaymentStatus результат одного опроса статуса оплаты.
type PaymentStatus struct {
	Status  domain.PaymentStatusType
	Message string
}

// Poll выполняет один шаг машины состояний транзакции:
//
//	PENDING --PAID--> PAID (терминально, ровно один вызов начисления)
//	PENDING --UNPAID--> PENDING (без изменений)
//	PENDING --истек срок--> EXPIRED (терминально, внешний API не опрашивается)
//
// Сбой внешнего API статуса возвращается как статус ERROR без каких-либо
// мутаций. Сбой начисления при первом PAID не скрывает сам факт оплаты:
// наблюдение статуса и его персистентность расцеплены.
func (s *PaymentService) Poll(ctx context.Context, fingerprint string) (*PaymentStatus, error) {
	transaction := s.findTransaction(ctx, fingerprint)

	if transaction != nil {
		// Повторное наблюдение PAID не должно начислять баланс второй раз.
		if transaction.Status == domain.TransactionStatusPaid {
			return &PaymentStatus{Status: domain.PaymentStatusPaid}, nil
		}
		if transaction.Status == domain.TransactionStatusPending && transaction.Expired(s.now()) {
			return &PaymentStatus{
				Status:  domain.PaymentStatusExpired,
				Message: "transaction expired",
			}, nil
		}
	}

	response, checkErr := s.statusClient.CheckPayment(ctx, fingerprint)
	if checkErr != nil {
		s.l.WithError(checkErr).WithField("fingerprint", fingerprint).Error("check payment status")
		return &PaymentStatus{
			Status:  domain.PaymentStatusError,
			Message: "failed to fetch status from external API",
		}, nil
	}

	if response.Status == domain.PaymentStatusPaid {
		// начисление best-effort: недоступность сервиса учета не отменяет
		// наблюдение PAID, клиенту оно возвращается в любом случае.
		if creditErr := s.recordKeeper.MarkPaid(ctx, fingerprint); creditErr != nil {
			s.l.WithError(creditErr).WithField("fingerprint", fingerprint).
				Error("failed to credit payment")
		}
	}

	return &PaymentStatus{Status: response.Status, Message: response.Message}, nil
}

// FindTransaction возвращает транзакцию юзера по её ID. Используется роутом
// проверки оплаты по transaction_id для разрешения ID в отпечаток.
func (s *PaymentService) FindTransaction(
	ctx context.Context,
	userID int64,
	transactionID string,
) (*domain.Transaction, error) {
	transaction, err := s.recordKeeper.GetTransaction(ctx, userID, transactionID)
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	return transaction, nil
}

// findTransaction ищет локальную запись по отпечатку. Любая ошибка поиска
// деградирует опрос до работы без локального состояния, как в случае опроса
// по "чужому" отпечатку.
func (s *PaymentService) findTransaction(ctx context.Context, fingerprint string) *domain.Transaction {
	transaction, err := s.recordKeeper.FindTransactionByFingerprint(ctx, fingerprint)
	if err != nil {
		if !errors.Is(err, domain.ErrRecordNotFound) {
			s.l.WithError(err).WithField("fingerprint", fingerprint).
				Warn("transaction lookup failed, polling statelessly")
		}
		return nil
	}
	return transaction
}
