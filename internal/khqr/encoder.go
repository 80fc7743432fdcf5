// Package khqr формирует KHQR-строку платежного запроса и её отпечаток.
package khqr

import (
	"crypto/md5" //nolint:gosec // отпечаток не криптографический, это ключ опроса статуса
	"encoding/hex"
	"fmt"

	"github.com/shopspring/decimal"
)

type Mode string

const (
	// ModeBakong полноценная EMV-подобная KHQR строка с CRC.
	ModeBakong Mode = "bakong"
	// ModeStub упрощенный формат для окружений без доступа к Bakong.
	ModeStub Mode = "stub"
)

// PaymentArgs параметры мерчант-платежа. Все поля кроме сумм - статическая
// конфигурация мерчанта, BillNumber уникален на каждую транзакцию.
type PaymentArgs struct {
	BankAccount   string
	MerchantName  string
	MerchantCity  string
	Amount        decimal.Decimal
	Currency      string
	StoreLabel    string
	PhoneNumber   string
	BillNumber    string
	TerminalLabel string
}

// Encoder чистая функция кодирования платежа в строку. Никакого I/O и
// скрытого состояния: одинаковые аргументы всегда дают одинаковую строку.
type Encoder interface {
	Encode(args PaymentArgs) (string, error)
	Fingerprint(payload string) string
}

// New возвращает реализацию кодировщика для заданного режима. Режим выбирается
// один раз при старте процесса через конфигурацию.
func New(mode Mode) (Encoder, error) {
	switch mode {
	case ModeBakong:
		return BakongEncoder{}, nil
	case ModeStub:
		return StubEncoder{}, nil
	default:
		return nil, fmt.Errorf("unknown khqr encoder mode %q", mode)
	}
}

// fingerprint считает md5 отпечаток строки. Используется как внешний ключ
// для опроса статуса оплаты.
func fingerprint(payload string) string {
	sum := md5.Sum([]byte(payload)) //nolint:gosec
	return hex.EncodeToString(sum[:])
}
