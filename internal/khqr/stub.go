package khqr

import "fmt"

// StubEncoder упрощенный кодировщик для стендов без доступа к Bakong.
// Формат строки не сканируется банковскими приложениями, но сохраняет
// детерминизм и контракт отпечатка.
type StubEncoder struct{}

func (StubEncoder) Encode(args PaymentArgs) (string, error) {
	if err := validateArgs(args); err != nil {
		return "", err
	}
	return fmt.Sprintf("BKQR|%s|%s|%s", args.BillNumber, args.Amount.String(), args.Currency), nil
}

func (StubEncoder) Fingerprint(payload string) string {
	return fingerprint(payload)
}
