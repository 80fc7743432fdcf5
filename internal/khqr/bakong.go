package khqr

import (
	"errors"
	"fmt"
	"strings"
)

// Тэги EMVCo merchant-presented QR, используемые в KHQR.
const (
	tagPayloadFormat   = "00"
	tagPointOfInit     = "01"
	tagMerchantAccount = "29"
	tagMerchantCode    = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountryCode     = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"
	tagCRC             = "63"

	// под-тэги шаблона 29.
	subTagAccountID = "00"

	// под-тэги шаблона 62.
	subTagBillNumber    = "01"
	subTagMobileNumber  = "02"
	subTagStoreLabel    = "03"
	subTagTerminalLabel = "07"
)

const (
	payloadFormatValue = "01"
	// динамический QR: сумма зашита в строку, код одноразовый.
	pointOfInitDynamic = "12"
	merchantCodeRetail = "5999"
	countryCodeKH      = "KH"

	maxFieldLength = 99
)

// Цифровые коды валют по ISO 4217.
var currencyNumeric = map[string]string{
	"USD": "840",
	"KHR": "116",
}

var (
	ErrBlankField          = errors.New("required field is blank")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)

// BakongEncoder собирает KHQR строку в нотации EMV TLV с CRC-16 хвостом.
// Поля кодируются позиционно, поэтому строка детерминирована.
type BakongEncoder struct{}

func (BakongEncoder) Encode(args PaymentArgs) (string, error) {
	if err := validateArgs(args); err != nil {
		return "", err
	}

	currency, ok := currencyNumeric[args.Currency]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedCurrency, args.Currency)
	}

	var b strings.Builder

	fields := []struct {
		tag   string
		value string
	}{
		{tagPayloadFormat, payloadFormatValue},
		{tagPointOfInit, pointOfInitDynamic},
		{tagMerchantAccount, tlv(subTagAccountID, args.BankAccount)},
		{tagMerchantCode, merchantCodeRetail},
		{tagCurrency, currency},
		{tagAmount, args.Amount.String()},
		{tagCountryCode, countryCodeKH},
		{tagMerchantName, args.MerchantName},
		{tagMerchantCity, args.MerchantCity},
		{tagAdditionalData, additionalData(args)},
	}
	for _, f := range fields {
		// Двузначная длина в tlv не представит значение длиннее 99 байт.
		// Под проверку попадают и собранные шаблоны 29 и 62.
		if len(f.value) > maxFieldLength {
			return "", fmt.Errorf("tag %s value exceeds %d bytes", f.tag, maxFieldLength)
		}
		b.WriteString(tlv(f.tag, f.value))
	}

	// CRC считается по всей строке включая собственный тэг и длину.
	payload := b.String() + tagCRC + "04"
	return payload + fmt.Sprintf("%04X", crc16(payload)), nil
}

func (BakongEncoder) Fingerprint(payload string) string {
	return fingerprint(payload)
}

// additionalData собирает шаблон 62. Пустые необязательные поля пропускаются.
func additionalData(args PaymentArgs) string {
	var b strings.Builder
	b.WriteString(tlv(subTagBillNumber, args.BillNumber))
	if args.PhoneNumber != "" {
		b.WriteString(tlv(subTagMobileNumber, args.PhoneNumber))
	}
	if args.StoreLabel != "" {
		b.WriteString(tlv(subTagStoreLabel, args.StoreLabel))
	}
	if args.TerminalLabel != "" {
		b.WriteString(tlv(subTagTerminalLabel, args.TerminalLabel))
	}
	return b.String()
}

func validateArgs(args PaymentArgs) error {
	required := map[string]string{
		"bank account":  args.BankAccount,
		"merchant name": args.MerchantName,
		"merchant city": args.MerchantCity,
		"bill number":   args.BillNumber,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: %s", ErrBlankField, name)
		}
		if len(value) > maxFieldLength {
			return fmt.Errorf("field %s exceeds %d bytes", name, maxFieldLength)
		}
	}

	optional := map[string]string{
		"phone number":   args.PhoneNumber,
		"store label":    args.StoreLabel,
		"terminal label": args.TerminalLabel,
	}
	for name, value := range optional {
		if len(value) > maxFieldLength {
			return fmt.Errorf("field %s exceeds %d bytes", name, maxFieldLength)
		}
	}
	return nil
}

// tlv кодирует пару тэг-значение: тэг, двузначная длина, значение.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

// crc16 реализует CRC-16/CCITT-FALSE (полином 0x1021, init 0xFFFF),
// именно его требует стандарт EMV QR для тэга 63.
func crc16(s string) uint16 {
	const poly = 0x1021
	crc := uint16(0xFFFF)
	for i := 0; i < len(s); i++ {
		crc ^= uint16(s[i]) << 8
		for range 8 {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
