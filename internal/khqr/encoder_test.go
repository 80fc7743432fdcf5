package khqr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type EncoderTestSuite struct {
	suite.Suite
	args PaymentArgs
}

func TestEncoderSuite(t *testing.T) {
	suite.Run(t, new(EncoderTestSuite))
}

func (s *EncoderTestSuite) SetupTest() {
	s.args = PaymentArgs{
		BankAccount:   "meng_topup@aclb",
		MerchantName:  "MailShop",
		MerchantCity:  "Phnom Penh",
		Amount:        decimal.RequireFromString("5.00"),
		Currency:      "USD",
		StoreLabel:    "MShop",
		PhoneNumber:   "855976666666",
		BillNumber:    "TRX1700000000",
		TerminalLabel: "Cashier-01",
	}
}

// TestEncode_Deterministic повторное кодирование одних и тех же аргументов
// дает идентичную строку и идентичный отпечаток.
func (s *EncoderTestSuite) TestEncode_Deterministic() {
	for _, enc := range []Encoder{BakongEncoder{}, StubEncoder{}} {
		first, firstErr := enc.Encode(s.args)
		s.Require().NoError(firstErr)
		second, secondErr := enc.Encode(s.args)
		s.Require().NoError(secondErr)

		s.Equal(first, second)
		s.Equal(enc.Fingerprint(first), enc.Fingerprint(second))
	}
}

func (s *EncoderTestSuite) TestEncode_BakongLayout() {
	payload, err := BakongEncoder{}.Encode(s.args)
	s.Require().NoError(err)

	// формат и динамический point of initiation.
	s.True(strings.HasPrefix(payload, "000201"+"010212"))
	// позиционные поля присутствуют в TLV нотации.
	s.Contains(payload, tlv(subTagAccountID, s.args.BankAccount))
	s.Contains(payload, tlv(tagMerchantName, s.args.MerchantName))
	s.Contains(payload, tlv(tagMerchantCity, s.args.MerchantCity))
	s.Contains(payload, tlv(tagAmount, "5"))
	s.Contains(payload, tlv(tagCurrency, "840"))
	s.Contains(payload, tlv(subTagBillNumber, s.args.BillNumber))
	s.Contains(payload, tlv(subTagTerminalLabel, s.args.TerminalLabel))
}

// TestEncode_CRCTrailer хвост строки - корректная CRC-16/CCITT-FALSE сумма
// всего, что идет до нее.
func (s *EncoderTestSuite) TestEncode_CRCTrailer() {
	payload, err := BakongEncoder{}.Encode(s.args)
	s.Require().NoError(err)

	const crcHexLen = 4
	s.Require().Greater(len(payload), crcHexLen)

	body := payload[:len(payload)-crcHexLen]
	s.True(strings.HasSuffix(body, tagCRC+"04"))
	s.Equal(fmt.Sprintf("%04X", crc16(body)), payload[len(payload)-crcHexLen:])
}

func (s *EncoderTestSuite) TestEncode_AmountPrecisionPreserved() {
	args := s.args
	args.Amount = decimal.RequireFromString("0.045")

	payload, err := BakongEncoder{}.Encode(args)
	s.Require().NoError(err)
	s.Contains(payload, tlv(tagAmount, "0.045"))
}

func (s *EncoderTestSuite) TestEncode_BlankRequiredField() {
	cases := []struct {
		name   string
		mutate func(*PaymentArgs)
	}{
		{name: "blank bank account", mutate: func(a *PaymentArgs) { a.BankAccount = "" }},
		{name: "blank merchant name", mutate: func(a *PaymentArgs) { a.MerchantName = "  " }},
		{name: "blank bill number", mutate: func(a *PaymentArgs) { a.BillNumber = "" }},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := s.args
			t.mutate(&args)

			_, bakongErr := BakongEncoder{}.Encode(args)
			s.ErrorIs(bakongErr, ErrBlankField)

			_, stubErr := StubEncoder{}.Encode(args)
			s.ErrorIs(stubErr, ErrBlankField)
		})
	}
}

// TestEncode_FieldTooLong tlv пишет длину двумя цифрами, поэтому значение
// длиннее 99 байт должно отклоняться, а не ломать структуру строки.
func (s *EncoderTestSuite) TestEncode_FieldTooLong() {
	oversized := strings.Repeat("x", 100)

	cases := []struct {
		name   string
		mutate func(*PaymentArgs)
	}{
		{name: "oversized bill number", mutate: func(a *PaymentArgs) { a.BillNumber = oversized }},
		{name: "oversized store label", mutate: func(a *PaymentArgs) { a.StoreLabel = oversized }},
		{name: "oversized phone number", mutate: func(a *PaymentArgs) { a.PhoneNumber = oversized }},
		{name: "oversized terminal label", mutate: func(a *PaymentArgs) { a.TerminalLabel = oversized }},
		{
			// каждое поле шаблона 62 в пределах лимита, но собранный
			// шаблон целиком длиннее 99 байт.
			name: "oversized composed template",
			mutate: func(a *PaymentArgs) {
				a.BillNumber = strings.Repeat("b", 40)
				a.StoreLabel = strings.Repeat("s", 40)
				a.TerminalLabel = strings.Repeat("t", 40)
			},
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			args := s.args
			t.mutate(&args)

			_, err := BakongEncoder{}.Encode(args)
			s.Error(err)
		})
	}
}

func (s *EncoderTestSuite) TestEncode_UnsupportedCurrency() {
	args := s.args
	args.Currency = "EUR"

	_, err := BakongEncoder{}.Encode(args)
	s.ErrorIs(err, ErrUnsupportedCurrency)
}

func (s *EncoderTestSuite) TestStubEncode_Format() {
	payload, err := StubEncoder{}.Encode(s.args)
	s.Require().NoError(err)
	s.Equal("BKQR|TRX1700000000|5|USD", payload)
}

func (s *EncoderTestSuite) TestFingerprint() {
	enc := BakongEncoder{}

	hash := enc.Fingerprint("some payload")
	s.Len(hash, 32) // 128 бит в hex.
	s.Equal(hash, enc.Fingerprint("some payload"))
	s.NotEqual(hash, enc.Fingerprint("another payload"))
}

func (s *EncoderTestSuite) TestNew() {
	bakong, bakongErr := New(ModeBakong)
	s.Require().NoError(bakongErr)
	s.IsType(BakongEncoder{}, bakong)

	stub, stubErr := New(ModeStub)
	s.Require().NoError(stubErr)
	s.IsType(StubEncoder{}, stub)

	_, unknownErr := New("unknown")
	s.Error(unknownErr)
}
