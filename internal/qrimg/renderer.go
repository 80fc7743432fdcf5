// Package qrimg растеризует платежную строку в сканируемый PNG.
package qrimg

import (
	"github.com/pkg/errors"

	qrcode "github.com/skip2/go-qrcode"
)

// Уровень коррекции ошибок и размер изображения фиксированы конфигурацией
// пакета, вызывающая сторона их не выбирает.
const (
	recoveryLevel = qrcode.Medium
	imageSize     = 256
)

var ErrEmptyPayload = errors.New("empty payload")

// Renderer кодирует строку в PNG изображение QR кода.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

// Render возвращает PNG байты QR кода для payload. Пустая строка -
// единственный вид некорректного входа, возвращается явная ошибка.
func (Renderer) Render(payload string) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	png, err := qrcode.Encode(payload, recoveryLevel, imageSize)
	if err != nil {
		return nil, errors.Wrap(err, "encode qr image")
	}
	return png, nil
}
