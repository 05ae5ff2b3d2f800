package service

import (
	"fmt"

	"github.com/skip2/go-qrcode"
)

type QRGenerator interface {
	Generate(bookingID int) ([]byte, error)
}

type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) Generate(bookingID int) ([]byte, error) {
	qrData := fmt.Sprintf("%s/#/my-bookings?booking=%d", g.BaseURL, bookingID)
	return qrcode.Encode(qrData, qrcode.Medium, 256)
}
