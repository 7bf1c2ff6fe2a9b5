package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// GeneratePNG สร้างรูป QR Code ขนาด 256px จาก payload ที่กำหนด
// The PNG is returned to the registrant for download, not written to disk.
func GeneratePNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
