package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GenerateLinkQR renders a URL as a PNG QR code so the operator can
	// open a chat from a phone camera.
	GenerateLinkQR(link string) ([]byte, error)
}
