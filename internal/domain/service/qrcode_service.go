package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for rendering job share QR codes.
type QRCodeService interface {
	// GenerateJobQR renders a PNG QR code encoding the share payload for the
	// given job posting.
	GenerateJobQR(jobID uuid.UUID) ([]byte, error)
}
