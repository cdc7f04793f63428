package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

// GenerateMeetingID derives a stable meeting identifier from a booking id,
// so repeated starts of the same booking produce the same room.
func GenerateMeetingID(bookingID string) string {
	sum := sha256.Sum256([]byte("skinbloom-meeting:" + bookingID))
	return "sb-" + hex.EncodeToString(sum[:])[:12]
}

func GenerateMeetingLink(baseUrl, meetingID string) string {
	return fmt.Sprintf("%s/%s", baseUrl, meetingID)
}

func GenerateFileName(prefix, resourceID, fileExtension string) string {
	timestamp := time.Now().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s_%s_%s%s", prefix, resourceID, timestamp, fileExtension)
}
