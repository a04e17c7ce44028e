package utils

import (
	"strings"

	"github.com/google/uuid"
)

// GenerateOrderNo generates a unique booking order number
func GenerateOrderNo() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// GenerateWaybillNo generates a unique waybill number for a loading
func GenerateWaybillNo() string {
	return "WB-" + strings.ToUpper(uuid.New().String()[:8])
}
