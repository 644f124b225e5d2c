package statement

import (
	"strings"

	"billtrack/statement-service/internal/account"
	"billtrack/statement-service/internal/disco"
)

// BillRequest is the form a customer submits to request a statement.
// Accepted both form-encoded and as JSON.
type BillRequest struct {
	FullName    string `form:"fullName" json:"fullName"`
	Address     string `form:"address" json:"address"`
	MeterNumber string `form:"meterNumber" json:"meterNumber"`
	Disco       string `form:"selectedDisco" json:"selectedDisco"`
}

// Trim strips surrounding whitespace from every field, matching how the
// fields are compared and validated downstream.
func (r *BillRequest) Trim() {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Address = strings.TrimSpace(r.Address)
	r.MeterNumber = strings.TrimSpace(r.MeterNumber)
	r.Disco = strings.TrimSpace(r.Disco)
}

// Complete reports whether every required field is present.
func (r *BillRequest) Complete() bool {
	return r.FullName != "" && r.Address != "" && r.MeterNumber != "" && r.Disco != ""
}

// Data is everything the renderer needs to lay out one statement.
type Data struct {
	Request        BillRequest
	Disco          disco.Info
	RegisteredName string
	Recharge       *account.RechargeRecord
	Consumption    account.ConsumptionPeriod
}

// ClientError is a request problem the caller can fix; it maps to HTTP 400.
type ClientError struct {
	Message string
}

func (e *ClientError) Error() string { return e.Message }
