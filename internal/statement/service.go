package statement

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"billtrack/statement-service/internal/account"
	"billtrack/statement-service/internal/disco"
)

// Accounts is the slice of the mock billing backend the service needs.
type Accounts interface {
	LastRecharge(meterNumber, discoCode string) *account.RechargeRecord
	Consumption(meterNumber, discoCode string) account.ConsumptionPeriod
}

// Service validates statement requests and assembles render data. All
// validation runs before any lookup, so a rejected request never touches
// the account backend.
type Service struct {
	registry *disco.Registry
	accounts Accounts
	renderer *Renderer
	logger   *zap.Logger
}

// NewService creates a statement service.
func NewService(registry *disco.Registry, accounts Accounts, renderer *Renderer, logger *zap.Logger) *Service {
	return &Service{
		registry: registry,
		accounts: accounts,
		renderer: renderer,
		logger:   logger,
	}
}

// Prepare trims and validates a request, then resolves the account data a
// statement needs. Request problems come back as *ClientError.
func (s *Service) Prepare(req BillRequest) (*Data, error) {
	req.Trim()

	if !req.Complete() {
		return nil, &ClientError{Message: "Full Name, Address, Meter Number and DISCO selection are required."}
	}
	if !s.registry.Known(req.Disco) {
		return nil, &ClientError{Message: "Invalid DISCO selection or configuration."}
	}

	info, _ := s.registry.Lookup(req.Disco)
	if !s.registry.ValidMeter(req.MeterNumber, req.Disco) {
		s.logger.Info("meter validation failed",
			zap.String("disco", req.Disco),
			zap.String("meter", req.MeterNumber))
		return nil, &ClientError{
			Message: fmt.Sprintf("Invalid or unrecognized Meter Number for %s (%s). Please check the number and try again.", info.Name, info.Code),
		}
	}

	return &Data{
		Request:        req,
		Disco:          info,
		RegisteredName: s.registry.RegisteredName(req.MeterNumber, req.Disco),
		Recharge:       s.accounts.LastRecharge(req.MeterNumber, req.Disco),
		Consumption:    s.accounts.Consumption(req.MeterNumber, req.Disco),
	}, nil
}

// Render writes the statement PDF for prepared data to w.
func (s *Service) Render(data *Data, w io.Writer) error {
	return s.renderer.Render(*data, w)
}
