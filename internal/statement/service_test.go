package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"billtrack/statement-service/internal/account"
	"billtrack/statement-service/internal/disco"
)

// countingAccounts wraps the mock store and counts lookup invocations so
// tests can assert that rejected requests never reach the backend.
type countingAccounts struct {
	store            *account.Store
	rechargeCalls    int
	consumptionCalls int
}

func (c *countingAccounts) LastRecharge(meterNumber, discoCode string) *account.RechargeRecord {
	c.rechargeCalls++
	return c.store.LastRecharge(meterNumber, discoCode)
}

func (c *countingAccounts) Consumption(meterNumber, discoCode string) account.ConsumptionPeriod {
	c.consumptionCalls++
	return c.store.Consumption(meterNumber, discoCode)
}

func newTestService(t *testing.T) (*Service, *countingAccounts) {
	t.Helper()
	accounts := &countingAccounts{store: account.NewStore(account.SystemClock{})}
	assets := NewAssets(t.TempDir(), zap.NewNop())
	renderer := NewRenderer(assets, "Bill Track NG", zap.NewNop())
	svc := NewService(disco.DefaultRegistry(), accounts, renderer, zap.NewNop())
	return svc, accounts
}

func TestPrepareValidRequest(t *testing.T) {
	svc, accounts := newTestService(t)

	data, err := svc.Prepare(BillRequest{
		FullName:    "Jane Doe",
		Address:     "1 Test St",
		MeterNumber: "04123456789",
		Disco:       "AEDC",
	})
	require.NoError(t, err)

	assert.Equal(t, "AEDC", data.Disco.Code)
	assert.Equal(t, "Customer (Abuja - 6789)", data.RegisteredName)
	require.NotNil(t, data.Recharge)
	assert.Equal(t, "25/04/2024", data.Recharge.Date)
	assert.Equal(t, 210.5, data.Consumption.ConsumptionKWh)
	assert.Equal(t, 1, accounts.rechargeCalls)
	assert.Equal(t, 1, accounts.consumptionCalls)
}

func TestPrepareTrimsFields(t *testing.T) {
	svc, _ := newTestService(t)

	data, err := svc.Prepare(BillRequest{
		FullName:    "  Jane Doe  ",
		Address:     "\t1 Test St\n",
		MeterNumber: " 04123456789 ",
		Disco:       " AEDC ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", data.Request.FullName)
	assert.Equal(t, "1 Test St", data.Request.Address)
	assert.Equal(t, "04123456789", data.Request.MeterNumber)
	assert.Equal(t, "AEDC", data.Request.Disco)
}

func TestPrepareMissingFieldSkipsLookups(t *testing.T) {
	svc, accounts := newTestService(t)

	_, err := svc.Prepare(BillRequest{
		FullName:    "Jane Doe",
		MeterNumber: "04123456789",
		Disco:       "AEDC",
	})

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Contains(t, clientErr.Message, "required")
	assert.Zero(t, accounts.rechargeCalls)
	assert.Zero(t, accounts.consumptionCalls)
}

func TestPrepareWhitespaceOnlyFieldIsMissing(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Prepare(BillRequest{
		FullName:    "Jane Doe",
		Address:     "   ",
		MeterNumber: "04123456789",
		Disco:       "AEDC",
	})

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
}

func TestPrepareUnknownDisco(t *testing.T) {
	svc, accounts := newTestService(t)

	_, err := svc.Prepare(BillRequest{
		FullName:    "Jane Doe",
		Address:     "1 Test St",
		MeterNumber: "04123456789",
		Disco:       "UNKNOWN",
	})

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Contains(t, clientErr.Message, "Invalid DISCO")
	assert.Zero(t, accounts.rechargeCalls)
	assert.Zero(t, accounts.consumptionCalls)
}

func TestPrepareBadMeterNamesDisco(t *testing.T) {
	svc, accounts := newTestService(t)

	_, err := svc.Prepare(BillRequest{
		FullName:    "Jane Doe",
		Address:     "1 Test St",
		MeterNumber: "99999999999",
		Disco:       "AEDC",
	})

	var clientErr *ClientError
	require.ErrorAs(t, err, &clientErr)
	assert.Contains(t, clientErr.Message, "AEDC")
	assert.Contains(t, clientErr.Message, "Abuja Electricity Distribution Company")
	assert.Zero(t, accounts.rechargeCalls)
	assert.Zero(t, accounts.consumptionCalls)
}
