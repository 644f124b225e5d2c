package disco

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryConsistency(t *testing.T) {
	r := DefaultRegistry()

	// Every code must exist in both the metadata and prefix tables.
	for _, code := range r.Codes() {
		assert.True(t, r.Known(code), "code %s missing from one of the tables", code)
		assert.NotEmpty(t, r.Prefixes(code), "code %s has no prefixes", code)

		info, ok := r.Lookup(code)
		require.True(t, ok)
		assert.Equal(t, code, info.Code)
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Address)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	r := DefaultRegistry()

	_, ok := r.Lookup("UNKNOWN")
	assert.False(t, ok)
	assert.False(t, r.Known("UNKNOWN"))
	assert.Nil(t, r.Prefixes("UNKNOWN"))
}

func TestValidMeter(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name  string
		meter string
		disco string
		want  bool
	}{
		{"known AEDC prefix", "04123456789", "AEDC", true},
		{"known AEDC short prefix", "04019999999", "AEDC", true},
		{"known IE prefix", "04101112233", "IE", true},
		{"prefix of wrong disco", "04101112233", "AEDC", false},
		{"no matching prefix", "99999999999", "AEDC", false},
		{"too short", "0412345678", "AEDC", false},
		{"too long", "041234567890", "AEDC", false},
		{"non-digit characters", "04123abc789", "AEDC", false},
		{"eleven non-digits", "abcdefghijk", "AEDC", false},
		{"unknown disco", "04123456789", "UNKNOWN", false},
		{"empty meter", "", "AEDC", false},
		{"empty disco", "04123456789", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.ValidMeter(tt.meter, tt.disco))
		})
	}
}

func TestValidMeterUnknownDiscoAlwaysFalse(t *testing.T) {
	r := DefaultRegistry()

	// Even a structurally perfect meter number fails for unknown codes.
	for _, meter := range []string{"04123456789", "04101112233", "04901234567"} {
		assert.False(t, r.ValidMeter(meter, "NOSUCH"))
	}
}

func TestRegisteredName(t *testing.T) {
	r := DefaultRegistry()

	tests := []struct {
		name  string
		meter string
		disco string
		want  string
	}{
		{"known disco", "04123456789", "AEDC", "Customer (Abuja - 6789)"},
		{"known disco IE", "04101112233", "IE", "Customer (Ikeja - 2233)"},
		{"unknown disco uses raw code", "04123456789", "FOO", "Customer (FOO - 6789)"},
		{"short meter", "123", "AEDC", "Customer (Abuja - XXXX)"},
		{"empty meter", "", "AEDC", "Customer (Abuja - XXXX)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RegisteredName(tt.meter, tt.disco))
		})
	}
}
