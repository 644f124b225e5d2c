package disco

import "strings"

const meterNumberLength = 11

// ValidMeter reports whether meterNumber is acceptable for the given DISCO
// code. The checks run in order and the first failure rejects:
//  1. both arguments non-empty
//  2. digits only
//  3. exactly 11 characters
//  4. the code has prefixes registered
//  5. the number starts with one of those prefixes
func (r *Registry) ValidMeter(meterNumber, discoCode string) bool {
	if meterNumber == "" || discoCode == "" {
		return false
	}
	if !isDigits(meterNumber) {
		return false
	}
	if len(meterNumber) != meterNumberLength {
		return false
	}
	prefixes, ok := r.prefixes[discoCode]
	if !ok || len(prefixes) == 0 {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(meterNumber, prefix) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
