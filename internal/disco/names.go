package disco

import (
	"fmt"
	"strings"
)

// RegisteredName synthesizes the placeholder customer name shown on a
// statement: "Customer ({first word of DISCO name} - {last 4 meter digits})".
// Unknown codes fall back to the raw code, short meter numbers to "XXXX".
func (r *Registry) RegisteredName(meterNumber, discoCode string) string {
	name := discoCode
	if info, ok := r.infos[discoCode]; ok {
		name = info.Name
	}
	firstWord := name
	if i := strings.IndexByte(name, ' '); i > 0 {
		firstWord = name[:i]
	}

	lastFour := "XXXX"
	if len(meterNumber) >= 4 {
		lastFour = meterNumber[len(meterNumber)-4:]
	}

	return fmt.Sprintf("Customer (%s - %s)", firstWord, lastFour)
}
