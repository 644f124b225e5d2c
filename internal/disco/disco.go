package disco

// Info describes one distribution company (DISCO).
type Info struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Logo    string `json:"logo"` // asset file name; present in reference data, not drawn on statements
}

// Registry holds the immutable DISCO reference data: company metadata and
// the meter-number prefixes each company issues. Loaded once at startup and
// never mutated, so it is safe to share across requests.
type Registry struct {
	infos    map[string]Info
	prefixes map[string][]string
}

// NewRegistry builds a registry from explicit tables. A code is only usable
// if it appears in both tables.
func NewRegistry(infos map[string]Info, prefixes map[string][]string) *Registry {
	return &Registry{infos: infos, prefixes: prefixes}
}

// DefaultRegistry returns the built-in Nigerian DISCO reference data.
func DefaultRegistry() *Registry {
	return NewRegistry(discoInfo, discoPrefixes)
}

// Lookup returns the metadata for a DISCO code.
func (r *Registry) Lookup(code string) (Info, bool) {
	info, ok := r.infos[code]
	return info, ok
}

// Prefixes returns the meter-number prefixes registered for a DISCO code.
func (r *Registry) Prefixes(code string) []string {
	return r.prefixes[code]
}

// Known reports whether a code is present in both the metadata and prefix
// tables. Requests for codes failing this check are rejected before any
// lookup or rendering happens.
func (r *Registry) Known(code string) bool {
	_, ok := r.infos[code]
	if !ok {
		return false
	}
	_, ok = r.prefixes[code]
	return ok
}

// Codes returns every registered DISCO code.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.infos))
	for code := range r.infos {
		codes = append(codes, code)
	}
	return codes
}

var discoPrefixes = map[string][]string{
	"AEDC":   {"0401", "0402", "0403", "04123"},
	"IE":     {"0410", "0411", "0412"},
	"EKEDC":  {"0415", "0416"},
	"EEDC":   {"0420", "0421"},
	"BEDC":   {"0430", "0431"},
	"KEDCO":  {"0440", "0441"},
	"JED":    {"0450", "0451"},
	"PHED":   {"0460", "0461"},
	"KAEDCO": {"0470", "0471"},
	"YEDC":   {"0480", "0481"},
	"IBEDC":  {"0490", "0491", "0492"},
}

var discoInfo = map[string]Info{
	"AEDC":   {Code: "AEDC", Name: "Abuja Electricity Distribution Company", Address: "No. 1 Ziguinchor Street, Wuse Zone 4, Abuja", Logo: "aedc_logo.png"},
	"IE":     {Code: "IE", Name: "Ikeja Electric Plc", Address: "Oba Akran Avenue, Ikeja, Lagos", Logo: "ie_logo.png"},
	"EKEDC":  {Code: "EKEDC", Name: "Eko Electricity Distribution Company", Address: "24/25 Marina Road, Lagos Island, Lagos", Logo: "ekedc_logo.png"},
	"EEDC":   {Code: "EEDC", Name: "Enugu Electricity Distribution Company", Address: "Plot 1 Okpara Avenue, Enugu", Logo: "eedc_logo.png"},
	"BEDC":   {Code: "BEDC", Name: "Benin Electricity Distribution Company", Address: "No. 5, Akpakpava Street, Benin City", Logo: "bedc_logo.png"},
	"KEDCO":  {Code: "KEDCO", Name: "Kano Electricity Distribution Company", Address: "No. 1 Niger Street, Kano", Logo: "kedco_logo.png"},
	"JED":    {Code: "JED", Name: "Jos Electricity Distribution Company", Address: "No. 9 Ahmadu Bello Way, Jos", Logo: "jed_logo.png"},
	"PHED":   {Code: "PHED", Name: "Port Harcourt Electricity Distribution Company", Address: "Moscow Road, Port Harcourt", Logo: "phed_logo.png"},
	"KAEDCO": {Code: "KAEDCO", Name: "Kaduna Electricity Distribution Company", Address: "No. 1-2 Ahmadu Bello Way, Kaduna", Logo: "kaedco_logo.png"},
	"YEDC":   {Code: "YEDC", Name: "Yola Electricity Distribution Company", Address: "No. 2 Atiku Abubakar Way, Yola", Logo: "yedc_logo.png"},
	"IBEDC":  {Code: "IBEDC", Name: "Ibadan Electricity Distribution Company", Address: "Capital Building, Ring Road, Ibadan", Logo: "ibedc_logo.png"},
}
