package compliance

// BuiltinStandards lists the bundled standards in mapping order. Iteration
// over this slice (not over a map) keeps mapper output deterministic.
var BuiltinStandards = []string{
	"OWASP_ASVS",
	"NIST_800_53",
	"ISO_27001",
	"PCI_DSS",
	"HIPAA",
	"SOX",
	"GDPR",
}

// standardCategoryMap resolves a requirement category to control-id prefixes
// per standard. A category absent for a standard produces no mappings against
// that standard. Static configuration, never mutated at runtime.
var standardCategoryMap = map[string]map[string][]string{
	"OWASP_ASVS": {
		"Authentication & Access Control":  {"V2", "V3", "V4"},
		"Data Protection":                  {"V6", "V8"},
		"Input Validation":                 {"V5"},
		"Audit Logging":                    {"V7"},
		"Financial & Transaction Security": {"V6", "V11"},
		"Regulatory Compliance":            {"V10"},
		"Secure Architecture":              {"V1", "V10", "V14"},
	},
	"NIST_800_53": {
		"Authentication & Access Control":  {"AC", "IA"},
		"Data Protection":                  {"SC", "MP"},
		"Input Validation":                 {"SI"},
		"Audit Logging":                    {"AU"},
		"Financial & Transaction Security": {"SC", "AC"},
		"Regulatory Compliance":            {"CA", "PL"},
		"Secure Architecture":              {"SA", "SC"},
	},
	"ISO_27001": {
		"Authentication & Access Control":  {"A.9"},
		"Data Protection":                  {"A.10", "A.18"},
		"Input Validation":                 {"A.14"},
		"Audit Logging":                    {"A.12"},
		"Financial & Transaction Security": {"A.10", "A.14"},
		"Regulatory Compliance":            {"A.18"},
		"Secure Architecture":              {"A.13", "A.14"},
	},
	"PCI_DSS": {
		"Authentication & Access Control":  {"Req 7", "Req 8"},
		"Data Protection":                  {"Req 3", "Req 4"},
		"Input Validation":                 {"Req 6"},
		"Audit Logging":                    {"Req 10"},
		"Financial & Transaction Security": {"Req 3", "Req 4"},
		"Regulatory Compliance":            {"Req 12"},
		"Secure Architecture":              {"Req 1", "Req 2"},
	},
	"HIPAA": {
		"Authentication & Access Control": {"164.312(d)", "164.312(a)"},
		"Data Protection":                 {"164.312(a)(2)(iv)", "164.312(e)"},
		"Input Validation":                {"164.312(c)"},
		"Audit Logging":                   {"164.312(b)"},
		"Regulatory Compliance":           {"164.308", "164.316"},
		"Secure Architecture":             {"164.312(e)"},
	},
	"SOX": {
		"Authentication & Access Control":  {"ITGC-AC"},
		"Data Protection":                  {"ITGC-DP"},
		"Audit Logging":                    {"ITGC-AL"},
		"Financial & Transaction Security": {"ITGC-FC"},
		"Regulatory Compliance":            {"ITGC-CM"},
		"Secure Architecture":              {"ITGC-SA"},
	},
	"GDPR": {
		"Authentication & Access Control": {"Art 25", "Art 32"},
		"Data Protection":                 {"Art 5", "Art 32"},
		"Audit Logging":                   {"Art 30"},
		"Regulatory Compliance":           {"Art 35", "Art 37"},
	},
}
