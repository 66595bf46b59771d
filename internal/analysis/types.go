package analysis

// Impact / likelihood / priority values used across abuse cases and
// requirements. Kept as plain strings in the payload; these constants are the
// only values the pattern library and the risk score ever look at.
const (
	ImpactCritical = "Critical"
	ImpactHigh     = "High"
	ImpactMedium   = "Medium"
	ImpactLow      = "Low"
)

// STRIDE categories.
const (
	StrideSpoofing       = "Spoofing"
	StrideTampering      = "Tampering"
	StrideRepudiation    = "Repudiation"
	StrideInfoDisclosure = "Information Disclosure"
	StrideDoS            = "Denial of Service"
	StrideElevation      = "Elevation of Privilege"
)

// AbuseCase is a concrete attacker scenario against the analyzed story.
type AbuseCase struct {
	ID             string `json:"id"`
	Threat         string `json:"threat"`
	Actor          string `json:"actor"`
	Description    string `json:"description"`
	Impact         string `json:"impact"`
	Likelihood     string `json:"likelihood"`
	AttackVector   string `json:"attack_vector"`
	StrideCategory string `json:"stride_category"`
}

// StrideThreat summarizes all abuse cases sharing one STRIDE category.
type StrideThreat struct {
	Category    string `json:"category"`
	Threat      string `json:"threat"`
	Description string `json:"description"`
	RiskLevel   string `json:"risk_level"`
}

// SecurityRequirement is an actionable control recommendation. Text is the
// dedup key within one analysis run.
type SecurityRequirement struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Details  string `json:"details"`
}

// Result is the shape both analysis paths produce. The AI path is validated
// into this struct so persistence and compliance mapping never care which
// path ran.
type Result struct {
	AbuseCases           []AbuseCase           `json:"abuse_cases"`
	StrideThreats        []StrideThreat        `json:"stride_threats"`
	SecurityRequirements []SecurityRequirement `json:"security_requirements"`
	RiskScore            int                   `json:"risk_score"`
}
