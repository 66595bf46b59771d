package analysis

// pattern ties trigger keywords to the abuse cases and requirements emitted
// when any keyword occurs in the story text. The library is an ordered slice,
// not a map: emission order (and therefore requirement dedup priority) follows
// library order, baseline last.
type pattern struct {
	name         string
	keywords     []string
	abuseCases   []AbuseCase
	requirements []SecurityRequirement
}

var patternLibrary = []pattern{
	{
		name:     "authentication",
		keywords: []string{"password", "login", "register", "authentication", "sign in", "sign up", "reset", "credentials"},
		abuseCases: []AbuseCase{
			{Threat: "Credential Stuffing Attack", Actor: "External Attacker", Description: "Automated attack using breached username/password combinations.", Impact: ImpactCritical, Likelihood: "High", AttackVector: "Automated login attempts, botnet", StrideCategory: StrideSpoofing},
			{Threat: "Brute Force Password Attack", Actor: "External Attacker", Description: "Systematic attempt to guess passwords through automated tools.", Impact: ImpactHigh, Likelihood: "High", AttackVector: "Password cracking tools, dictionary attacks", StrideCategory: StrideSpoofing},
			{Threat: "Session Hijacking", Actor: "External Attacker", Description: "Attacker steals or predicts session tokens to impersonate authenticated users.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "XSS, network sniffing, session fixation", StrideCategory: StrideSpoofing},
			{Threat: "Password Reset Token Exploitation", Actor: "External Attacker", Description: "Exploiting weak password reset mechanism via predictable tokens or timing attacks.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Token prediction, email interception", StrideCategory: StrideSpoofing},
			{Threat: "Account Enumeration", Actor: "External Attacker", Description: "Determining valid usernames through error response differences.", Impact: ImpactMedium, Likelihood: "High", AttackVector: "Response analysis, timing attacks", StrideCategory: StrideInfoDisclosure},
		},
		requirements: []SecurityRequirement{
			{Text: "Implement adaptive MFA for all users", Priority: ImpactCritical, Category: "Authentication & Access Control", Details: "Require MFA for login, sensitive operations, and new device registration."},
			{Text: "Hash passwords using Argon2id with memory cost >=64MB", Priority: ImpactCritical, Category: "Authentication & Access Control", Details: "Never use MD5, SHA1, or plain SHA256 for passwords."},
			{Text: "Enforce password policy: 12+ chars, breach database check", Priority: ImpactHigh, Category: "Authentication & Access Control", Details: "Check against HaveIBeenPwned API. Block common passwords."},
			{Text: "Implement progressive account lockout", Priority: ImpactHigh, Category: "Authentication & Access Control", Details: "5 failures = 15min, 10 = 1hr, 15 = 24hr lockout."},
			{Text: "Generate cryptographically secure password reset tokens (256-bit)", Priority: ImpactHigh, Category: "Authentication & Access Control", Details: "Tokens expire in 15 minutes. Single-use only."},
		},
	},
	{
		name:     "pii_ssn",
		keywords: []string{"ssn", "social security", "pii", "personal information", "date of birth", "dob"},
		abuseCases: []AbuseCase{
			{Threat: "SSN Harvesting Attack", Actor: "External Attacker", Description: "Exploiting vulnerabilities to harvest SSNs for identity theft.", Impact: ImpactCritical, Likelihood: "High", AttackVector: "API exploitation, SQL injection, insider threat", StrideCategory: StrideInfoDisclosure},
			{Threat: "SSN Enumeration via Error Messages", Actor: "External Attacker", Description: "Using error messages to determine valid SSN formats.", Impact: ImpactHigh, Likelihood: "Medium", AttackVector: "Input fuzzing, error analysis", StrideCategory: StrideInfoDisclosure},
			{Threat: "Identity Theft via SSN Exposure in Logs", Actor: "Malicious Insider", Description: "SSN data logged in plain text accessed by unauthorized personnel.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Log file access, SIEM exploitation", StrideCategory: StrideInfoDisclosure},
		},
		requirements: []SecurityRequirement{
			{Text: "Encrypt all PII at rest using AES-256-GCM", Priority: ImpactCritical, Category: "Data Protection", Details: "Use HSM for key management. Implement envelope encryption."},
			{Text: "Implement field-level encryption for SSN and DOB", Priority: ImpactCritical, Category: "Data Protection", Details: "Separate key per data classification. Key rotation every 90 days."},
			{Text: "Apply data masking for all non-production environments", Priority: ImpactHigh, Category: "Data Protection", Details: "Show last 4 digits only for SSN. Irreversible masking."},
			{Text: "Configure PII detection scanning for all data stores", Priority: ImpactMedium, Category: "Data Protection", Details: "Automated scanning to discover and classify sensitive data."},
		},
	},
	{
		name:     "payment",
		keywords: []string{"credit card", "payment", "visa", "mastercard", "card number", "pan", "cvv"},
		abuseCases: []AbuseCase{
			{Threat: "Credit Card Skimming (Magecart)", Actor: "External Attacker", Description: "Malicious code injected to capture card details during payment.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "JavaScript injection, compromised third-party scripts", StrideCategory: StrideInfoDisclosure},
			{Threat: "Payment Fraud via Stolen Cards", Actor: "External Attacker", Description: "Use of stolen credit card information for fraudulent payments.", Impact: ImpactHigh, Likelihood: "High", AttackVector: "Purchased card data, phishing", StrideCategory: StrideSpoofing},
			{Threat: "Transaction Manipulation", Actor: "External Attacker", Description: "Manipulation of payment amounts through parameter tampering.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Request interception, parameter manipulation", StrideCategory: StrideTampering},
		},
		requirements: []SecurityRequirement{
			{Text: "Never store full PAN - use PCI-certified tokenization", Priority: ImpactCritical, Category: "Financial & Transaction Security", Details: "Integrate with payment processor tokenization. Store only last 4 digits."},
			{Text: "Implement PCI DSS v4.0 controls for cardholder data", Priority: ImpactCritical, Category: "Regulatory Compliance", Details: "Segment CDE network. Implement all 12 PCI DSS requirements."},
			{Text: "Deploy real-time fraud detection with ML-based scoring", Priority: ImpactCritical, Category: "Financial & Transaction Security", Details: "Score transactions based on amount, frequency, location, device."},
			{Text: "Implement secure payment page isolation", Priority: ImpactCritical, Category: "Financial & Transaction Security", Details: "Host payment forms on isolated subdomain. Strict CSP."},
		},
	},
	{
		name:     "file_upload",
		keywords: []string{"upload", "file", "document", "attachment", "receipt", "image"},
		abuseCases: []AbuseCase{
			{Threat: "Malware Upload", Actor: "External Attacker", Description: "Upload of malicious files disguised as legitimate documents.", Impact: ImpactCritical, Likelihood: "High", AttackVector: "File extension spoofing, MIME type manipulation", StrideCategory: StrideTampering},
			{Threat: "Web Shell Upload", Actor: "External Attacker", Description: "Upload of server-side scripts for remote command execution.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "PHP/ASP shell upload, double extensions", StrideCategory: StrideElevation},
			{Threat: "Path Traversal via Filename", Actor: "External Attacker", Description: "Manipulated filenames to write files outside intended directory.", Impact: ImpactHigh, Likelihood: "Medium", AttackVector: "Filename manipulation (../)", StrideCategory: StrideTampering},
		},
		requirements: []SecurityRequirement{
			{Text: "Validate file uploads: type whitelist, magic bytes, size limits, AV scan", Priority: ImpactCritical, Category: "Input Validation", Details: "Verify MIME type matches content. Scan with multiple AV engines."},
			{Text: "Validate and sanitize all file paths to prevent path traversal", Priority: ImpactHigh, Category: "Input Validation", Details: "Use canonical path validation. Whitelist allowed directories."},
			{Text: "Implement request size limits on all upload endpoints", Priority: ImpactHigh, Category: "Input Validation", Details: "Limit to 10MB for file uploads. Rate limit by IP and user."},
		},
	},
	{
		name:     "wire_transfer",
		keywords: []string{"wire transfer", "routing number", "bank account", "transfer", "ach"},
		abuseCases: []AbuseCase{
			{Threat: "Business Email Compromise (BEC)", Actor: "External Attacker", Description: "Impersonating executive to authorize fraudulent wire transfer.", Impact: ImpactCritical, Likelihood: "High", AttackVector: "Email spoofing, account compromise", StrideCategory: StrideSpoofing},
			{Threat: "Wire Transfer Redirection", Actor: "External Attacker", Description: "Manipulating beneficiary bank details to redirect funds.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Account takeover, parameter tampering", StrideCategory: StrideTampering},
		},
		requirements: []SecurityRequirement{
			{Text: "Require dual authorization for wire transfers >$10,000", Priority: ImpactCritical, Category: "Financial & Transaction Security", Details: "Two different authorized users must approve."},
			{Text: "Implement out-of-band verification for high-risk transactions", Priority: ImpactHigh, Category: "Financial & Transaction Security", Details: "Send confirmation to registered phone/email."},
			{Text: "Deploy beneficiary verification with cooling-off period", Priority: ImpactHigh, Category: "Financial & Transaction Security", Details: "24-hour delay for first transfer to new beneficiary."},
		},
	},
	{
		name:     "health_data",
		keywords: []string{"medical", "health", "hsa", "diagnosis", "treatment", "hipaa", "phi", "patient"},
		abuseCases: []AbuseCase{
			{Threat: "PHI Data Breach", Actor: "External Attacker", Description: "Mass exfiltration of protected health information.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "SQL injection, API abuse, insider theft", StrideCategory: StrideInfoDisclosure},
			{Threat: "Medical Identity Theft", Actor: "External Attacker", Description: "Using stolen health information to obtain medical services.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Data breach exploitation", StrideCategory: StrideSpoofing},
		},
		requirements: []SecurityRequirement{
			{Text: "Deploy HIPAA Security Rule technical safeguards for PHI", Priority: ImpactCritical, Category: "Regulatory Compliance", Details: "Access controls, audit controls, integrity controls per 45 CFR 164.312."},
			{Text: "Log all access to health records with full audit trail", Priority: ImpactCritical, Category: "Audit Logging", Details: "Record who accessed what data, when, from where."},
			{Text: "Retain security logs for 6 years (HIPAA requirement)", Priority: ImpactHigh, Category: "Audit Logging", Details: "Implement tiered storage. Ensure logs are immutable and searchable."},
		},
	},
	{
		name:     "financial_data",
		keywords: []string{"investment", "portfolio", "financial", "retirement", "beneficiary", "account balance"},
		abuseCases: []AbuseCase{
			{Threat: "Mass Data Exfiltration", Actor: "Malicious Insider", Description: "Authorized user exports large amounts of financial data.", Impact: ImpactCritical, Likelihood: "Medium", AttackVector: "Legitimate export functionality abuse", StrideCategory: StrideInfoDisclosure},
		},
		requirements: []SecurityRequirement{
			{Text: "Implement SOX IT controls with segregation of duties", Priority: ImpactCritical, Category: "Regulatory Compliance", Details: "Separate dev, test, prod access. Change management controls."},
			{Text: "Configure GLBA Safeguards Rule controls", Priority: ImpactHigh, Category: "Regulatory Compliance", Details: "Risk assessment, employee training, vendor management."},
			{Text: "Implement data loss prevention (DLP) at egress points", Priority: ImpactHigh, Category: "Data Protection", Details: "Monitor and block sensitive data patterns in exports."},
		},
	},
}

// baselineRequirements are appended to every run regardless of detection.
var baselineRequirements = []SecurityRequirement{
	{Text: "Enforce TLS 1.3 for all data in transit", Priority: ImpactCritical, Category: "Data Protection", Details: "Disable TLS 1.0/1.1. Implement HSTS with 1-year max-age."},
	{Text: "Implement strict input validation whitelist on all user inputs", Priority: ImpactCritical, Category: "Input Validation", Details: "Validate data type, length, format, and range."},
	{Text: "Use parameterized queries for all database operations", Priority: ImpactCritical, Category: "Input Validation", Details: "Never concatenate user input into SQL."},
	{Text: "Log all authentication events with full context", Priority: ImpactCritical, Category: "Audit Logging", Details: "Include timestamp, user ID, IP, user agent, geo-location."},
	{Text: "Implement tamper-evident logging with cryptographic chaining", Priority: ImpactHigh, Category: "Audit Logging", Details: "Hash each log entry with previous entry hash."},
	{Text: "Deploy Content Security Policy (CSP) with strict-dynamic", Priority: ImpactHigh, Category: "Input Validation", Details: "Disable unsafe-inline and unsafe-eval."},
	{Text: "Implement secrets management (e.g., Vault)", Priority: ImpactCritical, Category: "Secure Architecture", Details: "Never store secrets in code or config files. Rotate automatically."},
	{Text: "Implement zero-trust network architecture", Priority: ImpactHigh, Category: "Secure Architecture", Details: "Verify every access request. Least-privilege network access."},
}
