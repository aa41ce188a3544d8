package scanner

// Static rule tables for the heuristic analyses. All matching is done
// against lower-cased input.

var phishingKeywords = []string{
	"urgent", "verify account", "suspended", "click here", "limited time",
	"congratulations", "winner", "claim now", "act now", "verify identity",
	"update payment", "confirm details", "security alert", "account locked",
}

var suspiciousSenderDomains = []string{
	"tempmail", "guerrillamail", "10minutemail", "mailinator",
	"secure-bank", "paypal-security", "amazon-security",
}

var maliciousDomains = []string{
	"phishing-site", "fake-bank", "malware-host", "suspicious-download",
	"free-money", "win-prize", "urgent-update",
}

var suspiciousURLPatterns = []string{
	"download-now", "free-software", "cracked", "keygen", "serial",
}

var dangerousExtensions = map[string]bool{
	"exe": true, "bat": true, "cmd": true, "com": true, "pif": true,
	"scr": true, "vbs": true, "js": true, "jar": true,
}

var archiveExtensions = map[string]bool{
	"zip": true, "rar": true, "7z": true, "tar": true, "gz": true,
}

var suspiciousFilenameWords = []string{
	"crack", "keygen", "patch", "hack", "free", "download",
}

// Scoring weights and thresholds
const (
	keywordWeight      = 15
	senderDomainWeight = 25
	manyURLsWeight     = 20
	urgencyWeight      = 10

	maliciousDomainWeight = 40
	urlPatternWeight      = 20
	noHTTPSWeight         = 15
	longURLWeight         = 10

	dangerousExtWeight = 50
	archiveExtWeight   = 20
	largeFileWeight    = 15
	filenameWordWeight = 25

	emailPhishingThreshold   = 30
	websiteMalwareThreshold  = 35
	websitePhishingThreshold = 25
	fileMalwareThreshold     = 40

	maxURLsBeforePenalty = 3
	longURLLength        = 100
	largeFileBytes       = 100 * 1024 * 1024
	maxRiskScore         = 100
)
