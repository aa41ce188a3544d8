package models

import "time"

// ScanHistoryEntry is an append-only record of a completed scan pass
type ScanHistoryEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	ThreatsFound int       `json:"threats_found"`
	FilesScanned int       `json:"files_scanned"`
}

// EmailAnalysis is the result of running an email through the scanner
type EmailAnalysis struct {
	ID         string    `json:"id"`
	Sender     string    `json:"sender"`
	Subject    string    `json:"subject"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsPhishing bool      `json:"is_phishing"`
	RiskScore  int       `json:"risk_score"`
	Threats    []string  `json:"threats"`
}

// ThreatAnalysis is the result of running a website URL through the scanner
type ThreatAnalysis struct {
	IsPhishing      bool     `json:"is_phishing"`
	IsMalware       bool     `json:"is_malware"`
	RiskScore       int      `json:"risk_score"`
	Threats         []string `json:"threats"`
	Recommendations []string `json:"recommendations"`
}

// FileAnalysis is the result of running a file through the scanner.
// SizeKnown distinguishes a genuinely empty file from a failed size probe.
type FileAnalysis struct {
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	FileSize  int64     `json:"file_size"`
	SizeKnown bool      `json:"size_known"`
	FileType  string    `json:"file_type"`
	IsMalware bool      `json:"is_malware"`
	RiskScore int       `json:"risk_score"`
	Threats   []string  `json:"threats"`
	ScanDate  time.Time `json:"scan_date"`
}
