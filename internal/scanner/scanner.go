// Package scanner implements the rule-based threat analyses for emails,
// website URLs, and files. Analyses are pure functions of their input
// and the static rule tables; they never mutate stored state and never
// fail on malformed input.
package scanner

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"suraksha/internal/models"

	"github.com/google/uuid"
)

var urlPattern = regexp.MustCompile(`https?://[^\s]+`)

// FileInfoProvider supplies a best-effort byte-size probe for scanned
// files. known=false means the size could not be determined, which is
// distinct from a zero-byte file.
type FileInfoProvider interface {
	Size(path string) (size int64, known bool)
}

// Scanner runs the heuristic threat analyses
type Scanner struct {
	fileInfo FileInfoProvider
}

// New creates a scanner using the given file info probe
func New(fileInfo FileInfoProvider) *Scanner {
	return &Scanner{fileInfo: fileInfo}
}

// AnalyzeEmail scores an email against the phishing rule tables. Threat
// strings are appended in rule evaluation order: keywords, sender
// domains, URL count, urgent language.
func (s *Scanner) AnalyzeEmail(content, sender, subject string) models.EmailAnalysis {
	riskScore := 0
	var threats []string

	contentLower := strings.ToLower(content)
	senderLower := strings.ToLower(sender)
	subjectLower := strings.ToLower(subject)

	for _, keyword := range phishingKeywords {
		if strings.Contains(contentLower, keyword) || strings.Contains(subjectLower, keyword) {
			riskScore += keywordWeight
			threats = append(threats, fmt.Sprintf("Suspicious keyword detected: %s", keyword))
		}
	}

	for _, domain := range suspiciousSenderDomains {
		if strings.Contains(senderLower, domain) {
			riskScore += senderDomainWeight
			threats = append(threats, fmt.Sprintf("Suspicious sender domain: %s", domain))
		}
	}

	if urls := urlPattern.FindAllString(contentLower, -1); len(urls) > maxURLsBeforePenalty {
		riskScore += manyURLsWeight
		threats = append(threats, "Multiple suspicious links detected")
	}

	if strings.Contains(contentLower, "urgent") || strings.Contains(contentLower, "immediate") {
		riskScore += urgencyWeight
		threats = append(threats, "Urgent language detected - common phishing tactic")
	}

	riskScore = clampScore(riskScore)

	return models.EmailAnalysis{
		ID:         uuid.New().String(),
		Sender:     sender,
		Subject:    subject,
		Content:    content,
		Timestamp:  time.Now().UTC(),
		IsPhishing: riskScore > emailPhishingThreshold,
		RiskScore:  riskScore,
		Threats:    threats,
	}
}

// AnalyzeWebsite scores a URL against the malicious-domain and
// suspicious-pattern tables. The recommendations list is never empty.
func (s *Scanner) AnalyzeWebsite(url string) models.ThreatAnalysis {
	riskScore := 0
	var threats []string
	var recommendations []string

	urlLower := strings.ToLower(url)

	for _, domain := range maliciousDomains {
		if strings.Contains(urlLower, domain) {
			riskScore += maliciousDomainWeight
			threats = append(threats, fmt.Sprintf("Malicious domain detected: %s", domain))
		}
	}

	for _, pattern := range suspiciousURLPatterns {
		if strings.Contains(urlLower, pattern) {
			riskScore += urlPatternWeight
			threats = append(threats, fmt.Sprintf("Suspicious pattern detected: %s", pattern))
		}
	}

	if !strings.HasPrefix(url, "https://") {
		riskScore += noHTTPSWeight
		threats = append(threats, "Website does not use secure HTTPS connection")
		recommendations = append(recommendations, "Only visit websites with HTTPS encryption")
	}

	if len(url) > longURLLength {
		riskScore += longURLWeight
		threats = append(threats, "Unusually long URL detected")
	}

	riskScore = clampScore(riskScore)

	if len(threats) == 0 {
		recommendations = append(recommendations,
			"Website appears safe, but always verify before entering sensitive information")
	} else {
		recommendations = append(recommendations,
			"Avoid entering personal or financial information on this website",
			"Consider using antivirus software for additional protection")
	}

	return models.ThreatAnalysis{
		IsPhishing:      riskScore > websitePhishingThreshold,
		IsMalware:       riskScore > websiteMalwareThreshold,
		RiskScore:       riskScore,
		Threats:         threats,
		Recommendations: recommendations,
	}
}

// AnalyzeFile scores a file by extension, size, and filename. A failed
// size probe degrades to size 0 with SizeKnown=false and does not fail
// the analysis.
func (s *Scanner) AnalyzeFile(path, name string) models.FileAnalysis {
	var fileSize int64
	sizeKnown := false
	if s.fileInfo != nil {
		fileSize, sizeKnown = s.fileInfo.Size(path)
	}

	extension := ""
	if idx := strings.LastIndex(name, "."); idx >= 0 && idx < len(name)-1 {
		extension = strings.ToLower(name[idx+1:])
	}

	riskScore := 0
	var threats []string

	if dangerousExtensions[extension] {
		riskScore += dangerousExtWeight
		threats = append(threats, fmt.Sprintf("Potentially dangerous file type: .%s", extension))
	}

	if archiveExtensions[extension] {
		riskScore += archiveExtWeight
		threats = append(threats, "Compressed file detected - scan contents carefully")
	}

	if fileSize > largeFileBytes {
		riskScore += largeFileWeight
		threats = append(threats, "Large file size detected")
	}

	nameLower := strings.ToLower(name)
	for _, word := range suspiciousFilenameWords {
		if strings.Contains(nameLower, word) {
			riskScore += filenameWordWeight
			threats = append(threats, fmt.Sprintf("Suspicious filename pattern: %s", word))
		}
	}

	riskScore = clampScore(riskScore)

	return models.FileAnalysis{
		FileName:  name,
		FilePath:  path,
		FileSize:  fileSize,
		SizeKnown: sizeKnown,
		FileType:  extension,
		IsMalware: riskScore > fileMalwareThreshold,
		RiskScore: riskScore,
		Threats:   threats,
		ScanDate:  time.Now().UTC(),
	}
}

func clampScore(score int) int {
	if score > maxRiskScore {
		return maxRiskScore
	}
	if score < 0 {
		return 0
	}
	return score
}
