package models

// EmailScanRequest represents a request to analyze an email
type EmailScanRequest struct {
	Content string `json:"content" binding:"required"`
	Sender  string `json:"sender" binding:"required"`
	Subject string `json:"subject"`
}

// WebsiteScanRequest represents a request to analyze a website URL
type WebsiteScanRequest struct {
	URL string `json:"url" binding:"required"`
}

// FileScanRequest represents a request to analyze a file by path and name
type FileScanRequest struct {
	Path string `json:"path" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// DarkWebCheckRequest represents a request to run a breach lookup
type DarkWebCheckRequest struct {
	Email     string `json:"email" binding:"required,email"`
	GSTNumber string `json:"gst_number" binding:"omitempty,min=15,max=15"`
}
