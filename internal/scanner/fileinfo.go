package scanner

import "os"

// OSFileInfo probes file sizes through the local filesystem
type OSFileInfo struct{}

// NewOSFileInfo creates a filesystem-backed file info provider
func NewOSFileInfo() *OSFileInfo {
	return &OSFileInfo{}
}

// Size returns the file's byte size, or known=false if the file cannot
// be stat'd
func (p *OSFileInfo) Size(path string) (int64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, false
	}
	return info.Size(), true
}
