package constants

import (
	"path/filepath"
	"strings"
)

// Upload limits for proof-of-registration documents.
const MaxUploadSize = 10 * 1024 * 1024 // 10 MiB

// Extensions accepted for POR uploads.
var allowedUploadExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
}

// MIME prefixes accepted for POR uploads. Any image subtype passes.
var allowedUploadMimes = []string{
	"image/",
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"text/plain",
}

func IsAllowedUploadExt(filename string) bool {
	return allowedUploadExts[strings.ToLower(filepath.Ext(filename))]
}

func IsAllowedUploadMime(mime string) bool {
	for _, prefix := range allowedUploadMimes {
		if strings.HasPrefix(mime, prefix) {
			return true
		}
	}
	return false
}
