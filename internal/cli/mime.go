package cli

import (
	"mime"
	"path/filepath"
	"strings"
)

// Extensions the stdlib table resolves inconsistently across platforms.
var extraMimeTypes = map[string]string{
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".md":   "text/markdown",
	".txt":  "text/plain",
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// DetectMimeType resolves a file's MIME type from its extension. Unknown
// extensions return application/octet-stream, which upload validation
// rejects.
func DetectMimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mt, ok := extraMimeTypes[ext]; ok {
		return mt
	}
	if mt := mime.TypeByExtension(ext); mt != "" {
		if base, _, found := strings.Cut(mt, ";"); found {
			return strings.TrimSpace(base)
		}
		return mt
	}
	return "application/octet-stream"
}
