package domain

import (
	"strings"
	"time"
)

type Category string

const (
	CategoryContract Category = "Contract"
	CategoryPolicy   Category = "Policy"
	CategoryOther    Category = "Other"
)

type Clause struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Category string `json:"category"`
}

// Analysis is the structured AI extraction for one document. It is immutable
// once produced; a new run replaces it wholesale.
type Analysis struct {
	Summary      []string `json:"summary"`
	Obligations  []string `json:"obligations"`
	KeyClauses   []Clause `json:"keyClauses"`
	Risks        []string `json:"risks"`
	Deadlines    []string `json:"deadlines"`
	DocumentType string   `json:"documentType"`
	Category     Category `json:"category"`
}

// EmptyAnalysis is the placeholder used when a document has no cached
// analysis yet.
func EmptyAnalysis() Analysis {
	return Analysis{
		Summary:      []string{},
		Obligations:  []string{},
		KeyClauses:   []Clause{},
		Risks:        []string{},
		Deadlines:    []string{},
		DocumentType: "Document",
		Category:     CategoryOther,
	}
}

// DocumentMeta is the backend-owned file record.
type DocumentMeta struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	MimeType  string    `json:"mimeType"`
	CreatedAt time.Time `json:"createdAt"`
}

// Annotation is the locally cached per-document overlay. Analysis is nil
// until the first successful analyze run.
type Annotation struct {
	Analysis *Analysis `json:"analysis,omitempty"`
	LastTab  Tab       `json:"lastTab,omitempty"`
}

// StoredDocument joins backend metadata with the local annotation.
type StoredDocument struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	MimeType   string    `json:"mime_type"`
	UploadDate time.Time `json:"upload_date"`
	Analysis   Analysis  `json:"analysis"`
	LastTab    Tab       `json:"last_tab"`
}

// FileRef identifies the file currently open in the analyzer.
type FileRef struct {
	Name     string `json:"name"`
	MimeType string `json:"mime_type"`
}

var acceptedMimeTypes = map[string]struct{}{
	"application/pdf": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
	"image/jpeg": {},
	"image/png":  {},
}

// IsAcceptedMimeType reports whether a file of the given MIME type may be
// uploaded. Any text/* type is accepted besides the explicit set.
func IsAcceptedMimeType(mimeType string) bool {
	mimeType = strings.TrimSpace(mimeType)
	if _, ok := acceptedMimeTypes[mimeType]; ok {
		return true
	}
	return strings.HasPrefix(mimeType, "text/")
}
