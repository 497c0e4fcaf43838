package models

import (
	"path/filepath"
	"strings"
)

// MimeCategory is the coarse attachment type the platform accepts.
type MimeCategory string

const (
	MimePDF  MimeCategory = "pdf"
	MimeText MimeCategory = "text"
)

// MaxAttachmentSize is the hard upload limit enforced before any network
// call.
const MaxAttachmentSize = 10 << 20 // 10 MB

// Attachment describes a file bound to a message. Outbound attachments are
// created at staging time; inbound ones come from the assistant and may
// carry a DownloadRef. An empty DownloadRef means the content has to be
// materialized locally from the owning message.
type Attachment struct {
	Name        string
	Category    MimeCategory
	SizeBytes   int64
	DownloadRef string
}

// StagedFile is an outbound file held by the stager until the next send.
type StagedFile struct {
	Name string
	Data []byte
}

// CategoryForName maps a file name to its mime category by extension.
// The second return value is false for extensions the platform rejects.
func CategoryForName(name string) (MimeCategory, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return MimePDF, true
	case ".txt":
		return MimeText, true
	default:
		return "", false
	}
}
