package domain

import "time"

type DocumentKind string

const (
	DocumentKindInsurance      DocumentKind = "insurance"
	DocumentKindConditionSheet DocumentKind = "condition_sheet"
	DocumentKindHandoverReport DocumentKind = "handover_report"
	DocumentKindDamageReport   DocumentKind = "damage_report"
	DocumentKindOther          DocumentKind = "other"
)

func ValidDocumentKind(k DocumentKind) bool {
	switch k {
	case DocumentKindInsurance, DocumentKindConditionSheet, DocumentKindHandoverReport,
		DocumentKindDamageReport, DocumentKindOther:
		return true
	}
	return false
}

type Document struct {
	ID            int32        `json:"id"`
	FileName      string       `json:"file_name"`
	StorageKey    string       `json:"storage_key"`
	FileSize      int64        `json:"file_size"`
	MimeType      string       `json:"mime_type"`
	Kind          DocumentKind `json:"kind"`
	ReservationID *int32       `json:"reservation_id,omitempty"`
	UploadedOn    time.Time    `json:"uploaded_on"`
}
