package domain

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a photo or document uploaded against a maintenance request.
type Attachment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	RequestID   uuid.UUID `json:"requestId" db:"request_id"`
	UploadedBy  uuid.UUID `json:"uploadedBy" db:"uploaded_by"`
	FileName    string    `json:"fileName" db:"file_name"`
	FileSize    int64     `json:"fileSize" db:"file_size"`
	MimeType    string    `json:"mimeType" db:"mime_type"`
	StoragePath string    `json:"-" db:"storage_path"`
	Caption     *string   `json:"caption,omitempty" db:"caption"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	URL string `json:"url" db:"-"`
}
