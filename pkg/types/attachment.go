package types

type Attachment struct {
	ID         int64  `json:"id" db:"id"`                   // attachment record id
	ResourceID string `json:"resource_id" db:"resource_id"` // owning resource, empty until the record write succeeds
	File       string `json:"file" db:"file"`               // object storage key
	FileSize   int64  `json:"file_size" db:"file_size"`     // size in bytes
	Kind       string `json:"kind" db:"kind"`               // image / video / file, by content-type prefix
	Status     int    `json:"status" db:"status"`           // lifecycle status
	CreatedAt  int64  `json:"created_at" db:"created_at"`   // upload time, UNIX timestamp
}

const (
	ATTACHMENT_STATUS_ACTIVE  int = 1
	ATTACHMENT_STATUS_DELETED int = 2
)

const (
	ATTACHMENT_KIND_IMAGE = "image"
	ATTACHMENT_KIND_VIDEO = "video"
	ATTACHMENT_KIND_FILE  = "file"
)

// AttachmentKind classifies an upload by its content type prefix.
// Anything that is not an image or a video is a plain file.
func AttachmentKind(contentType string) string {
	switch {
	case len(contentType) >= 6 && contentType[:6] == "image/":
		return ATTACHMENT_KIND_IMAGE
	case len(contentType) >= 6 && contentType[:6] == "video/":
		return ATTACHMENT_KIND_VIDEO
	default:
		return ATTACHMENT_KIND_FILE
	}
}
