package types

type ResourceType string

const (
	RESOURCE_TYPE_ARTICLE  = ResourceType("Article")
	RESOURCE_TYPE_VIDEO    = ResourceType("Video")
	RESOURCE_TYPE_TUTORIAL = ResourceType("Tutorial")
)

// ResourceTypes lists every value accepted by the type column.
var ResourceTypes = []ResourceType{
	RESOURCE_TYPE_ARTICLE,
	RESOURCE_TYPE_VIDEO,
	RESOURCE_TYPE_TUTORIAL,
}

func (t ResourceType) Valid() bool {
	for _, v := range ResourceTypes {
		if t == v {
			return true
		}
	}
	return false
}

type Resource struct {
	ID          string       `json:"id" db:"id"`                   // unique identifier, immutable
	Title       string       `json:"title" db:"title"`             // resource title, at least 3 characters
	Description string       `json:"description" db:"description"` // resource description, at least 10 characters
	Type        ResourceType `json:"type" db:"type"`               // Article / Video / Tutorial
	URL         string       `json:"url" db:"url"`                 // optional external link, empty when absent
	FileURL     string       `json:"file_url" db:"file_url"`       // public URL of the attachment, empty when absent
	CreatedAt   int64        `json:"created_at" db:"created_at"`   // UNIX timestamp
	UpdatedAt   int64        `json:"updated_at" db:"updated_at"`   // UNIX timestamp, refreshed on every edit
}

// UpdateResourceArgs carries the mutable columns of a resource.
// FileURL holds the reference that should be persisted after the
// attachment lifecycle has been resolved by the caller.
type UpdateResourceArgs struct {
	Title       string
	Description string
	Type        ResourceType
	URL         string
	FileURL     string
}
