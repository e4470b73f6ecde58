package entities

// Base carries the document id and the store-managed timestamps, rendered
// as ISO-8601 strings. Every stored entity embeds it.
type Base struct {
	ID        string `json:"id,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

func (b *Base) DocumentID() string      { return b.ID }
func (b *Base) SetDocumentID(id string) { b.ID = id }

func (b *Base) SetTimestamps(createdAt, updatedAt string) {
	b.CreatedAt = createdAt
	b.UpdatedAt = updatedAt
}
