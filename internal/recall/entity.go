package recall

import "github.com/google/uuid"

// Item kinds. "error" marks the single placeholder item returned when no
// questions could be produced at all.
const (
	TypeDefinitionRecall = "definition_recall"
	TypeFillBlank        = "fill_blank"
	TypeDefault          = "default"
	TypeError            = "error"
)

// Item is one recall question in the wire shape the gate consumes.
type Item struct {
	Q           string     `json:"q"`
	A           string     `json:"a"`
	Cat         string     `json:"cat"`
	SourceDocID *uuid.UUID `json:"source_doc_id,omitempty"`
	Type        string     `json:"type"`
}
