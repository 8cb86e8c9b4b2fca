package workspace

import "github.com/google/uuid"

// WorkspaceItem is one node of a document's analysis workspace. Order is
// stored as item_order to stay clear of the SQL keyword.
type WorkspaceItem struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title       string     `gorm:"size:300;not null" json:"title"`
	Content     string     `gorm:"type:text" json:"content,omitempty"`
	Order       int        `gorm:"column:item_order;not null;default:0" json:"order"`
	UserContent string     `gorm:"type:text" json:"user_content,omitempty"`
	DocumentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"document_id"`
	ParentID    *uuid.UUID `gorm:"type:uuid;index" json:"parent_id,omitempty"`
}

// WorkspaceItemRelation is a labeled edge between two items of the same
// document, drawn in the mermaid graph.
type WorkspaceItemRelation struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"type:uuid;not null;index" json:"document_id"`
	SourceID   uuid.UUID `gorm:"type:uuid;not null" json:"source_id"`
	TargetID   uuid.UUID `gorm:"type:uuid;not null" json:"target_id"`
	Label      string    `gorm:"size:100" json:"label,omitempty"`
}
