package document

import "github.com/google/uuid"

// LearningObjective is one checklist entry of a document's study plan.
// Objectives nest one level at a time through ParentID.
type LearningObjective struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Description string     `gorm:"size:500;not null" json:"description"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	DocumentID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"document_id"`
	ParentID    *uuid.UUID `gorm:"type:uuid" json:"parent_id,omitempty"`
}

type ObjectiveNode struct {
	ID            uuid.UUID        `json:"id"`
	Description   string           `json:"description"`
	IsCompleted   bool             `json:"is_completed"`
	SubObjectives []*ObjectiveNode `json:"sub_objectives"`
}

// BuildObjectivesTree nests objectives under their parents, keeping the
// input order within each level. An objective whose parent is missing is
// promoted to a root.
func BuildObjectivesTree(objectives []*LearningObjective) []*ObjectiveNode {
	nodes := make(map[uuid.UUID]*ObjectiveNode, len(objectives))
	for _, o := range objectives {
		nodes[o.ID] = &ObjectiveNode{
			ID:            o.ID,
			Description:   o.Description,
			IsCompleted:   o.IsCompleted,
			SubObjectives: []*ObjectiveNode{},
		}
	}

	roots := []*ObjectiveNode{}
	for _, o := range objectives {
		if o.ParentID != nil {
			if parent, ok := nodes[*o.ParentID]; ok {
				parent.SubObjectives = append(parent.SubObjectives, nodes[o.ID])
				continue
			}
		}
		roots = append(roots, nodes[o.ID])
	}
	return roots
}
