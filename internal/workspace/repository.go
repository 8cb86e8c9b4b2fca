package workspace

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkspaceRepository interface {
	CreateItem(item *WorkspaceItem) error
	FindItemByID(id uuid.UUID) (*WorkspaceItem, error)
	ListByDocument(docID uuid.UUID) ([]*WorkspaceItem, error)
	MaxOrder(docID uuid.UUID, parentID *uuid.UUID) (int, error)
	UpdateItem(item *WorkspaceItem) error
	CreateRelation(rel *WorkspaceItemRelation) error
	ListRelationsByDocument(docID uuid.UUID) ([]*WorkspaceItemRelation, error)
}

type workspaceRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) WorkspaceRepository {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) CreateItem(item *WorkspaceItem) error {
	return r.db.Create(item).Error
}

func (r *workspaceRepository) FindItemByID(id uuid.UUID) (*WorkspaceItem, error) {
	var item WorkspaceItem
	if err := r.db.First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *workspaceRepository) ListByDocument(docID uuid.UUID) ([]*WorkspaceItem, error) {
	var items []*WorkspaceItem
	if err := r.db.
		Where("document_id = ?", docID).
		Order("item_order ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MaxOrder returns the highest order among siblings: children of parentID
// when given, the document's roots otherwise.
func (r *workspaceRepository) MaxOrder(docID uuid.UUID, parentID *uuid.UUID) (int, error) {
	q := r.db.Model(&WorkspaceItem{})
	if parentID != nil {
		q = q.Where("parent_id = ?", *parentID)
	} else {
		q = q.Where("document_id = ? AND parent_id IS NULL", docID)
	}

	var max int
	if err := q.Select("COALESCE(MAX(item_order), 0)").Scan(&max).Error; err != nil {
		return 0, err
	}
	return max, nil
}

func (r *workspaceRepository) UpdateItem(item *WorkspaceItem) error {
	return r.db.Save(item).Error
}

func (r *workspaceRepository) CreateRelation(rel *WorkspaceItemRelation) error {
	return r.db.Create(rel).Error
}

func (r *workspaceRepository) ListRelationsByDocument(docID uuid.UUID) ([]*WorkspaceItemRelation, error) {
	var rels []*WorkspaceItemRelation
	if err := r.db.Where("document_id = ?", docID).Find(&rels).Error; err != nil {
		return nil, err
	}
	return rels, nil
}
