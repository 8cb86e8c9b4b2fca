package document

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	Create(d *Document) error
	FindByID(id uuid.UUID) (*Document, error)
	ListAll() ([]*Document, error)
	ListGoalRelated(goalRelated bool) ([]*Document, error)
	ListWithSummary() ([]*Document, error)
	ListWithContentExcluding(excluded []uuid.UUID) ([]*Document, error)
	Update(d *Document) error
	Delete(id uuid.UUID) error
}

type documentRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(d *Document) error {
	return r.db.Create(d).Error
}

func (r *documentRepository) FindByID(id uuid.UUID) (*Document, error) {
	var doc Document
	if err := r.db.First(&doc, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListAll() ([]*Document, error) {
	var docs []*Document
	if err := r.db.Order("uploaded_date DESC").Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListGoalRelated(goalRelated bool) ([]*Document, error) {
	var docs []*Document
	if err := r.db.
		Where("is_goal_related = ?", goalRelated).
		Order("uploaded_date DESC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) ListWithSummary() ([]*Document, error) {
	var docs []*Document
	if err := r.db.
		Where("user_summary IS NOT NULL AND user_summary <> ''").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// ListWithContentExcluding returns documents with usable extracted content.
// Content beginning with '[' holds an extraction error placeholder and is
// skipped.
func (r *documentRepository) ListWithContentExcluding(excluded []uuid.UUID) ([]*Document, error) {
	q := r.db.Where("extracted_content IS NOT NULL AND extracted_content <> '' AND extracted_content NOT LIKE '[%'")
	if len(excluded) > 0 {
		q = q.Where("id NOT IN ?", excluded)
	}

	var docs []*Document
	if err := q.Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepository) Update(d *Document) error {
	return r.db.Save(d).Error
}

func (r *documentRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&Document{}, "id = ?", id).Error
}
