package document

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ObjectiveRepository interface {
	CreateObjective(o *LearningObjective) error
	FindObjectiveByID(id uuid.UUID) (*LearningObjective, error)
	ListObjectivesByDocument(docID uuid.UUID) ([]*LearningObjective, error)
	UpdateObjective(o *LearningObjective) error
	DeleteObjective(id uuid.UUID) error
}

type objectiveRepository struct {
	db *gorm.DB
}

func NewObjectiveRepository(db *gorm.DB) ObjectiveRepository {
	return &objectiveRepository{db: db}
}

func (r *objectiveRepository) CreateObjective(o *LearningObjective) error {
	return r.db.Create(o).Error
}

func (r *objectiveRepository) FindObjectiveByID(id uuid.UUID) (*LearningObjective, error) {
	var o LearningObjective
	if err := r.db.First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *objectiveRepository) ListObjectivesByDocument(docID uuid.UUID) ([]*LearningObjective, error) {
	var objectives []*LearningObjective
	if err := r.db.Where("document_id = ?", docID).Find(&objectives).Error; err != nil {
		return nil, err
	}
	return objectives, nil
}

func (r *objectiveRepository) UpdateObjective(o *LearningObjective) error {
	return r.db.Save(o).Error
}

func (r *objectiveRepository) DeleteObjective(id uuid.UUID) error {
	return r.db.Delete(&LearningObjective{}, "id = ?", id).Error
}
