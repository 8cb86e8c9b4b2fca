package document

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/user"
)

var ErrDocumentNotFound = errors.New("document not found")
var ErrInvalidCategory = errors.New("invalid category")
var ErrObjectiveNotFound = errors.New("objective not found")
var ErrEmptyObjective = errors.New("objective description must not be empty")

// Workspace tabs. "focus" shows goal-related documents, "sandbox" the rest.
const (
	TabAll     = "all"
	TabFocus   = "focus"
	TabSandbox = "sandbox"
)

type DocumentService interface {
	List(ctx context.Context, tab string, u *user.User) (*ListResult, error)
	ToggleGoalRelated(ctx context.Context, id uuid.UUID) (*Document, error)
	EditCategory(ctx context.Context, id uuid.UUID, newCategory string) (*Document, error)
	SetWinCriteria(ctx context.Context, id uuid.UUID, description *string, targetScore *int) (*Document, error)
	RecordResult(ctx context.Context, id uuid.UUID, actualScore *int) (*Document, error)
	AddObjective(ctx context.Context, docID uuid.UUID, description string, parentID *uuid.UUID) (*LearningObjective, error)
	DeleteObjective(ctx context.Context, id uuid.UUID) error
	ToggleObjective(ctx context.Context, id uuid.UUID) (*LearningObjective, error)
	ObjectivesTree(ctx context.Context, docID uuid.UUID) ([]*ObjectiveNode, error)
}

type documentService struct {
	repo    DocumentRepository
	objRepo ObjectiveRepository
}

func NewService(repo DocumentRepository, objRepo ObjectiveRepository) DocumentService {
	return &documentService{repo: repo, objRepo: objRepo}
}

type ListResult struct {
	Documents  []*DocumentRow
	DefaultTab string
}

type DocumentRow struct {
	*Document
	Relevant bool `json:"relevant"`
}

func (s *documentService) List(ctx context.Context, tab string, u *user.User) (*ListResult, error) {
	log := config.WithContext(ctx)

	var docs []*Document
	var err error
	switch tab {
	case TabFocus:
		docs, err = s.repo.ListGoalRelated(true)
	case TabSandbox:
		docs, err = s.repo.ListGoalRelated(false)
	default:
		docs, err = s.repo.ListAll()
	}
	if err != nil {
		log.WithError(err).Error("Failed to list documents")
		return nil, err
	}

	matcher := NewRelevanceMatcher(u)
	rows := make([]*DocumentRow, 0, len(docs))
	for _, doc := range docs {
		rows = append(rows, &DocumentRow{Document: doc, Relevant: matcher.Matches(doc)})
	}

	// The newest document decides which tab opens by default.
	defaultTab := TabAll
	if len(docs) > 0 {
		if docs[0].IsGoalRelated {
			defaultTab = TabFocus
		} else {
			defaultTab = TabSandbox
		}
	}

	return &ListResult{Documents: rows, DefaultTab: defaultTab}, nil
}

func (s *documentService) ToggleGoalRelated(ctx context.Context, id uuid.UUID) (*Document, error) {
	log := config.WithContext(ctx)

	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	doc.IsGoalRelated = !doc.IsGoalRelated
	if err := s.repo.Update(doc); err != nil {
		log.WithError(err).Error("Failed to toggle goal-related flag")
		return nil, err
	}

	log.WithField("doc_id", doc.ID.String()).Info("Toggled goal-related flag")
	return doc, nil
}

func (s *documentService) EditCategory(ctx context.Context, id uuid.UUID, newCategory string) (*Document, error) {
	log := config.WithContext(ctx)

	if !ValidCategory(newCategory) {
		return nil, ErrInvalidCategory
	}

	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}

	doc.Category = newCategory
	if err := s.repo.Update(doc); err != nil {
		log.WithError(err).Error("Failed to update category")
		return nil, err
	}

	return doc, nil
}

// SetWinCriteria updates the document's success definition. A nil
// description keeps the existing text; a nil target score clears it.
func (s *documentService) SetWinCriteria(ctx context.Context, id uuid.UUID, description *string, targetScore *int) (*Document, error) {
	log := config.WithContext(ctx)

	doc, err := s.requireDocument(id)
	if err != nil {
		return nil, err
	}

	if description != nil {
		doc.WinCriteria = *description
	}
	doc.TargetScore = targetScore
	if err := s.repo.Update(doc); err != nil {
		log.WithError(err).Error("Failed to update win criteria")
		return nil, err
	}
	return doc, nil
}

// RecordResult stores the achieved score; a nil score clears it.
func (s *documentService) RecordResult(ctx context.Context, id uuid.UUID, actualScore *int) (*Document, error) {
	log := config.WithContext(ctx)

	doc, err := s.requireDocument(id)
	if err != nil {
		return nil, err
	}

	doc.ActualScore = actualScore
	if err := s.repo.Update(doc); err != nil {
		log.WithError(err).Error("Failed to record result")
		return nil, err
	}
	return doc, nil
}

func (s *documentService) AddObjective(ctx context.Context, docID uuid.UUID, description string, parentID *uuid.UUID) (*LearningObjective, error) {
	log := config.WithContext(ctx)

	if _, err := s.requireDocument(docID); err != nil {
		return nil, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrEmptyObjective
	}

	o := &LearningObjective{
		ID:          uuid.New(),
		Description: description,
		DocumentID:  docID,
		ParentID:    parentID,
	}
	if err := s.objRepo.CreateObjective(o); err != nil {
		log.WithError(err).Error("Failed to create objective")
		return nil, err
	}
	return o, nil
}

func (s *documentService) DeleteObjective(ctx context.Context, id uuid.UUID) error {
	o, err := s.objRepo.FindObjectiveByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return ErrObjectiveNotFound
	}
	return s.objRepo.DeleteObjective(id)
}

func (s *documentService) ToggleObjective(ctx context.Context, id uuid.UUID) (*LearningObjective, error) {
	log := config.WithContext(ctx)

	o, err := s.objRepo.FindObjectiveByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, ErrObjectiveNotFound
	}

	o.IsCompleted = !o.IsCompleted
	if err := s.objRepo.UpdateObjective(o); err != nil {
		log.WithError(err).Error("Failed to toggle objective")
		return nil, err
	}
	return o, nil
}

func (s *documentService) ObjectivesTree(ctx context.Context, docID uuid.UUID) ([]*ObjectiveNode, error) {
	if _, err := s.requireDocument(docID); err != nil {
		return nil, err
	}

	objectives, err := s.objRepo.ListObjectivesByDocument(docID)
	if err != nil {
		return nil, err
	}
	return BuildObjectivesTree(objectives), nil
}

func (s *documentService) requireDocument(id uuid.UUID) (*Document, error) {
	doc, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrDocumentNotFound
	}
	return doc, nil
}
