package workspace

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/document"
)

var (
	ErrItemNotFound    = errors.New("workspace item not found")
	ErrEmptyTitle      = errors.New("title must not be empty")
	ErrRelationOutside = errors.New("relation endpoints must belong to the document")
)

type CreateItemDTO struct {
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type AddRelationDTO struct {
	SourceID uuid.UUID `json:"source_id"`
	TargetID uuid.UUID `json:"target_id"`
	Label    string    `json:"label"`
}

type WorkspaceService interface {
	Tree(ctx context.Context, docID uuid.UUID) ([]*TreeNode, error)
	CreateItem(ctx context.Context, docID uuid.UUID, dto CreateItemDTO) (*WorkspaceItem, error)
	SaveUserContent(ctx context.Context, itemID uuid.UUID, content string) (*WorkspaceItem, error)
	AddRelation(ctx context.Context, docID uuid.UUID, dto AddRelationDTO) (*WorkspaceItemRelation, error)
	Graph(ctx context.Context, docID uuid.UUID) (string, error)
}

type workspaceService struct {
	repo    WorkspaceRepository
	docRepo document.DocumentRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(repo WorkspaceRepository, docRepo document.DocumentRepository) WorkspaceService {
	return NewServiceWithRand(repo, docRepo, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func NewServiceWithRand(repo WorkspaceRepository, docRepo document.DocumentRepository, rnd *rand.Rand) WorkspaceService {
	return &workspaceService{
		repo:    repo,
		docRepo: docRepo,
		rnd:     rnd,
	}
}

func (s *workspaceService) Tree(ctx context.Context, docID uuid.UUID) ([]*TreeNode, error) {
	if err := s.requireDocument(docID); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByDocument(docID)
	if err != nil {
		return nil, err
	}
	return BuildTree(items), nil
}

// CreateItem appends the item after its siblings; order slots are never
// reused within a level.
func (s *workspaceService) CreateItem(ctx context.Context, docID uuid.UUID, dto CreateItemDTO) (*WorkspaceItem, error) {
	log := config.WithContext(ctx)

	if err := s.requireDocument(docID); err != nil {
		return nil, err
	}
	title := strings.TrimSpace(dto.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	maxOrder, err := s.repo.MaxOrder(docID, dto.ParentID)
	if err != nil {
		return nil, err
	}

	item := &WorkspaceItem{
		ID:         uuid.New(),
		Title:      title,
		Content:    dto.Content,
		Order:      maxOrder + 1,
		DocumentID: docID,
		ParentID:   dto.ParentID,
	}
	if err := s.repo.CreateItem(item); err != nil {
		log.WithError(err).Error("Failed to create workspace item")
		return nil, err
	}
	return item, nil
}

func (s *workspaceService) SaveUserContent(ctx context.Context, itemID uuid.UUID, content string) (*WorkspaceItem, error) {
	log := config.WithContext(ctx)

	item, err := s.repo.FindItemByID(itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	item.UserContent = content
	if err := s.repo.UpdateItem(item); err != nil {
		log.WithError(err).Error("Failed to save workspace item content")
		return nil, err
	}
	return item, nil
}

// AddRelation links two items of the same document. Both endpoints must
// exist and belong to docID.
func (s *workspaceService) AddRelation(ctx context.Context, docID uuid.UUID, dto AddRelationDTO) (*WorkspaceItemRelation, error) {
	log := config.WithContext(ctx)

	if err := s.requireDocument(docID); err != nil {
		return nil, err
	}
	for _, id := range []uuid.UUID{dto.SourceID, dto.TargetID} {
		item, err := s.repo.FindItemByID(id)
		if err != nil {
			return nil, err
		}
		if item == nil || item.DocumentID != docID {
			return nil, ErrRelationOutside
		}
	}

	rel := &WorkspaceItemRelation{
		ID:         uuid.New(),
		DocumentID: docID,
		SourceID:   dto.SourceID,
		TargetID:   dto.TargetID,
		Label:      strings.TrimSpace(dto.Label),
	}
	if err := s.repo.CreateRelation(rel); err != nil {
		log.WithError(err).Error("Failed to create workspace relation")
		return nil, err
	}
	return rel, nil
}

func (s *workspaceService) Graph(ctx context.Context, docID uuid.UUID) (string, error) {
	if err := s.requireDocument(docID); err != nil {
		return "", err
	}

	items, err := s.repo.ListByDocument(docID)
	if err != nil {
		return "", err
	}
	rels, err := s.repo.ListRelationsByDocument(docID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	graph := MermaidGraph(items, rels, s.rnd)
	s.mu.Unlock()
	return graph, nil
}

func (s *workspaceService) requireDocument(docID uuid.UUID) error {
	doc, err := s.docRepo.FindByID(docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return document.ErrDocumentNotFound
	}
	return nil
}
