package workspace_test

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/workspace"
)

type fakeWorkspaceRepo struct {
	items     map[uuid.UUID]*workspace.WorkspaceItem
	relations []*workspace.WorkspaceItemRelation
}

func newFakeWorkspaceRepo() *fakeWorkspaceRepo {
	return &fakeWorkspaceRepo{items: map[uuid.UUID]*workspace.WorkspaceItem{}}
}

func (f *fakeWorkspaceRepo) CreateItem(item *workspace.WorkspaceItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeWorkspaceRepo) FindItemByID(id uuid.UUID) (*workspace.WorkspaceItem, error) {
	return f.items[id], nil
}

func (f *fakeWorkspaceRepo) ListByDocument(docID uuid.UUID) ([]*workspace.WorkspaceItem, error) {
	var items []*workspace.WorkspaceItem
	for _, item := range f.items {
		if item.DocumentID == docID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (f *fakeWorkspaceRepo) MaxOrder(docID uuid.UUID, parentID *uuid.UUID) (int, error) {
	max := 0
	for _, item := range f.items {
		if item.DocumentID == docID && item.Order > max {
			max = item.Order
		}
	}
	return max, nil
}

func (f *fakeWorkspaceRepo) UpdateItem(item *workspace.WorkspaceItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeWorkspaceRepo) CreateRelation(rel *workspace.WorkspaceItemRelation) error {
	f.relations = append(f.relations, rel)
	return nil
}

func (f *fakeWorkspaceRepo) ListRelationsByDocument(docID uuid.UUID) ([]*workspace.WorkspaceItemRelation, error) {
	var rels []*workspace.WorkspaceItemRelation
	for _, rel := range f.relations {
		if rel.DocumentID == docID {
			rels = append(rels, rel)
		}
	}
	return rels, nil
}

type fakeDocumentRepo struct {
	docs map[uuid.UUID]*document.Document
}

func (f *fakeDocumentRepo) Create(d *document.Document) error { f.docs[d.ID] = d; return nil }
func (f *fakeDocumentRepo) FindByID(id uuid.UUID) (*document.Document, error) {
	return f.docs[id], nil
}
func (f *fakeDocumentRepo) ListAll() ([]*document.Document, error)                 { return nil, nil }
func (f *fakeDocumentRepo) ListGoalRelated(bool) ([]*document.Document, error)     { return nil, nil }
func (f *fakeDocumentRepo) ListWithSummary() ([]*document.Document, error)         { return nil, nil }
func (f *fakeDocumentRepo) ListWithContentExcluding([]uuid.UUID) ([]*document.Document, error) {
	return nil, nil
}
func (f *fakeDocumentRepo) Update(d *document.Document) error { f.docs[d.ID] = d; return nil }
func (f *fakeDocumentRepo) Delete(id uuid.UUID) error         { delete(f.docs, id); return nil }

func newRelationFixture(t *testing.T) (workspace.WorkspaceService, *fakeWorkspaceRepo, uuid.UUID, uuid.UUID, uuid.UUID) {
	t.Helper()

	docID := uuid.New()
	docRepo := &fakeDocumentRepo{docs: map[uuid.UUID]*document.Document{
		docID: {ID: docID, Filename: "circuits.pdf"},
	}}

	repo := newFakeWorkspaceRepo()
	source := &workspace.WorkspaceItem{ID: uuid.New(), Title: "Ohm's law", DocumentID: docID}
	target := &workspace.WorkspaceItem{ID: uuid.New(), Title: "Resistance", DocumentID: docID}
	repo.items[source.ID] = source
	repo.items[target.ID] = target

	service := workspace.NewServiceWithRand(repo, docRepo, rand.New(rand.NewSource(1)))
	return service, repo, docID, source.ID, target.ID
}

func TestAddRelation(t *testing.T) {
	service, repo, docID, sourceID, targetID := newRelationFixture(t)

	rel, err := service.AddRelation(context.Background(), docID, workspace.AddRelationDTO{
		SourceID: sourceID,
		TargetID: targetID,
		Label:    "  derives  ",
	})
	if err != nil {
		t.Fatalf("AddRelation failed: %v", err)
	}
	if rel.DocumentID != docID || rel.SourceID != sourceID || rel.TargetID != targetID {
		t.Errorf("unexpected relation %+v", rel)
	}
	if rel.Label != "derives" {
		t.Errorf("label should be trimmed, got %q", rel.Label)
	}
	if len(repo.relations) != 1 {
		t.Fatalf("expected 1 stored relation, got %d", len(repo.relations))
	}
}

func TestAddRelationRejectsForeignEndpoints(t *testing.T) {
	service, repo, docID, sourceID, _ := newRelationFixture(t)

	foreign := &workspace.WorkspaceItem{ID: uuid.New(), Title: "Elsewhere", DocumentID: uuid.New()}
	repo.items[foreign.ID] = foreign

	cases := []workspace.AddRelationDTO{
		{SourceID: sourceID, TargetID: foreign.ID},
		{SourceID: foreign.ID, TargetID: sourceID},
		{SourceID: sourceID, TargetID: uuid.New()},
	}
	for _, dto := range cases {
		if _, err := service.AddRelation(context.Background(), docID, dto); !errors.Is(err, workspace.ErrRelationOutside) {
			t.Errorf("AddRelation(%+v) should fail with ErrRelationOutside, got %v", dto, err)
		}
	}
	if len(repo.relations) != 0 {
		t.Errorf("rejected relations must not be stored, got %d", len(repo.relations))
	}
}

func TestAddRelationUnknownDocument(t *testing.T) {
	service, _, _, sourceID, targetID := newRelationFixture(t)

	_, err := service.AddRelation(context.Background(), uuid.New(), workspace.AddRelationDTO{
		SourceID: sourceID,
		TargetID: targetID,
	})
	if !errors.Is(err, document.ErrDocumentNotFound) {
		t.Errorf("expected ErrDocumentNotFound, got %v", err)
	}
}

func TestGraphIncludesStoredRelations(t *testing.T) {
	service, _, docID, sourceID, targetID := newRelationFixture(t)

	if _, err := service.AddRelation(context.Background(), docID, workspace.AddRelationDTO{
		SourceID: sourceID,
		TargetID: targetID,
		Label:    "derives",
	}); err != nil {
		t.Fatalf("AddRelation failed: %v", err)
	}

	graph, err := service.Graph(context.Background(), docID)
	if err != nil {
		t.Fatalf("Graph failed: %v", err)
	}
	if !strings.Contains(graph, "-->|derives|") {
		t.Errorf("graph should draw the stored relation:\n%s", graph)
	}
}
