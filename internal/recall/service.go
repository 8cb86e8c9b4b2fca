package recall

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ducnmm/studyvault/internal/config"
	"github.com/ducnmm/studyvault/internal/document"
)

// TotalQuestionsToReturn caps every batch.
const TotalQuestionsToReturn = 3

const summaryQuestionLimit = 2

type RecallService interface {
	BuildBatch(ctx context.Context) ([]Item, error)
}

type recallService struct {
	docRepo document.DocumentRepository

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(docRepo document.DocumentRepository) RecallService {
	return &recallService{
		docRepo: docRepo,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewServiceWithRand is used by tests that need deterministic batches.
func NewServiceWithRand(docRepo document.DocumentRepository, rnd *rand.Rand) RecallService {
	return &recallService{docRepo: docRepo, rnd: rnd}
}

// BuildBatch assembles up to TotalQuestionsToReturn recall items: first
// "restate your summary" questions, then fill-in-the-blank questions from
// extracted content, then static defaults. An unfillable batch degrades to a
// single error placeholder item, never to an empty response.
func (s *recallService) BuildBatch(ctx context.Context) ([]Item, error) {
	log := config.WithContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	var items []Item
	used := map[uuid.UUID]struct{}{}

	docs, err := s.docRepo.ListWithSummary()
	if err != nil {
		log.WithError(err).Warn("Failed to build summary questions")
	} else {
		s.shuffleDocs(docs)
		for _, doc := range docs {
			if len(items) >= summaryQuestionLimit {
				break
			}
			id := doc.ID
			items = append(items, Item{
				Q:           fmt.Sprintf("Restate the main idea or definition you summarized for the document %q.", doc.Filename),
				A:           doc.UserSummary,
				Cat:         categoryOr(doc.Category, "From summary"),
				SourceDocID: &id,
				Type:        TypeDefinitionRecall,
			})
			used[doc.ID] = struct{}{}
		}
	}

	if len(items) < TotalQuestionsToReturn {
		excluded := make([]uuid.UUID, 0, len(used))
		for id := range used {
			excluded = append(excluded, id)
		}
		docs, err := s.docRepo.ListWithContentExcluding(excluded)
		if err != nil {
			log.WithError(err).Warn("Failed to query documents with content")
		} else {
			s.shuffleDocs(docs)
			for _, doc := range docs {
				if len(items) >= TotalQuestionsToReturn {
					break
				}
				attempts := 1 + s.rnd.Intn(2)
				for i := 0; i < attempts && len(items) < TotalQuestionsToReturn; i++ {
					q := CreateFillInTheBlank(doc.ExtractedContent, 1, 4, s.rnd)
					if q == nil {
						break
					}
					id := doc.ID
					items = append(items, Item{
						Q:           q.Question,
						A:           q.Answer,
						Cat:         categoryOr(doc.Category, "From document"),
						SourceDocID: &id,
						Type:        TypeFillBlank,
					})
				}
			}
		}
	}

	if needed := TotalQuestionsToReturn - len(items); needed > 0 {
		defaults := append([]Item(nil), defaultItems...)
		s.rnd.Shuffle(len(defaults), func(i, j int) {
			defaults[i], defaults[j] = defaults[j], defaults[i]
		})
		if needed > len(defaults) {
			needed = len(defaults)
		}
		items = append(items, defaults[:needed]...)
	}

	s.rnd.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
	if len(items) > TotalQuestionsToReturn {
		items = items[:TotalQuestionsToReturn]
	}

	if len(items) == 0 {
		return []Item{{
			Q:    "No questions available right now. Upload and summarize more documents!",
			Cat:  "System",
			Type: TypeError,
		}}, nil
	}
	return items, nil
}

func (s *recallService) shuffleDocs(docs []*document.Document) {
	s.rnd.Shuffle(len(docs), func(i, j int) {
		docs[i], docs[j] = docs[j], docs[i]
	})
}

func categoryOr(category, fallback string) string {
	if category == "" {
		return fallback
	}
	return category
}
