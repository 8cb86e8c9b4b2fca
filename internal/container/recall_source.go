package container

import (
	"context"

	"github.com/ducnmm/studyvault/internal/focuslock"
	"github.com/ducnmm/studyvault/internal/recall"
)

// recallQuestionSource feeds recall batches into the focus-lock gate. The
// error placeholder item carries no answer, so it is filtered out; a batch
// of only placeholders degrades to the gate's empty-batch state.
type recallQuestionSource struct {
	service recall.RecallService
}

func (s *recallQuestionSource) FetchBatch(ctx context.Context) ([]focuslock.Question, error) {
	items, err := s.service.BuildBatch(ctx)
	if err != nil {
		return nil, err
	}

	questions := make([]focuslock.Question, 0, len(items))
	for _, item := range items {
		if item.Type == recall.TypeError {
			continue
		}
		questions = append(questions, focuslock.Question{
			Prompt:   item.Q,
			Answer:   item.A,
			Category: item.Cat,
		})
	}
	return questions, nil
}
