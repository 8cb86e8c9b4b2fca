package document_test

import (
	"testing"

	"github.com/ducnmm/studyvault/internal/document"
	"github.com/ducnmm/studyvault/internal/user"
)

func TestIsRelevantToUser(t *testing.T) {
	doc := &document.Document{
		Filename: "neural_networks_intro.pdf",
		Category: "AI/ML",
		Keywords: "neural network, backpropagation",
	}

	t.Run("MatchingGoal", func(t *testing.T) {
		u := &user.User{UltimateGoal: "become a neural network researcher"}
		if !document.IsRelevantToUser(doc, u) {
			t.Error("expected document to be relevant")
		}
	})

	t.Run("NoGoal", func(t *testing.T) {
		u := &user.User{}
		if document.IsRelevantToUser(doc, u) {
			t.Error("expected no relevance without goal text")
		}
	})

	t.Run("StopWordsOnlyGoal", func(t *testing.T) {
		u := &user.User{UltimateGoal: "the a an of"}
		if document.IsRelevantToUser(doc, u) {
			t.Error("stop words must not produce matches")
		}
	})

	t.Run("UnrelatedGoal", func(t *testing.T) {
		u := &user.User{UltimateGoal: "open a bakery"}
		if document.IsRelevantToUser(doc, u) {
			t.Error("expected no relevance for unrelated goal")
		}
	})

	t.Run("NilDocument", func(t *testing.T) {
		u := &user.User{UltimateGoal: "anything"}
		if document.IsRelevantToUser(nil, u) {
			t.Error("nil document is never relevant")
		}
	})
}

func TestRelevanceMatcherReuse(t *testing.T) {
	matcher := document.NewRelevanceMatcher(&user.User{
		UltimateGoal:      "become a neural network researcher",
		SpecificStudyGoal: "quantum computing",
	})

	docs := []struct {
		doc  *document.Document
		want bool
	}{
		{&document.Document{Filename: "intro to neural networks.pdf"}, true},
		{&document.Document{Filename: "recipes.pdf", Category: "Cooking"}, false},
		{&document.Document{Filename: "notes.pdf", Keywords: "quantum entanglement"}, true},
		{&document.Document{Filename: "neuralgia treatment.pdf"}, false},
		{nil, false},
	}
	for _, tc := range docs {
		if got := matcher.Matches(tc.doc); got != tc.want {
			t.Errorf("Matches(%+v) = %v, want %v", tc.doc, got, tc.want)
		}
	}
}

func TestRelevanceMatcherNoKeywords(t *testing.T) {
	doc := &document.Document{Filename: "anything.pdf"}

	if document.NewRelevanceMatcher(nil).Matches(doc) {
		t.Error("nil user must not match")
	}
	if document.NewRelevanceMatcher(&user.User{UltimateGoal: "a of"}).Matches(doc) {
		t.Error("stop-word-only goal must not match")
	}
}
