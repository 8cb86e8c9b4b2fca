package focuslock_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ducnmm/studyvault/internal/focuslock"
)

func newTestServer(source *fakeSource) *httptest.Server {
	c := focuslock.NewFocusLockContainer(source, time.Hour)
	return httptest.NewServer(focuslock.Routes(c.Handler))
}

func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func TestHandlerSessionFlow(t *testing.T) {
	server := newTestServer(&fakeSource{batch: testBatch()})
	defer server.Close()

	resp, err := http.Post(server.URL+"/sessions", "application/json", strings.NewReader(`{"trigger":"manual"}`))
	if err != nil {
		t.Fatalf("open request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var opened struct {
		ID        string `json:"id"`
		State     string `json:"state"`
		Title     string `json:"title"`
		BatchSize int    `json:"batch_size"`
		Question  *struct {
			Prompt string `json:"prompt"`
		} `json:"question"`
	}
	decodeBody(t, resp, &opened)
	if opened.State != "presenting" {
		t.Fatalf("expected presenting state, got %q", opened.State)
	}
	if opened.Question == nil || opened.Question.Prompt == "" {
		t.Fatal("presenting snapshot should carry the current question")
	}
	if !strings.Contains(opened.Title, "1/3") {
		t.Errorf("title should show the question position, got %q", opened.Title)
	}

	// A second open while the gate is up conflicts.
	resp, err = http.Post(server.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("second open request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for a second open, got %d", resp.StatusCode)
	}

	// Answer all three questions; the last response carries the result.
	var last struct {
		Correct         bool   `json:"correct"`
		CorrectAnswer   string `json:"correct_answer"`
		Cursor          int    `json:"cursor"`
		State           string `json:"state"`
		FeedbackDelayMs int64  `json:"feedback_delay_ms"`
		Result          *struct {
			Unlocked     bool  `json:"unlocked"`
			Correct      int   `json:"correct"`
			Total        int   `json:"total"`
			CloseAfterMs int64 `json:"close_after_ms"`
		} `json:"result"`
	}
	for _, answer := range []string{"Paris", "H2O", "wrong"} {
		body := strings.NewReader(`{"answer":"` + answer + `"}`)
		resp, err = http.Post(server.URL+"/sessions/"+opened.ID+"/answers", "application/json", body)
		if err != nil {
			t.Fatalf("answer request failed: %v", err)
		}
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", resp.StatusCode)
		}
		decodeBody(t, resp, &last)
	}

	if last.State != "complete" {
		t.Fatalf("expected complete state after the batch, got %q", last.State)
	}
	if last.Correct {
		t.Error("the wrong final answer should be graded incorrect")
	}
	if last.CorrectAnswer != "2x" {
		t.Errorf("grading should reveal the canonical answer, got %q", last.CorrectAnswer)
	}
	if last.FeedbackDelayMs != focuslock.FeedbackDelay.Milliseconds() {
		t.Errorf("unexpected feedback delay %d", last.FeedbackDelayMs)
	}
	if last.Result == nil {
		t.Fatal("completing answer should carry the unlock result")
	}
	if !last.Result.Unlocked || last.Result.Correct != 2 || last.Result.Total != 3 {
		t.Errorf("unexpected result %+v", last.Result)
	}

	// A further answer conflicts with the terminal state.
	resp, err = http.Post(server.URL+"/sessions/"+opened.ID+"/answers", "application/json", strings.NewReader(`{"answer":"late"}`))
	if err != nil {
		t.Fatalf("late answer request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for an answer after completion, got %d", resp.StatusCode)
	}
}

func TestHandlerDismiss(t *testing.T) {
	server := newTestServer(&fakeSource{batch: testBatch()})
	defer server.Close()

	resp, err := http.Post(server.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("open request failed: %v", err)
	}
	var opened struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &opened)

	req, _ := http.NewRequest(http.MethodDelete, server.URL+"/sessions/"+opened.ID, nil)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("dismiss request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp, err = http.Get(server.URL + "/sessions/" + opened.ID)
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("dismissed session should be gone, got %d", resp.StatusCode)
	}
}

func TestHandlerActivityAndErrors(t *testing.T) {
	server := newTestServer(&fakeSource{batch: testBatch()})
	defer server.Close()

	resp, err := http.Post(server.URL+"/activity", "application/json", nil)
	if err != nil {
		t.Fatalf("activity request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 for activity ping, got %d", resp.StatusCode)
	}

	resp, err = http.Post(server.URL+"/overlay", "application/json", strings.NewReader(`{"open":true}`))
	if err != nil {
		t.Fatalf("overlay request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("expected 204 for overlay ping, got %d", resp.StatusCode)
	}

	resp, err = http.Post(server.URL+"/overlay", "application/json", strings.NewReader("not json"))
	if err != nil {
		t.Fatalf("overlay request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed overlay ping, got %d", resp.StatusCode)
	}

	resp, err = http.Get(server.URL + "/sessions/not-a-uuid")
	if err != nil {
		t.Fatalf("get request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 for a malformed id, got %d", resp.StatusCode)
	}
}

func TestHandlerEmptyBatch(t *testing.T) {
	server := newTestServer(&fakeSource{})
	defer server.Close()

	resp, err := http.Post(server.URL+"/sessions", "application/json", nil)
	if err != nil {
		t.Fatalf("open request failed: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var opened struct {
		State   string `json:"state"`
		Message string `json:"message"`
	}
	decodeBody(t, resp, &opened)
	if opened.State != "errored" {
		t.Fatalf("empty batch should surface an errored session, got %q", opened.State)
	}
	if opened.Message == "" {
		t.Error("errored snapshot should explain itself")
	}
}
