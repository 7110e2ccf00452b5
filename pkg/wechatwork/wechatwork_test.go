package wechatwork

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/natalierpayne/join-replicate-fqs/pkg/replicate"
)

func TestNotificationSender_Disabled(t *testing.T) {
	var ns = NewNotificationSender("")
	if ns.Enabled {
		t.Fatal("Expected sender to be disabled without key")
	}
	if err := ns.SendMarkdown("x"); err != nil {
		t.Errorf("Expected no error, but got: %v", err)
	}
}

func TestNotificationSender_SendRunSummary(t *testing.T) {
	var (
		got    WeChatWorkMessage
		gotKey string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("Failed to decode body: %v", err)
		}
	}))
	defer server.Close()

	var ns = NewNotificationSender("abc")
	ns.WebhookURL = server.URL
	ns.Client = server.Client()

	var results = []replicate.Result{{
		Pair:           replicate.Pair{Original: "in/ind_1.1.fq", Replicate: "in/ind_1_WR.1.fq"},
		OriginalReads:  2,
		ReplicateReads: 2,
		Concatenated:   "out/ind_1.1.fq",
	}}
	if err := ns.SendRunSummary(results); err != nil {
		t.Fatalf("Expected no error, but got: %v", err)
	}
	if gotKey != "abc" {
		t.Errorf("Expected key abc, but got %q", gotKey)
	}
	if got.MsgType != "markdown" {
		t.Errorf("Expected markdown message, but got %q", got.MsgType)
	}
	if !strings.Contains(got.Markdown.Content, "- ind_1.1.fq + ind_1_WR.1.fq (2 + 2 reads)") {
		t.Errorf("Unexpected content: %s", got.Markdown.Content)
	}
}

func TestNotificationSender_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	var ns = NewNotificationSender("abc")
	ns.WebhookURL = server.URL
	if err := ns.SendMarkdown("x"); err == nil {
		t.Error("Expected an error, but got nil")
	}
}

func TestRunSummary(t *testing.T) {
	var summary = RunSummary([]replicate.Result{
		{Concatenated: "a"},
		{Extracted: []string{"b", "c"}},
	})
	if !strings.Contains(summary, "concatenated: 1, extracted: 1") {
		t.Errorf("Unexpected summary: %s", summary)
	}
}
