package out_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	out "ghostwrite/internal/modules/activity/adapter/out"
	"ghostwrite/internal/modules/activity/domain"
	"ghostwrite/internal/platform/gateway"
)

func testGateway(t *testing.T, handler http.Handler) *gateway.Gateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return gateway.New(server.URL, time.Second, nil, nil)
}

func TestGetActivityDataQueriesWindow(t *testing.T) {
	t.Parallel()
	var gotQuery string
	gw := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode([]domain.Datum{{Date: "2024-01-10", Count: 5}})
	}))
	client := out.NewAPIClient(gw, false)

	data, err := client.GetActivityData(context.Background(), 7)
	if err != nil {
		t.Fatalf("get activity: %v", err)
	}
	if gotQuery != "days=7" {
		t.Fatalf("expected days=7, got %q", gotQuery)
	}
	if len(data) != 1 || data[0].Count != 5 {
		t.Fatalf("unexpected data: %v", data)
	}
}

func TestGetActivityDataFallback(t *testing.T) {
	t.Parallel()
	gw := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	client := out.NewAPIClient(gw, true)
	data, err := client.GetActivityData(context.Background(), 7)
	if err != nil {
		t.Fatalf("fallback fetch should succeed: %v", err)
	}
	if len(data) != 7 {
		t.Fatalf("expected 7 offline days, got %d", len(data))
	}

	noFallback := out.NewAPIClient(gw, false)
	if _, err := noFallback.GetActivityData(context.Background(), 7); err == nil {
		t.Fatalf("without fallback the error must propagate")
	}
}

func TestLogActivityNeverFallsBack(t *testing.T) {
	t.Parallel()
	gw := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	// Fallback on: a mutation still fails loudly instead of pretending.
	client := out.NewAPIClient(gw, true)
	err := client.LogActivity(context.Background(), domain.LogEntry{Type: "coding", Count: 1})
	if err == nil {
		t.Fatalf("failed mutation must surface the error")
	}
}

func TestLogActivitySendsEntry(t *testing.T) {
	t.Parallel()
	var got domain.LogEntry
	var gotPath string
	gw := testGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		_ = json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))

	client := out.NewAPIClient(gw, false)
	entry := domain.LogEntry{Type: "coding", Description: "refactor", Count: 3}
	if err := client.LogActivity(context.Background(), entry); err != nil {
		t.Fatalf("log activity: %v", err)
	}
	if gotPath != "/activities/log" {
		t.Fatalf("unexpected path %q", gotPath)
	}
	if got != entry {
		t.Fatalf("entry mismatch: %+v", got)
	}
}
