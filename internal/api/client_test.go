package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", "", 2*time.Second)
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotProject string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotProject = r.Header.Get("X-Project-Token")
		io.WriteString(w, "[]")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", "proj-123", time.Second)
	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if gotAuth != "Bearer secret" {
		t.Fatalf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotProject != "proj-123" {
		t.Fatalf("X-Project-Token = %q, want %q", gotProject, "proj-123")
	}
}

func TestClientOmitsUnsetAuthHeaders(t *testing.T) {
	var hadAuth, hadProject bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, hadAuth = r.Header["Authorization"]
		_, hadProject = r.Header["X-Project-Token"]
		io.WriteString(w, "[]")
	})
	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if hadAuth || hadProject {
		t.Fatalf("expected no auth headers, got auth=%v project=%v", hadAuth, hadProject)
	}
}

func TestClientTrimsTrailingSlashes(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		io.WriteString(w, "[]")
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"///", "", "", time.Second)
	if client.BaseURL() != srv.URL {
		t.Fatalf("BaseURL = %q, want %q", client.BaseURL(), srv.URL)
	}
	if _, err := client.Projects(context.Background()); err != nil {
		t.Fatalf("Projects: %v", err)
	}
	if gotPath != "/projects" {
		t.Fatalf("path = %q, want /projects", gotPath)
	}
}

func TestClientStatusError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such project", http.StatusNotFound)
	})
	_, err := client.Protocols(context.Background(), 42)
	if err == nil {
		t.Fatal("expected error")
	}
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("error %T is not *StatusError", err)
	}
	if statusErr.Code != http.StatusNotFound {
		t.Fatalf("Code = %d, want 404", statusErr.Code)
	}
	want := "http error 404 Not Found: no such project\n"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", "", time.Second)
	_, err := client.Projects(context.Background())
	if err == nil {
		t.Fatal("expected error")
	}
	var transportErr *TransportError
	if !errors.As(err, &transportErr) {
		t.Fatalf("error %T is not *TransportError", err)
	}
	if !strings.HasPrefix(err.Error(), "transport error: ") {
		t.Fatalf("Error() = %q, want transport error prefix", err.Error())
	}
}

func TestClientUnexpectedShape(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>gateway</html>")
	})
	_, err := client.Projects(context.Background())
	if !errors.Is(err, ErrUnexpectedShape) {
		t.Fatalf("err = %v, want ErrUnexpectedShape", err)
	}
}

func TestCreateProtocolPayload(t *testing.T) {
	var gotPath string
	var gotBody map[string]json.RawMessage
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"id":9,"project_id":4,"protocol_name":"deploy"}`)
	})

	run, err := client.CreateProtocol(context.Background(), 4, "deploy", "main", nil)
	if err != nil {
		t.Fatalf("CreateProtocol: %v", err)
	}
	if run.ID != 9 || run.ProtocolName != "deploy" {
		t.Fatalf("run = %+v", run)
	}
	if gotPath != "/projects/4/protocols" {
		t.Fatalf("path = %q", gotPath)
	}
	if string(gotBody["description"]) != "null" {
		t.Fatalf("description = %s, want null", gotBody["description"])
	}
	if string(gotBody["status"]) != `"pending"` {
		t.Fatalf("status = %s, want \"pending\"", gotBody["status"])
	}
}

func TestDeleteBranchEscapesPath(t *testing.T) {
	var gotPath string
	var gotBody map[string]bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		io.WriteString(w, `{"ok":true}`)
	})

	if err := client.DeleteBranch(context.Background(), 7, "feature/login"); err != nil {
		t.Fatalf("DeleteBranch: %v", err)
	}
	if gotPath != "/projects/7/branches/feature%2Flogin/delete" {
		t.Fatalf("path = %q", gotPath)
	}
	if !gotBody["confirm"] {
		t.Fatalf("body = %v, want confirm=true", gotBody)
	}
}

func TestQueueJobsStatusQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		io.WriteString(w, "[]")
	})

	if _, err := client.QueueJobs(context.Background(), "queued"); err != nil {
		t.Fatalf("QueueJobs: %v", err)
	}
	if gotQuery != "status=queued" {
		t.Fatalf("query = %q, want status=queued", gotQuery)
	}
	if _, err := client.QueueJobs(context.Background(), ""); err != nil {
		t.Fatalf("QueueJobs: %v", err)
	}
	if gotQuery != "" {
		t.Fatalf("query = %q, want empty", gotQuery)
	}
}

func TestBranchesUnwrapsList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"branches":["main","feature/a"]}`)
	})
	branches, err := client.Branches(context.Background(), 3)
	if err != nil {
		t.Fatalf("Branches: %v", err)
	}
	if len(branches) != 2 || branches[0] != "main" || branches[1] != "feature/a" {
		t.Fatalf("branches = %v", branches)
	}
}

func TestActionEndpointsPostNullBody(t *testing.T) {
	var gotPath, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		io.WriteString(w, `{"queued":true}`)
	})

	if err := client.StepRunNext(context.Background(), 11); err != nil {
		t.Fatalf("StepRunNext: %v", err)
	}
	if gotPath != "/protocols/11/actions/run_next_step" {
		t.Fatalf("path = %q", gotPath)
	}
	if gotBody != "null" {
		t.Fatalf("body = %q, want null", gotBody)
	}

	if err := client.ProtocolAction(context.Background(), 11, "pause"); err != nil {
		t.Fatalf("ProtocolAction: %v", err)
	}
	if gotPath != "/protocols/11/actions/pause" {
		t.Fatalf("path = %q", gotPath)
	}
}

func TestRecentEventsLimit(t *testing.T) {
	var gotURI string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotURI = r.URL.RequestURI()
		io.WriteString(w, "[]")
	})
	if _, err := client.RecentEvents(context.Background(), 50); err != nil {
		t.Fatalf("RecentEvents: %v", err)
	}
	if gotURI != "/events?limit=50" {
		t.Fatalf("uri = %q", gotURI)
	}
}
