package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eep666/bunny-chapter-update-tool/internal/chapters"
)

// fakeGenerator is a scripted NotesGenerator.
type fakeGenerator struct {
	available bool
	output    string
	err       error
	called    bool
}

func (f *fakeGenerator) Available() bool { return f.available }

func (f *fakeGenerator) Generate(ctx context.Context, notes string) (string, error) {
	f.called = true
	if f.err != nil {
		return "", f.err
	}
	return f.output, nil
}

func TestSend_ValidationMissingFields(t *testing.T) {
	d := New("AccessKey", &fakeGenerator{})

	_, err := d.Send(context.Background(), Input{})

	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	want := []string{"credential", "url", "body"}
	if len(vErr.Fields) != len(want) {
		t.Fatalf("expected fields %v, got %v", want, vErr.Fields)
	}
	for i, f := range want {
		if vErr.Fields[i] != f {
			t.Errorf("field %d: expected %s, got %s", i, f, vErr.Fields[i])
		}
	}
}

func TestSend_ValidationHTTPSRequired(t *testing.T) {
	_ = New("AccessKey", &fakeGenerator{})

	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{"https", "https://video.example.com/library/1/videos/abc", true},
		{"http loopback", "http://127.0.0.1:8080/x", true},
		{"http localhost", "http://localhost:8080/x", true},
		{"http remote", "http://video.example.com/x", false},
		{"ftp", "ftp://video.example.com/x", false},
		{"garbage", "://nope", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(Input{Credential: "k", URL: tt.url, Body: "{}"})
			if tt.ok && err != nil {
				t.Errorf("expected %s to validate, got %v", tt.url, err)
			}
			if !tt.ok {
				var vErr *ValidationError
				if !errors.As(err, &vErr) {
					t.Errorf("expected ValidationError for %s, got %v", tt.url, err)
				}
			}
		})
	}
}

func TestSend_ValidJSONSkipsGenerator(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	gen := &fakeGenerator{available: true, output: `{"chapters":[]}`}
	d := New("AccessKey", gen)

	res, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        server.URL,
		Body:       `{"chapters":[{"title":"Intro","start":0}]}`,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if gen.called {
		t.Error("generator must not run for a valid JSON body")
	}
	if res.GeneratedBody != "" {
		t.Error("no generated body expected for a valid JSON body")
	}
	if !res.Outcome.OK || res.Outcome.Status != 200 {
		t.Errorf("unexpected outcome: %+v", res.Outcome)
	}
}

func TestSend_NoCredentialForConversion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request must reach the endpoint")
	}))
	defer server.Close()

	d := New("AccessKey", &fakeGenerator{available: false})

	_, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        server.URL,
		Body:       "0:00 intro notes",
	})
	if !errors.Is(err, chapters.ErrAICredentialMissing) {
		t.Errorf("expected ErrAICredentialMissing, got %v", err)
	}
}

func TestSend_AutoConversion(t *testing.T) {
	const generated = `{"chapters":[{"title":"Intro","start":0}]}`

	var gotBody []byte
	var gotHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotHeaders = r.Header.Clone()
		w.WriteHeader(200)
	}))
	defer server.Close()

	gen := &fakeGenerator{available: true, output: generated}
	d := New("AccessKey", gen)

	res, err := d.Send(context.Background(), Input{
		Credential: "secret-key",
		URL:        server.URL,
		Body:       "0:00 intro notes",
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}
	if !gen.called {
		t.Error("generator should run for a non-JSON body")
	}
	if res.GeneratedBody != generated {
		t.Errorf("expected generated body %q, got %q", generated, res.GeneratedBody)
	}
	if string(gotBody) != generated {
		t.Errorf("endpoint should receive the generated JSON, got %q", gotBody)
	}
	if ct := gotHeaders.Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %s", ct)
	}
	if key := gotHeaders.Get("AccessKey"); key != "secret-key" {
		t.Errorf("expected credential header, got %q", key)
	}
	if gotHeaders.Get("X-Request-Id") == "" {
		t.Error("expected X-Request-Id header")
	}
}

func TestSend_GenerationErrorPropagated(t *testing.T) {
	genErr := &chapters.GenerationError{Output: "sorry, no"}
	d := New("AccessKey", &fakeGenerator{available: true, err: genErr})

	_, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        "https://video.example.com/x",
		Body:       "0:00 intro",
	})

	var got *chapters.GenerationError
	if !errors.As(err, &got) || got != genErr {
		t.Errorf("expected the GenerationError unchanged, got %v", err)
	}
}

func TestSend_404EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer server.Close()

	d := New("AccessKey", &fakeGenerator{})
	res, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        server.URL,
		Body:       `{"chapters":[]}`,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	o := res.Outcome
	if o.OK {
		t.Error("404 must record a failure outcome")
	}
	if o.Status != 404 || o.StatusLabel != "404" {
		t.Errorf("expected status 404, got %d (%s)", o.Status, o.StatusLabel)
	}
	var payload map[string]string
	if err := json.Unmarshal(o.Payload, &payload); err != nil {
		t.Fatalf("payload unmarshal failed: %v", err)
	}
	if payload["message"] != "Not Found" {
		t.Errorf(`expected {"message":"Not Found"}, got %s`, o.Payload)
	}
}

func TestSend_SuccessEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))
	defer server.Close()

	d := New("AccessKey", &fakeGenerator{})
	res, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        server.URL,
		Body:       `{"chapters":[]}`,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	o := res.Outcome
	if !o.OK || o.Status != 204 {
		t.Errorf("unexpected outcome: %+v", o)
	}
	var payload map[string]any
	if err := json.Unmarshal(o.Payload, &payload); err != nil {
		t.Fatalf("payload unmarshal failed: %v", err)
	}
	if payload["status"] != float64(204) || payload["statusText"] != "No Content" {
		t.Errorf("unexpected synthesized payload: %s", o.Payload)
	}
}

func TestSend_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	d := New("AccessKey", &fakeGenerator{})
	res, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        url,
		Body:       `{"chapters":[]}`,
	})
	if err != nil {
		t.Fatalf("transport failures must not surface as errors, got %v", err)
	}

	o := res.Outcome
	if o.OK {
		t.Error("unreachable endpoint must record a failure outcome")
	}
	if o.StatusLabel != ErrLabel {
		t.Errorf("expected status label %q, got %q", ErrLabel, o.StatusLabel)
	}
	if o.Status != 0 {
		t.Errorf("expected no numeric status, got %d", o.Status)
	}
	if o.Message == "" {
		t.Error("expected a populated message")
	}
}

func TestSend_MalformedResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(200)
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	d := New("AccessKey", &fakeGenerator{})
	res, err := d.Send(context.Background(), Input{
		Credential: "key",
		URL:        server.URL,
		Body:       `{"chapters":[]}`,
	})
	if err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	o := res.Outcome
	if o.OK || o.StatusLabel != ErrLabel {
		t.Errorf("malformed body should record an ERR outcome, got %+v", o)
	}
	if !strings.Contains(o.Message, "not valid JSON") {
		t.Errorf("unexpected message: %s", o.Message)
	}
}

func TestValidationError_Message(t *testing.T) {
	err := &ValidationError{Fields: []string{"credential", "body"}}
	if err.Error() != "missing or invalid: credential, body" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
