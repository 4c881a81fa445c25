package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eep666/bunny-chapter-update-tool/internal/chapters"
)

// ErrLabel is the non-numeric status label recorded when a send fails before
// an HTTP status is available (DNS, TLS, connection refused) or when the
// response body is malformed.
const ErrLabel = "ERR"

// NotesGenerator converts free-text notes into a chapters JSON document.
type NotesGenerator interface {
	Available() bool
	Generate(ctx context.Context, notes string) (string, error)
}

// Input is the form state a send operates on.
type Input struct {
	Credential string
	URL        string
	Body       string
}

// ValidationError reports required inputs that are missing or malformed,
// detected before any network call.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing or invalid: " + strings.Join(e.Fields, ", ")
}

// Outcome is the tagged result of a send attempt. A transport-level failure
// carries the ErrLabel status label and a message instead of a numeric
// status.
type Outcome struct {
	OK          bool
	Status      int
	StatusLabel string
	Payload     json.RawMessage
	Message     string
	Duration    time.Duration
	Size        int64
	ContentType string
}

// Result is what a completed send returns. GeneratedBody is non-empty when
// the body text was not valid JSON and was auto-converted through the
// generator; the caller should replace the displayed body with it.
type Result struct {
	Outcome       Outcome
	GeneratedBody string
}

// Dispatcher sends the current body content to a target endpoint as an
// authenticated POST.
type Dispatcher struct {
	credentialHeader string
	generator        NotesGenerator
	httpClient       *http.Client
}

// New creates a Dispatcher. credentialHeader is the header name carrying the
// caller-supplied credential (typically "AccessKey").
func New(credentialHeader string, gen NotesGenerator) *Dispatcher {
	return &Dispatcher{
		credentialHeader: credentialHeader,
		generator:        gen,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetTimeout sets the request timeout.
func (d *Dispatcher) SetTimeout(t time.Duration) {
	d.httpClient.Timeout = t
}

// Send validates the input, converts a non-JSON body through the generator,
// and issues one POST. Validation, configuration, and generation failures are
// returned as errors before any request to the target; every failure after
// that point is folded into the Outcome, so a non-nil Result never
// accompanies a non-nil error.
func (d *Dispatcher) Send(ctx context.Context, in Input) (*Result, error) {
	if err := validate(in); err != nil {
		return nil, err
	}

	res := &Result{}
	payload := strings.TrimSpace(in.Body)

	if c := chapters.Classify(payload); !c.Parsed {
		if d.generator == nil || !d.generator.Available() {
			return nil, chapters.ErrAICredentialMissing
		}
		generated, err := d.generator.Generate(ctx, payload)
		if err != nil {
			return nil, err
		}
		res.GeneratedBody = generated
		payload = generated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, in.URL, strings.NewReader(payload))
	if err != nil {
		res.Outcome = errOutcome(0, err)
		return res, nil
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(d.credentialHeader, in.Credential)
	req.Header.Set("X-Request-Id", uuid.NewString())

	start := time.Now()
	resp, err := d.httpClient.Do(req)
	if err != nil {
		res.Outcome = errOutcome(time.Since(start), err)
		return res, nil
	}
	defer resp.Body.Close()

	res.Outcome = readOutcome(resp, start)
	return res, nil
}

func validate(in Input) error {
	var missing []string
	if strings.TrimSpace(in.Credential) == "" {
		missing = append(missing, "credential")
	}
	rawURL := strings.TrimSpace(in.URL)
	if rawURL == "" {
		missing = append(missing, "url")
	}
	if strings.TrimSpace(in.Body) == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return &ValidationError{Fields: []string{"url"}}
	}
	switch u.Scheme {
	case "https":
	case "http":
		// Plain HTTP is allowed only against loopback, for local testing.
		if !isLoopback(u.Hostname()) {
			return &ValidationError{Fields: []string{"url (https required)"}}
		}
	default:
		return &ValidationError{Fields: []string{"url (https required)"}}
	}
	return nil
}

func isLoopback(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// readOutcome normalizes the HTTP response into an Outcome. The body is read
// as text first so empty bodies are tolerated; a non-empty body that is not
// valid JSON is treated as a parse failure, not as a payload.
func readOutcome(resp *http.Response, start time.Time) Outcome {
	text, err := readBody(resp)
	duration := time.Since(start)
	if err != nil {
		return errOutcome(duration, err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	reason := http.StatusText(resp.StatusCode)

	var payload json.RawMessage
	switch {
	case strings.TrimSpace(text) == "":
		if ok {
			payload, _ = json.Marshal(map[string]any{
				"status":     resp.StatusCode,
				"statusText": reason,
			})
		} else {
			payload, _ = json.Marshal(map[string]string{"message": reason})
		}
	case json.Valid([]byte(text)):
		payload = json.RawMessage(text)
	default:
		o := errOutcome(duration, fmt.Errorf("parsing response body: not valid JSON"))
		o.Size = int64(len(text))
		o.ContentType = resp.Header.Get("Content-Type")
		return o
	}

	return Outcome{
		OK:          ok,
		Status:      resp.StatusCode,
		StatusLabel: strconv.Itoa(resp.StatusCode),
		Payload:     payload,
		Duration:    duration,
		Size:        int64(len(text)),
		ContentType: resp.Header.Get("Content-Type"),
	}
}

func readBody(resp *http.Response) (string, error) {
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	return string(b), nil
}

func errOutcome(d time.Duration, err error) Outcome {
	payload, _ := json.Marshal(map[string]string{"message": err.Error()})
	return Outcome{
		OK:          false,
		StatusLabel: ErrLabel,
		Payload:     payload,
		Message:     err.Error(),
		Duration:    d,
	}
}
