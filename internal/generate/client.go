// Package generate wraps the remote AI workout-generation service. The
// gateway validates the profile client-side, issues a single bounded POST,
// and classifies failures; it never commits the resulting plan — accepting
// or discarding a candidate is the caller's decision.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/shashankd123/workout-frontend/internal/plan"
)

// DefaultTimeout bounds the remote call: up to a minute of server cold
// start plus generation time, with buffer.
const DefaultTimeout = 120 * time.Second

// Gateway calls the generation service.
type Gateway struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        *slog.Logger
}

// New creates a Gateway targeting the given base URL.
func New(baseURL string, log *slog.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
		// Per-request deadlines come from the context; no client-wide timeout.
		httpClient: &http.Client{},
		log:        log,
	}
}

// WithTimeout overrides the bounded wait. Used by tests.
func (g *Gateway) WithTimeout(d time.Duration) *Gateway {
	g.timeout = d
	return g
}

// request is the wire shape of the generation call: the profile fields plus
// the device ID and a workoutType field mirroring the preferred-workout-types
// selection.
type request struct {
	UserProfile
	UserID      string `json:"userId"`
	WorkoutType string `json:"workoutType"`
}

// Generate validates the profile and requests a plan from the remote
// service. Failure modes: *ValidationError before any network I/O,
// *TimeoutError when the bounded wait elapses, *RemoteError on a non-2xx
// response or an unparseable body. Cancelling ctx aborts the in-flight call.
//
// The returned plan is a candidate only; nothing is persisted here.
func (g *Gateway) Generate(ctx context.Context, profile UserProfile, userID string) (plan.WeeklyPlan, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	body, err := json.Marshal(request{
		UserProfile: profile,
		UserID:      userID,
		WorkoutType: profile.PreferredWorkouts,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling profile: %w", err)
	}

	parent := ctx
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/api/generate-workout", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	if err != nil {
		// Only the gateway's own budget elapsing is a TimeoutError; a
		// deadline the caller brought surfaces as a plain wrapped error.
		if errors.Is(err, context.DeadlineExceeded) && parent.Err() == nil {
			g.log.Warn("generation timed out", "after", time.Since(start).String())
			return nil, &TimeoutError{Wait: g.timeout.String()}
		}
		return nil, fmt.Errorf("generation request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		g.log.Warn("generation failed", "status", resp.StatusCode)
		return nil, &RemoteError{Status: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}

	var p plan.WeeklyPlan
	if err := json.Unmarshal(respBody, &p); err != nil {
		return nil, &RemoteError{Status: resp.StatusCode, Message: "malformed plan in response: " + err.Error()}
	}

	g.log.Info("generation succeeded", "took", time.Since(start).String(), "days", len(p))
	return p, nil
}
