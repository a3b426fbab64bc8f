package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shashankd123/workout-frontend/internal/generate"
	"github.com/shashankd123/workout-frontend/internal/plan"
)

// HTTPClient implements DataSource by calling the workout daemon's REST
// API. Used for remote MCP mode where the binary runs locally (stdio) but
// the plan lives on the daemon (typically reached over Tailscale).
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL. The API
// key authorizes mutation and generation calls.
func NewHTTPClient(baseURL, apiKey string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		// Generation calls ride through this client too; the budget must
		// outlast the daemon's own 120s generation timeout.
		httpClient: &http.Client{Timeout: generate.DefaultTimeout + 10*time.Second},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("httpclient: marshal payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// dayPayload is the daemon's mutation response shape.
type dayPayload struct {
	Day       string          `json:"day"`
	Workout   string          `json:"workout"`
	Exercises []plan.Exercise `json:"exercises"`
}

func decodeDay(body []byte) (plan.DayPlan, error) {
	var dp dayPayload
	if err := json.Unmarshal(body, &dp); err != nil {
		return plan.DayPlan{}, fmt.Errorf("httpclient: decode day: %w", err)
	}
	return plan.DayPlan{Workout: dp.Workout, Exercises: dp.Exercises}, nil
}

func (c *HTTPClient) Plan(ctx context.Context) (plan.WeeklyPlan, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plan", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Plan plan.WeeklyPlan `json:"plan"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode plan: %w", err)
	}
	return resp.Plan, nil
}

func (c *HTTPClient) Day(ctx context.Context, day string) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/plan/"+day, nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) UserID(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, "/api/v1/user", nil)
	if err != nil {
		return "", err
	}
	var resp struct {
		UserID string `json:"userId"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("httpclient: decode user: %w", err)
	}
	return resp.UserID, nil
}

func (c *HTTPClient) SetDayTitle(ctx context.Context, day, title string) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+day+"/title",
		map[string]string{"title": title})
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) AddExercise(ctx context.Context, day string) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+day+"/exercises", nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) DeleteExercise(ctx context.Context, day string, index int) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/v1/plan/%s/exercises/%d", day, index), nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) MoveExercise(ctx context.Context, day string, index int, dir plan.Direction) (plan.DayPlan, error) {
	direction := "up"
	if dir == plan.MoveDown {
		direction = "down"
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/plan/%s/exercises/%d/move", day, index),
		map[string]string{"direction": direction})
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) SetExerciseField(ctx context.Context, day string, index int, fv plan.FieldValue) (plan.DayPlan, error) {
	var value any
	switch fv.Field {
	case plan.FieldName:
		value = fv.Name
	case plan.FieldSets:
		value = fv.Sets
	case plan.FieldReps:
		value = fv.Reps
	case plan.FieldCompleted:
		value = fv.Completed
	}
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/plan/%s/exercises/%d", day, index),
		map[string]any{"field": fv.Field.String(), "value": value})
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) ToggleExercise(ctx context.Context, day string, index int) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/v1/plan/%s/exercises/%d/toggle", day, index), nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) ResetDay(ctx context.Context, day string) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+day+"/reset", nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) ResetCompletion(ctx context.Context, day string) (plan.DayPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan/"+day+"/reset-completion", nil)
	if err != nil {
		return plan.DayPlan{}, err
	}
	return decodeDay(body)
}

func (c *HTTPClient) AcceptPlan(ctx context.Context, p plan.WeeklyPlan) (plan.WeeklyPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/plan", p)
	if err != nil {
		return nil, err
	}
	var committed plan.WeeklyPlan
	if err := json.Unmarshal(body, &committed); err != nil {
		return nil, fmt.Errorf("httpclient: decode committed plan: %w", err)
	}
	return committed, nil
}

func (c *HTTPClient) Generate(ctx context.Context, profile generate.UserProfile) (plan.WeeklyPlan, error) {
	body, err := c.do(ctx, http.MethodPost, "/api/v1/generate", profile)
	if err != nil {
		return nil, err
	}
	var resp struct {
		Candidate plan.WeeklyPlan `json:"candidate"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode candidate: %w", err)
	}
	return resp.Candidate, nil
}
