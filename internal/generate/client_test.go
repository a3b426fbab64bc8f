package generate

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func validProfile() UserProfile {
	return UserProfile{
		Name:              "Alex",
		Gender:            "Male",
		Age:               28,
		HeightCm:          180,
		WeightKg:          80,
		ExperienceLevel:   "Intermediate",
		FitnessGoal:       "Muscle Gain",
		EquipmentAccess:   "Full Gym Access",
		PreferredWorkouts: "Strength Training",
		TimeAvailable:     "45-60 minutes",
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const planJSON = `{
	"Monday": {"workout": "Push", "exercises": [
		{"name": "Bench Press", "sets": 4, "reps": "6-8", "completed": false}
	]},
	"Sunday": {"workout": "", "exercises": []}
}`

// TestGenerateSuccess verifies a 200 response parses into a plan and the
// request carries userId and workoutType alongside the profile.
func TestGenerateSuccess(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/generate-workout" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, planJSON)
	}))
	defer srv.Close()

	g := New(srv.URL, testLogger())
	p, err := g.Generate(context.Background(), validProfile(), "device-42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p["Monday"].Workout != "Push" {
		t.Errorf("Monday workout = %q", p["Monday"].Workout)
	}
	if len(p["Sunday"].Exercises) != 0 {
		t.Errorf("Sunday should be a rest day, got %d exercises", len(p["Sunday"].Exercises))
	}
	if gotBody["userId"] != "device-42" {
		t.Errorf("userId = %v", gotBody["userId"])
	}
	if gotBody["workoutType"] != "Strength Training" {
		t.Errorf("workoutType = %v", gotBody["workoutType"])
	}
	if gotBody["age"] != float64(28) {
		t.Errorf("age = %v", gotBody["age"])
	}
	// Blank optionals must be omitted.
	if _, ok := gotBody["bfp"]; ok {
		t.Error("empty bfp was sent")
	}
	if _, ok := gotBody["injuries"]; ok {
		t.Error("empty injuries was sent")
	}
}

// TestGenerateValidationBeforeNetwork verifies an invalid profile fails with
// a ValidationError naming the field, with no request issued.
func TestGenerateValidationBeforeNetwork(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	p := validProfile()
	p.Age = 10

	g := New(srv.URL, testLogger())
	_, err := g.Generate(context.Background(), p, "device-42")

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	if !verr.Has("age") {
		t.Errorf("validation error does not mention age: %v", verr)
	}
	if !strings.Contains(verr.Error(), "age") {
		t.Errorf("message does not mention age: %q", verr.Error())
	}
	if called {
		t.Error("network call was made despite validation failure")
	}
}

// TestGenerateCollectsAllFieldErrors verifies every failing field is listed,
// not just the first.
func TestGenerateCollectsAllFieldErrors(t *testing.T) {
	p := UserProfile{} // everything missing
	err := p.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want ValidationError", err)
	}
	for _, field := range []string{"name", "gender", "age", "height", "weight", "experienceLevel", "fitnessGoal", "equipmentAccess", "preferredWorkoutTypes", "timeAvailable"} {
		if !verr.Has(field) {
			t.Errorf("missing field error for %s", field)
		}
	}
	// Unset bfp is optional and must not be flagged.
	if verr.Has("bfp") {
		t.Error("unset bfp flagged as invalid")
	}
}

// TestValidateBFPRange verifies the optional body-fat bound.
func TestValidateBFPRange(t *testing.T) {
	p := validProfile()
	p.BodyFatPct = 60
	err := p.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) || !verr.Has("bfp") {
		t.Errorf("bfp=60 not rejected: %v", err)
	}

	p.BodyFatPct = 15.5
	if err := p.Validate(); err != nil {
		t.Errorf("bfp=15.5 rejected: %v", err)
	}
}

// TestGenerateTimeout verifies a response that never arrives within the
// bounded wait fails with TimeoutError.
func TestGenerateTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	g := New(srv.URL, testLogger()).WithTimeout(50 * time.Millisecond)
	_, err := g.Generate(context.Background(), validProfile(), "device-42")

	var terr *TimeoutError
	if !errors.As(err, &terr) {
		t.Fatalf("error = %v, want TimeoutError", err)
	}
}

// TestGenerateCancellation verifies caller cancellation aborts the in-flight
// request and is not reported as a timeout.
func TestGenerateCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	g := New(srv.URL, testLogger())
	_, err := g.Generate(ctx, validProfile(), "device-42")
	if err == nil {
		t.Fatal("expected error after cancellation")
	}
	var terr *TimeoutError
	if errors.As(err, &terr) {
		t.Error("cancellation misclassified as timeout")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

// TestGenerateCallerDeadline verifies a deadline the caller brought is not
// reported as the gateway's bounded wait elapsing.
func TestGenerateCallerDeadline(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	g := New(srv.URL, testLogger()).WithTimeout(10 * time.Second)
	_, err := g.Generate(ctx, validProfile(), "device-42")
	if err == nil {
		t.Fatal("expected error after caller deadline")
	}
	var terr *TimeoutError
	if errors.As(err, &terr) {
		t.Errorf("caller deadline misclassified as gateway timeout: %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

// TestGenerateRemoteError verifies a non-2xx response surfaces the server's
// diagnostic text.
func TestGenerateRemoteError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "model overloaded, try later")
	}))
	defer srv.Close()

	g := New(srv.URL, testLogger())
	_, err := g.Generate(context.Background(), validProfile(), "device-42")

	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
	if rerr.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rerr.Status)
	}
	if !strings.Contains(rerr.Message, "model overloaded") {
		t.Errorf("message = %q", rerr.Message)
	}
}

// TestGenerateMalformedBody verifies an unparseable success body is treated
// as a RemoteError rather than a panic or an empty plan.
func TestGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>Service Unavailable</html>")
	}))
	defer srv.Close()

	g := New(srv.URL, testLogger())
	_, err := g.Generate(context.Background(), validProfile(), "device-42")

	var rerr *RemoteError
	if !errors.As(err, &rerr) {
		t.Fatalf("error = %v, want RemoteError", err)
	}
}
