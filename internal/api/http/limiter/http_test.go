package limiter

import (
	"context"
	"math"
	"net/http"
	"testing"
	"time"

	"github.com/Tally-lab/Tally-BE/internal/app"
	"github.com/Tally-lab/Tally-BE/internal/mock"
)

func TestLimitedTransportRate(t *testing.T) {
	maxRate := 500.0
	testTime := 200 * time.Millisecond

	rt := &mock.RoundTripper{}
	limited := NewTransport(rt, maxRate)

	req, _ := http.NewRequest(http.MethodGet, "http://fakeurl", nil)
	startTime := time.Now()
	var trips int
	for startTime.Add(testTime).After(time.Now()) {
		if _, err := limited.RoundTrip(req); err != nil {
			t.Fatalf("RoundTrip() returned error: %v", err)
		}
		trips++
	}

	expectedTrips := float64(maxRate) * float64(testTime) / float64(time.Second)
	diff := math.Abs(float64(trips)-expectedTrips) / expectedTrips
	if diff > 0.1 {
		t.Errorf("unexpected number of round trips: %d, want %d", trips, int(expectedTrips))
	}
	if rt.Calls() != trips {
		t.Errorf("unexpected number of wrapped round trips: %d, want %d", rt.Calls(), trips)
	}
}

func TestLimitedTransportTimeout(t *testing.T) {
	rt := &mock.RoundTripper{}
	limited := NewTransport(rt, 1)

	req, _ := http.NewRequest(http.MethodGet, "http://fakeurl", nil)
	ctx, cancel := context.WithTimeout(req.Context(), 10*time.Millisecond)
	defer cancel()
	req = req.WithContext(ctx)

	if _, err := limited.RoundTrip(req); err != nil {
		t.Fatalf("first RoundTrip() returned error: %v", err)
	}

	// Error is expected because of short ctx timeout and low rate limit.
	_, err := limited.RoundTrip(req)
	if err == nil {
		t.Fatal("second RoundTrip() didn't return error")
	}
	if !app.IsTooManyRequestsError(err) {
		t.Fatalf("unexpected error type: %v", err)
	}
}
