package suggest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

func sampleInternal() []model.Recommendation {
	return []model.Recommendation{
		{SeatID: "ENG-S-01", Score: 88, Reasons: []string{"In your team's area (Engineering)"}},
		{SeatID: "ENG-S-02", Score: 75, Reasons: []string{"Available now"}},
	}
}

func TestSuggestUsesProviderResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"ENG-S-02 (91% match) - close to your team"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "", time.Second)
	text := c.Suggest(context.Background(), "quiet seat", nil, model.PreferenceProfile{}, nil, sampleInternal())
	if !strings.Contains(text, "ENG-S-02 (91%") {
		t.Errorf("provider text not returned: %q", text)
	}
}

func TestSuggestFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-model", "", time.Second)
	text := c.Suggest(context.Background(), "any seat", nil, model.PreferenceProfile{}, nil, sampleInternal())
	if !strings.Contains(text, "ENG-S-01 (88% match)") {
		t.Errorf("fallback text not built from internal ranking: %q", text)
	}
}

func TestSuggestFallsBackWithoutProvider(t *testing.T) {
	c := NewClient("", "", "", time.Second)
	text := c.Suggest(context.Background(), "any seat", nil, model.PreferenceProfile{}, nil, sampleInternal())
	if !strings.Contains(text, "ENG-S-01") {
		t.Errorf("fallback text missing top seat: %q", text)
	}
}

func TestFallbackTextMatchesReconcilerPattern(t *testing.T) {
	text := FallbackText(sampleInternal())
	for _, want := range []string{"ENG-S-01 (88% match)", "ENG-S-02 (75% match)"} {
		if !strings.Contains(text, want) {
			t.Errorf("fallback %q missing %q", text, want)
		}
	}
}

func TestFallbackTextEmptyRanking(t *testing.T) {
	if text := FallbackText(nil); strings.Contains(text, "%") {
		t.Errorf("empty ranking should not mention seats: %q", text)
	}
}

func TestPromptCarriesContext(t *testing.T) {
	seats := []model.Seat{{ID: "ENG-S-01", Team: "Engineering", ZoneType: model.ZoneOpen, Equipment: []string{"window"}}}
	schedule := []model.ScheduleEvent{{
		Start: time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 10, 15, 0, 0, 0, time.UTC),
		Type:  model.EventMeeting,
	}}
	p := model.PreferenceProfile{Team: "Engineering", WorkStyle: model.WorkStyleQuiet, Collaboration: model.CollabLow, Features: []string{"window"}}

	prompt := buildPrompt("a quiet window seat", seats, p, schedule)
	for _, want := range []string{"ENG-S-01", "quiet", "window", "meeting 14:00-15:00"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
