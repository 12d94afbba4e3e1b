// Package suggest performs the external suggestion round trip: it
// embeds the live availability, profile and schedule into a text prompt
// for an OpenAI-compatible chat endpoint and returns the raw response
// text for the reconciler to parse. Any failure on the wire is
// recovered locally with a heuristic fallback response; callers never
// see an error.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/iliyamo/office-seat-advisor/internal/model"
)

// Client talks to the configured suggestion provider. BaseURL selects
// the endpoint and Model the identifier, both environment-driven.
type Client struct {
	BaseURL string
	Model   string
	APIKey  string
	HTTP    *http.Client
}

// NewClient builds a suggestion client. timeout bounds the whole round
// trip; the suggestion path is the only suspension point in a
// recommendation request.
func NewClient(baseURL, modelName, apiKey string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Model:   modelName,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Suggest returns the provider's free-text seat suggestions. On any
// transport, status or decode failure it logs the cause and substitutes
// FallbackText built from the internal ranking, so the recommendation
// flow always completes.
func (c *Client) Suggest(ctx context.Context, request string, available []model.Seat, p model.PreferenceProfile, schedule []model.ScheduleEvent, internal []model.Recommendation) string {
	text, err := c.call(ctx, buildPrompt(request, available, p, schedule))
	if err != nil {
		log.Printf("suggest: provider call failed, using local fallback: %v", err)
		return FallbackText(internal)
	}
	return text
}

func (c *Client) call(ctx context.Context, prompt string) (string, error) {
	if c.BaseURL == "" {
		return "", fmt.Errorf("no provider configured")
	}
	body, err := json.Marshal(chatRequest{
		Model:    c.Model,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("provider returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

// buildPrompt packs the structured context into the text prompt. The
// provider is asked to answer in the exact pattern the reconciler
// extracts: "<seat id> (<percent>% match) - <reason>".
func buildPrompt(request string, available []model.Seat, p model.PreferenceProfile, schedule []model.ScheduleEvent) string {
	var b strings.Builder
	b.WriteString("You are a workspace assistant recommending office seats.\n")
	fmt.Fprintf(&b, "Request: %s\n", request)
	fmt.Fprintf(&b, "Requester team: %s, work style: %s, collaboration need: %s\n", p.Team, p.WorkStyle, p.Collaboration)
	if len(p.Features) > 0 {
		fmt.Fprintf(&b, "Requested features: %s\n", strings.Join(p.Features, ", "))
	}
	b.WriteString("Available seats:\n")
	for _, s := range available {
		fmt.Fprintf(&b, "- %s (team %s, %s zone", s.ID, s.Team, s.ZoneType)
		if len(s.Equipment) > 0 {
			fmt.Fprintf(&b, ", equipment: %s", strings.Join(s.Equipment, ", "))
		}
		b.WriteString(")\n")
	}
	if len(schedule) > 0 {
		b.WriteString("Schedule today:\n")
		for _, ev := range schedule {
			fmt.Fprintf(&b, "- %s %s-%s\n", ev.Type, ev.Start.Format("15:04"), ev.End.Format("15:04"))
		}
	}
	b.WriteString("Pick up to 3 seats. Answer one per line as: <seat id> (<percent>% match) - <short reason>\n")
	return b.String()
}

// FallbackText renders the internal ranking in the suggestion response
// pattern so the reconciler can treat a local fallback exactly like a
// provider answer.
func FallbackText(internal []model.Recommendation) string {
	var b strings.Builder
	for i, rec := range internal {
		if i == 3 {
			break
		}
		reason := "good overall match"
		if len(rec.Reasons) > 0 && rec.Reasons[0] != "" {
			reason = strings.ToLower(rec.Reasons[0][:1]) + rec.Reasons[0][1:]
		}
		fmt.Fprintf(&b, "%s (%d%% match) - %s\n", rec.SeatID, rec.Score, reason)
	}
	if b.Len() == 0 {
		return "No seats are available right now."
	}
	return b.String()
}
