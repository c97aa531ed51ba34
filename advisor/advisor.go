package advisor

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"go-healthnav/types"
)

const (
	maxRecommendations = 5
	maxTagsPerCard     = 4

	// Shown when the LLM is configured but the call fails.
	llmUnavailableMessage = "AI unavailable. Showing hospital recommendations only."
)

// Store is the hospital source the advisor reads from.
type Store interface {
	List(ctx context.Context) ([]types.Hospital, error)
}

// LLMClient is the slice of the OpenAI client the advisor uses, kept
// narrow so tests can stub it.
type LLMClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// fallbackHospitals is served when the store is empty or unreachable.
var fallbackHospitals = []types.Hospital{
	{Name: "Fallback Hospital", ETA: "N/A", Tags: []string{"General"}},
}

// Advisor turns a complaint into a reply message plus a ranked,
// full-replace recommendation list.
type Advisor struct {
	store Store
	llm   LLMClient
}

// New builds an Advisor. llm may be nil; replies then come from the
// deterministic condition messages only.
func New(store Store, llm LLMClient) *Advisor {
	return &Advisor{store: store, llm: llm}
}

// Advise never fails the request: store and LLM trouble degrade to
// fallback data and a fixed message.
func (a *Advisor) Advise(ctx context.Context, symptoms string, severity types.Severity, incident *types.Incident) (string, []types.Recommendation) {
	hospitals, err := a.store.List(ctx)
	if err != nil {
		log.Printf("hospital store unavailable, using fallback list: %v", err)
		hospitals = fallbackHospitals
	}
	if len(hospitals) == 0 {
		log.Println("hospital store empty, using fallback list")
		hospitals = fallbackHospitals
	}

	condition, service := Classify(symptoms)
	recs := rank(hospitals, service, severity, incident)

	message := a.replyMessage(ctx, symptoms, condition, severity, recs)
	return message, recs
}

// replyMessage asks the LLM for advice when one is configured, falling
// back to the canned per-condition message otherwise.
func (a *Advisor) replyMessage(ctx context.Context, symptoms, condition string, severity types.Severity, recs []types.Recommendation) string {
	if a.llm == nil {
		return ConditionMessage(condition, symptoms, severity)
	}

	msg, err := a.callLLM(ctx, symptoms, severity, recs)
	if err != nil {
		log.Printf("openai advice failed: %v", err)
		return llmUnavailableMessage
	}
	return msg
}

func (a *Advisor) callLLM(ctx context.Context, symptoms string, severity types.Severity, recs []types.Recommendation) (string, error) {
	var list strings.Builder
	for _, r := range recs {
		fmt.Fprintf(&list, "- %s (%s) | Tags: %s\n", r.Name, r.ETA, strings.Join(r.Tags, ", "))
	}

	prompt := fmt.Sprintf(
		"Select the most suitable hospital from the list below based on the patient's symptoms, "+
			"matching relevant tags (specialties, services), and also consider ETA (shorter is better if equally matched).\n\n"+
			"Patient symptoms: %s\nSeverity: %s\n\nHospitals:\n%s\n"+
			"Respond with a short explanation of which hospital is best and why, mentioning ETA and relevant tags.",
		symptoms, severity, list.String())

	resp, err := a.llm.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: "You are a hospital recommendation assistant.",
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens:   200,
			Temperature: 0.7,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai chat completion error: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned empty response or choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// rank orders hospitals by tag relevance to the wanted service, then by
// ETA, and trims the result to card size.
func rank(hospitals []types.Hospital, service string, severity types.Severity, incident *types.Incident) []types.Recommendation {
	type scored struct {
		rec     types.Recommendation
		matches int
		minutes int
	}

	items := make([]scored, 0, len(hospitals))
	for _, h := range hospitals {
		eta := h.ETA
		minutes := parseETAMinutes(eta)
		if incident != nil && (h.Lat != 0 || h.Lng != 0) {
			// A placed incident overrides the stored ETA with a
			// distance-based one.
			miles := HaversineMiles(incident.Lat, incident.Lng, h.Lat, h.Lng)
			eta = FormatETA(miles, severity)
			minutes = etaMinutes(miles, severity)
		}

		tags := h.Tags
		if len(tags) > maxTagsPerCard {
			tags = tags[:maxTagsPerCard]
		}

		items = append(items, scored{
			rec:     types.Recommendation{Name: h.Name, ETA: eta, Tags: tags},
			matches: countTagMatches(h.Tags, service),
			minutes: minutes,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].matches != items[j].matches {
			return items[i].matches > items[j].matches
		}
		return items[i].minutes < items[j].minutes
	})

	if len(items) > maxRecommendations {
		items = items[:maxRecommendations]
	}

	recs := make([]types.Recommendation, len(items))
	for i, it := range items {
		recs[i] = it.rec
	}
	return recs
}

func countTagMatches(tags []string, service string) int {
	if service == "" {
		return 0
	}
	want := strings.ToLower(service)
	n := 0
	for _, t := range tags {
		tag := strings.ToLower(t)
		if strings.Contains(tag, want) || strings.Contains(want, tag) {
			n++
		}
	}
	return n
}
