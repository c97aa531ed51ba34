package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go-healthnav/types"
)

// Variant selects which backend wire shape the client speaks. The two
// example backends are mutually exclusive, so one configurable client
// covers both instead of hard-coding a host per shape.
type Variant string

const (
	// VariantAsk is {"question"} -> {"answer"}.
	VariantAsk Variant = "ask"
	// VariantAdvice is {"symptoms",...} -> {"message","recommendations"}.
	VariantAdvice Variant = "advice"
)

// ErrMalformedReply is returned when the backend answered 200 but the
// body carries neither an answer nor a message field. Callers treat it
// exactly like a transport failure: no partial data is surfaced.
var ErrMalformedReply = errors.New("backend reply missing answer text")

// Reply is the decoded backend response, normalized across variants.
type Reply struct {
	Text            string
	Recommendations []types.Recommendation
}

// Client sends one request per Ask call. No retry, no imposed timeout,
// no de-duplication; cancellation is whatever the caller puts in ctx.
type Client struct {
	url        string
	variant    Variant
	httpClient *http.Client
}

func New(url string, variant Variant) *Client {
	return &Client{
		url:        url,
		variant:    variant,
		httpClient: http.DefaultClient,
	}
}

// Ask forwards the user's text to the configured endpoint and decodes
// the reply. Severity and incident are only sent on the advice variant.
func (c *Client) Ask(ctx context.Context, question string, severity types.Severity, incident *types.Incident) (*Reply, error) {
	var payload any
	switch c.variant {
	case VariantAsk:
		payload = types.AskRequest{Question: question}
	default:
		req := types.AdviceRequest{
			Symptoms: question,
			Severity: string(severity),
		}
		if incident != nil {
			req.Latitude = &incident.Lat
			req.Longitude = &incident.Lng
		}
		payload = req
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("backend returned status: " + resp.Status)
	}

	var decoded struct {
		Answer          string                 `json:"answer"`
		Message         string                 `json:"message"`
		Recommendations []types.Recommendation `json:"recommendations"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}

	// Whichever of answer/message is present carries the reply text.
	text := decoded.Answer
	if text == "" {
		text = decoded.Message
	}
	if text == "" {
		return nil, ErrMalformedReply
	}

	return &Reply{
		Text:            text,
		Recommendations: decoded.Recommendations,
	}, nil
}
