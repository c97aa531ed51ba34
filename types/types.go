package types

// Sender identifies who produced a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
	SenderMeta Sender = "meta"
)

// Message is a single chat entry. History is append-only; entries are
// never edited or removed once appended (the transient thinking
// placeholder is the one exception, see session.Submit).
type Message struct {
	Sender Sender `json:"sender"`
	Text   string `json:"text"`
}

// Recommendation is one hospital card: name, free-text ETA ("6 min"),
// and capability tags in display order.
type Recommendation struct {
	Name string   `json:"name"`
	ETA  string   `json:"eta"`
	Tags []string `json:"tags"`
}

// AdviceRequest is the variant-B request body (POST /api/advice).
// Latitude/Longitude are optional; nil means no incident is placed yet.
type AdviceRequest struct {
	Symptoms  string   `json:"symptoms"`
	Severity  string   `json:"severity"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// AdviceResponse is the variant-B response body.
type AdviceResponse struct {
	Message         string           `json:"message"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
}

// AskRequest and AskResponse are the variant-A shapes (POST /api/ask).
type AskRequest struct {
	Question string `json:"question"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
