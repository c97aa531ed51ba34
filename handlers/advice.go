package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-healthnav/advisor"
	"go-healthnav/types"
)

// defaultComplaint stands in when the client sent a body with no
// symptom text, matching the original backend behavior.
const defaultComplaint = "General patient condition"

// Advice handles POST /api/advice: {"symptoms","severity",...} in,
// {"message","recommendations"} out. Store or LLM trouble degrades
// inside the advisor; the route itself only fails on a bad body.
func Advice(c *gin.Context, adv *advisor.Advisor) {
	var req types.AdviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input provided"})
		return
	}

	symptoms := strings.TrimSpace(req.Symptoms)
	if symptoms == "" {
		symptoms = defaultComplaint
	}
	severity := types.ParseSeverity(req.Severity)

	var incident *types.Incident
	if req.Latitude != nil && req.Longitude != nil {
		incident = &types.Incident{Lat: *req.Latitude, Lng: *req.Longitude}
	}

	message, recs := adv.Advise(c.Request.Context(), symptoms, severity, incident)
	c.JSON(http.StatusOK, types.AdviceResponse{
		Message:         message,
		Recommendations: recs,
	})
}

// Ask handles POST /api/ask, the question/answer wire shape, mapped
// onto the same advisor.
func Ask(c *gin.Context, adv *advisor.Advisor) {
	var req types.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input provided"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No input provided"})
		return
	}

	answer, _ := adv.Advise(c.Request.Context(), question, types.Critical, nil)
	c.JSON(http.StatusOK, types.AskResponse{Answer: answer})
}
