package routes

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"go-healthnav/advisor"
	"go-healthnav/handlers"
	"go-healthnav/notify"
	"go-healthnav/session"
)

// Deps carries everything the routes need injected.
type Deps struct {
	Advisor *advisor.Advisor
	Store   handlers.HospitalStore
	Session *session.Session
	Toasts  *notify.Center
	Extract handlers.ExtractFunc
	Resolve handlers.ResolveFunc
}

const indexPage = "./web/index.html"

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()
	r.Use(cors())

	// Serve the demo page when it ships alongside the binary.
	if _, err := os.Stat(indexPage); err == nil {
		r.StaticFile("/", indexPage)
	} else {
		r.GET("/", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message": "Hello, welcome to HealthNav!",
			})
		})
	}

	r.GET("/api/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "healthnav",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// api routes
	api := r.Group("/api")
	{
		api.POST("/advice", func(c *gin.Context) {
			handlers.Advice(c, d.Advisor)
		})
		api.POST("/ask", func(c *gin.Context) {
			handlers.Ask(c, d.Advisor)
		})
		api.GET("/facilities", func(c *gin.Context) {
			handlers.Facilities(c, d.Store)
		})
		api.GET("/facility/:id", func(c *gin.Context) {
			handlers.Facility(c, d.Store)
		})
		api.POST("/incident/locate", func(c *gin.Context) {
			handlers.LocateIncident(c, d.Extract, d.Resolve)
		})

		api.GET("/session", func(c *gin.Context) {
			handlers.GetSession(c, d.Session, d.Toasts)
		})
		api.POST("/session/message", func(c *gin.Context) {
			handlers.PostSessionMessage(c, d.Session, d.Toasts)
		})
		api.POST("/session/severity", func(c *gin.Context) {
			handlers.PostSessionSeverity(c, d.Session, d.Toasts)
		})
		api.POST("/session/incident", func(c *gin.Context) {
			handlers.PostSessionIncident(c, d.Session, d.Toasts)
		})
	}

	return r
}

// cors mirrors the original backend's allow-all headers so the demo
// page can be opened straight from disk.
func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
