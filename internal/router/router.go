package router

import (
	"time"

	"whateating/internal/dashboard"
	"whateating/internal/middleware"
	"whateating/internal/selection"
	"whateating/internal/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Deps struct {
	Dashboard   *dashboard.Handler
	Sessions    session.Store
	Signer      *session.Signer
	CORSOrigins []string
}

func NewRouter(deps Deps) (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := dashboard.Templates()
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	if len(deps.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSOrigins,
			AllowMethods:     []string{"GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := deps.Dashboard

	// ───────────────────────── PAGE ─────────────────────────
	page := r.Group("/")
	page.Use(middleware.Session(deps.Sessions, deps.Signer))
	{
		page.GET("", h.Index)
		page.GET("chart.png", h.Chart)
		page.POST("choose/delivery", h.ChooseOption(selection.Delivery))
		page.POST("choose/dine-in", h.ChooseOption(selection.DineIn))
		page.POST("choose/restaurant", h.ChooseRestaurant)
		page.POST("feedback", h.SubmitFeedback)
		page.POST("export", h.Export)
	}

	// ───────────────────────── JSON API ─────────────────────────
	api := r.Group("/api")
	api.Use(middleware.Session(deps.Sessions, deps.Signer))
	{
		api.GET("/locations", h.ListLocations)
		api.GET("/locations/open", h.ListOpenLocations)
		api.GET("/summary", h.GetSummary)
		api.GET("/aggregate", h.GetAggregate)

		api.GET("/session", h.GetSession)
		api.POST("/selection", h.PostSelection)

		api.GET("/candidates", h.GetCandidates)
		api.POST("/restaurant", h.PostRestaurant)
		api.GET("/detail", h.GetDetail)

		api.GET("/feedback", h.GetFeedback)
		api.POST("/feedback", h.PostFeedback)
		api.POST("/feedback/export", h.ExportFeedback)
	}

	return r, nil
}
