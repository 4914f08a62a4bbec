package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"tripplanner/internal/api/controllers"
	"tripplanner/pkg/memcache"
	"tripplanner/pkg/middleware"
)

type RouterParams struct {
	fx.In

	Health    *controllers.HealthController
	Session   *controllers.SessionController
	Trip      *controllers.TripController
	Itinerary *controllers.ItineraryController
	Selection *controllers.SelectionController
	Report    *controllers.ReportController
	Chat      *controllers.ChatController
}

type RouterOptions struct {
	SessionSecret  []byte
	Sessions       memcache.SessionStore
	AllowedOrigins []string
}

func NewRouter(p RouterParams, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware(opts.AllowedOrigins))

	RegisterRoutes(r, p, middleware.SessionMiddleware(opts.SessionSecret, opts.Sessions))

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams, session gin.HandlerFunc) {
	r.GET("/health", p.Health.Health)
	r.POST("/sessions", p.Session.CreateSession)

	authed := r.Group("/")
	authed.Use(session)

	authed.DELETE("/sessions/current", p.Session.EndSession)

	tripGroup := authed.Group("/trip")
	tripGroup.PUT("", p.Trip.SubmitTrip)
	tripGroup.GET("", p.Trip.GetTrip)
	tripGroup.GET("/prompt", p.Trip.PreviewPrompt)

	itineraryGroup := authed.Group("/itinerary")
	itineraryGroup.GET("", p.Itinerary.GetItinerary)
	itineraryGroup.POST("/generate", p.Itinerary.GenerateItinerary)
	itineraryGroup.POST("/parse", p.Itinerary.ParseItinerary)

	selectionGroup := authed.Group("/selections")
	selectionGroup.PUT("", p.Selection.ToggleSelection)
	selectionGroup.GET("", p.Selection.ListSelections)

	reportGroup := authed.Group("/report")
	reportGroup.GET("", p.Report.GetReport)
	reportGroup.GET("/pdf", p.Report.DownloadPDF)

	chatGroup := authed.Group("/chat")
	chatGroup.POST("", p.Chat.Ask)
	chatGroup.GET("", p.Chat.History)
	chatGroup.DELETE("", p.Chat.Reset)

	authed.POST("/confirm", p.Report.ConfirmTrip)
}
