package routes

import (
	"webatelier/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizardSessions = "/wizard/sessions"
)

func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", wizardHandler.StartSession)
		sessions.GET("/:session_id", wizardHandler.GetSession)
		sessions.PATCH("/:session_id/draft", wizardHandler.UpdateDraft)

		sessions.POST("/:session_id/features", wizardHandler.AddFeature)
		sessions.DELETE("/:session_id/features/:feature_id", wizardHandler.RemoveFeature)
		sessions.POST("/:session_id/pages", wizardHandler.AddPage)
		sessions.DELETE("/:session_id/pages/:page_id", wizardHandler.RemovePage)

		sessions.POST("/:session_id/next", wizardHandler.Next)
		sessions.POST("/:session_id/prev", wizardHandler.Prev)
		sessions.POST("/:session_id/submit", wizardHandler.Submit)
	}
}
