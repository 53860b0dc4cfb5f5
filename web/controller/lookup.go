package controller

import (
	"net/http"

	"gamevault/web/service"

	"github.com/gin-gonic/gin"
)

// LookupForm represents the availability lookup request structure.
type LookupForm struct {
	Name string `json:"name" form:"name"`
}

// StatsForm represents the stats-link request structure.
type StatsForm struct {
	Name   string `json:"name" form:"name"`
	Region string `json:"region" form:"region"`
}

// LookupController handles the unauthenticated helper lookups: game-name
// availability and the stats-link builder.
type LookupController struct {
	BaseController

	availabilityService *service.AvailabilityService
	statsLinkService    *service.StatsLinkService
}

func NewLookupController(g *gin.RouterGroup, availabilityService *service.AvailabilityService, statsLinkService *service.StatsLinkService) *LookupController {
	a := &LookupController{
		availabilityService: availabilityService,
		statsLinkService:    statsLinkService,
	}
	a.initRouter(g)
	return a
}

func (a *LookupController) initRouter(g *gin.RouterGroup) {
	l := g.Group("/lookup")

	l.POST("/availability", a.availability)
	l.POST("/stats", a.stats)
}

func (a *LookupController) availability(c *gin.Context) {
	var form LookupForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" {
		pureJsonMsg(c, http.StatusOK, false, "name is empty")
		return
	}

	status := a.availabilityService.CheckName(c.Request.Context(), form.Name)
	jsonObj(c, gin.H{"name": form.Name, "status": status}, nil)
}

func (a *LookupController) stats(c *gin.Context) {
	var form StatsForm
	if err := c.ShouldBind(&form); err != nil || form.Name == "" || form.Region == "" {
		pureJsonMsg(c, http.StatusOK, false, "name and region are required")
		return
	}

	url := a.statsLinkService.BuildURL(form.Name, form.Region)
	jsonObj(c, gin.H{"url": url}, nil)
}
