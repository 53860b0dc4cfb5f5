package controller

import (
	"gamevault/web/service"
	"gamevault/web/session"

	"github.com/gin-gonic/gin"
)

// NoteForm represents the vault write request structure.
type NoteForm struct {
	Note string `json:"note" form:"note"`
}

// VaultController handles reads and writes of the logged-in account's note.
// Every route is behind the login guard, and the note is always addressed by
// the session account's own id.
type VaultController struct {
	BaseController

	vaultService *service.VaultService
}

func NewVaultController(g *gin.RouterGroup, vaultService *service.VaultService) *VaultController {
	a := &VaultController{vaultService: vaultService}
	a.initRouter(g)
	return a
}

func (a *VaultController) initRouter(g *gin.RouterGroup) {
	v := g.Group("/vault")
	v.Use(a.checkLogin)

	v.GET("/note", a.getNote)
	v.POST("/note", a.setNote)
}

func (a *VaultController) getNote(c *gin.Context) {
	account := session.GetLoginAccount(c)
	note, err := a.vaultService.GetNote(account.Id)
	if err != nil {
		jsonMsg(c, "get note", err)
		return
	}
	jsonObj(c, gin.H{"note": note}, nil)
}

func (a *VaultController) setNote(c *gin.Context) {
	var form NoteForm
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, "invalid form data", err)
		return
	}

	account := session.GetLoginAccount(c)
	if err := a.vaultService.SetNote(account.Id, form.Note); err != nil {
		jsonMsg(c, "save note", err)
		return
	}
	jsonMsg(c, "note updated", nil)
}
