// Package controller provides the HTTP request handlers of gamevault. The
// handlers are thin: form binding and session checks happen here, everything
// else is delegated to the services.
package controller

import (
	"net/http"

	"gamevault/web/session"

	"github.com/gin-gonic/gin"
)

// BaseController provides common functionality for all controllers, including
// the authentication guard.
type BaseController struct{}

// checkLogin verifies that the request carries a valid session and aborts with
// a redirect (or 401 for AJAX) otherwise.
func (a *BaseController) checkLogin(c *gin.Context) {
	if !session.IsLogin(c) {
		if isAjax(c) {
			pureJsonMsg(c, http.StatusUnauthorized, false, "login required")
		} else {
			c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
		}
		c.Abort()
	} else {
		c.Next()
	}
}
