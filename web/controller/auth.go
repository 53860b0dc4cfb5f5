package controller

import (
	"errors"
	"net/http"

	"gamevault/config"
	"gamevault/database/model"
	"gamevault/logger"
	"gamevault/web/service"
	"gamevault/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm represents the login and registration request structure.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// AuthController handles registration, login and logout.
type AuthController struct {
	BaseController

	accountService *service.AccountService
}

func NewAuthController(g *gin.RouterGroup, accountService *service.AccountService) *AuthController {
	a := &AuthController{accountService: accountService}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/register", a.register)
	g.POST("/login", a.login)
	g.GET("/logout", a.checkLogin, a.logout)
}

// register creates a new account and immediately establishes a session for it.
func (a *AuthController) register(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if err := service.ValidateCredentials(form.Username, form.Password); err != nil {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	}

	account, err := a.accountService.Register(form.Username, form.Password)
	if errors.Is(err, service.ErrDuplicateUsername) {
		pureJsonMsg(c, http.StatusOK, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "register", err)
		return
	}

	logger.Infof("%s registered, IP: %s", account.Username, getRemoteIp(c))

	if err := a.startSession(c, account); err != nil {
		jsonMsg(c, "register", err)
		return
	}
	jsonMsg(c, "registration successful", nil)
}

// login verifies credentials and establishes a session. The failure message is
// the same whether the username is unknown or the password is wrong.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm

	if err := c.ShouldBind(&form); err != nil {
		pureJsonMsg(c, http.StatusOK, false, "invalid form data")
		return
	}
	if form.Username == "" {
		pureJsonMsg(c, http.StatusOK, false, "username is empty")
		return
	}
	if form.Password == "" {
		pureJsonMsg(c, http.StatusOK, false, "password is empty")
		return
	}

	account, err := a.accountService.Check(form.Username, form.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		logger.Warningf("failed login attempt for %q, IP: %s", form.Username, getRemoteIp(c))
		pureJsonMsg(c, http.StatusOK, false, service.ErrInvalidCredentials.Error())
		return
	} else if err != nil {
		jsonMsg(c, "login", err)
		return
	}

	logger.Infof("%s logged in successfully, IP: %s", account.Username, getRemoteIp(c))

	if err := a.startSession(c, account); err != nil {
		jsonMsg(c, "login", err)
		return
	}
	jsonMsg(c, "login successful", nil)
}

// logout clears the session and returns to the anonymous state.
func (a *AuthController) logout(c *gin.Context) {
	if account := session.GetLoginAccount(c); account != nil {
		logger.Infof("%s logged out", account.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("unable to clear session:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, c.GetString("base_path"))
}

func (a *AuthController) startSession(c *gin.Context, account *model.Account) error {
	if err := session.SetMaxAge(c, config.GetSessionMaxAge()*60); err != nil {
		return err
	}
	return session.SetLoginAccount(c, account)
}
