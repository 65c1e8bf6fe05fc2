package api

import (
	"net/http"
	"time"

	"meet-lab/auth"
	"meet-lab/domain"
	"meet-lab/services"

	"github.com/gin-gonic/gin"
)

type authResponse struct {
	Token    string      `json:"token"`
	User     domain.User `json:"user"`
	Redirect *redirect   `json:"redirect,omitempty"`
}

type sessionResponse struct {
	Authenticated   bool         `json:"authenticated"`
	User            *domain.User `json:"user,omitempty"`
	RememberedEmail string       `json:"rememberedEmail,omitempty"`
	Redirect        *redirect    `json:"redirect,omitempty"`
}

type strengthResponse struct {
	Score      int                `json:"score"`
	Level      auth.StrengthLevel `json:"level"`
	Missing    []string           `json:"missing"`
	Percentage int                `json:"percentage"`
	Text       string             `json:"text"`
}

func (h *Handler) Login(c *gin.Context) {
	var form auth.LoginForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	outcome, err := h.auth.SubmitLogin(form)
	if err != nil {
		writeError(c, err)
		return
	}
	h.settle(c, outcome)
}

func (h *Handler) Signup(c *gin.Context) {
	var form auth.SignupForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	outcome, err := h.auth.SubmitSignup(form)
	if err != nil {
		writeError(c, err)
		return
	}
	h.settle(c, outcome)
}

// settle blocks until the simulated submission completes, the client goes
// away or the submit timeout elapses.
func (h *Handler) settle(c *gin.Context, outcome <-chan services.Outcome) {
	timer := time.NewTimer(h.submitTimeout)
	defer timer.Stop()

	select {
	case result, ok := <-outcome:
		if !ok {
			c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "submission cancelled"})
			return
		}
		if result.Err != nil {
			writeError(c, result.Err)
			return
		}
		c.JSON(http.StatusOK, authResponse{
			Token:    result.Session.Token,
			User:     result.Session.User,
			Redirect: toRedirect(result.Navigation),
		})
	case <-timer.C:
		writeTimeout(c, h.submitTimeout)
	case <-c.Request.Context().Done():
		h.log.Debug("Client left before submission settled")
	}
}

func (h *Handler) PasswordStrength(c *gin.Context) {
	strength := auth.CheckPasswordStrength(c.Query("password"))
	c.JSON(http.StatusOK, strengthResponse{
		Score:      strength.Score,
		Level:      strength.Level,
		Missing:    strength.Missing,
		Percentage: strength.Percentage(),
		Text:       strength.Text(),
	})
}

// Session runs the page gate for the view named by the query string.
func (h *Handler) Session(c *gin.Context) {
	view := domain.View(c.DefaultQuery("view", string(domain.ViewIndex)))
	nav, err := h.sessions.CheckAuthStatus(view)
	if err != nil {
		writeError(c, err)
		return
	}
	session, gate, err := h.sessions.RequireAuth()
	if err != nil {
		writeError(c, err)
		return
	}
	email, err := h.sessions.RememberedEmail()
	if err != nil {
		writeError(c, err)
		return
	}

	response := sessionResponse{RememberedEmail: email}
	if session != nil {
		response.Authenticated = true
		response.User = &session.User
	} else if view != domain.ViewLogin && view != domain.ViewSignup {
		nav = gate
	}
	response.Redirect = toRedirect(nav)
	c.JSON(http.StatusOK, response)
}

func (h *Handler) Logout(c *gin.Context) {
	nav, err := h.sessions.Logout()
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": toRedirect(nav)})
}
