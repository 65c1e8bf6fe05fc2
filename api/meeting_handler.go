package api

import (
	"net/http"

	"meet-lab/domain"

	"github.com/gin-gonic/gin"
)

type startMeetingRequest struct {
	Title string `json:"title"`
}

type joinMeetingRequest struct {
	Name string             `json:"name"`
	Code domain.MeetingCode `json:"code"`
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

type shortcutRequest struct {
	Key   string `json:"key"`
	Ctrl  bool   `json:"ctrl"`
	Meta  bool   `json:"meta"`
	Shift bool   `json:"shift"`
	// Typing is set while a text input has focus.
	Typing bool `json:"typing"`
}

type attendanceResponse struct {
	domain.Attendance
	Redirect *redirect `json:"redirect,omitempty"`
}

func code(c *gin.Context) domain.MeetingCode {
	return domain.MeetingCode(c.Param("code"))
}

func (h *Handler) StartMeeting(c *gin.Context) {
	var request startMeetingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	attendance, err := h.meetings.Start(request.Title)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, attendanceResponse{
		Attendance: attendance,
		Redirect:   toRedirect(domain.NavigateTo(domain.ViewMeeting)),
	})
}

func (h *Handler) JoinMeeting(c *gin.Context) {
	var request joinMeetingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	attendance, err := h.meetings.Join(request.Name, request.Code)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, attendanceResponse{
		Attendance: attendance,
		Redirect:   toRedirect(domain.NavigateTo(domain.ViewMeeting)),
	})
}

func (h *Handler) EndMeeting(c *gin.Context) {
	if err := h.meetings.End(code(c)); err != nil {
		writeError(c, err)
		return
	}
	h.log.Info("Meeting ended on request", "meeting_code", code(c), "user_id", sessionFrom(c).User.ID)
	c.JSON(http.StatusOK, gin.H{"redirect": toRedirect(domain.NavigateTo(domain.ViewIndex))})
}

func (h *Handler) ShareLink(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"link": h.meetings.ShareLink(code(c))})
}

func (h *Handler) ChatHistory(c *gin.Context) {
	messages, err := h.chat.History(code(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

func (h *Handler) SendMessage(c *gin.Context) {
	var request sendMessageRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	message, err := h.chat.Send(code(c), request.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, message)
}

func (h *Handler) ClearChat(c *gin.Context) {
	if err := h.chat.Clear(code(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) Controls(c *gin.Context) {
	c.JSON(http.StatusOK, h.meetings.Controls(code(c)))
}

func (h *Handler) ApplyControl(c *gin.Context) {
	transition, err := h.meetings.ApplyControl(code(c), domain.Action(c.Param("action")))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, transition)
}

// ApplyShortcut answers 200 with handled=false for keys without a binding
// and while typing, so the page lets the browser handle them.
func (h *Handler) ApplyShortcut(c *gin.Context) {
	var request shortcutRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	result, ok := h.meetings.ApplyShortcut(code(c), domain.KeyPress{
		Key:      request.Key,
		Modifier: request.Ctrl || request.Meta,
		Shift:    request.Shift,
		Typing:   request.Typing,
	})
	if !ok {
		c.JSON(http.StatusOK, gin.H{"handled": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"handled": true, "shortcut": result})
}
