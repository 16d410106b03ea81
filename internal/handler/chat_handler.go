package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendlens/internal/service"
)

// ChatHandler serves the natural-language query endpoints.
type ChatHandler struct {
	chatService service.ChatService
}

func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

type chatRequest struct {
	Question string `json:"question"`
}

type sqlRequest struct {
	Query string `json:"query"`
}

// Ask handles POST /chat.
func (h *ChatHandler) Ask(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	answer, err := h.chatService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, answer)
}

// RunSQL handles POST /sql.
func (h *ChatHandler) RunSQL(c *gin.Context) {
	var req sqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	result, err := h.chatService.RunSQL(c.Request.Context(), req.Query)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}
