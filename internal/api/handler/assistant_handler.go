package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eadmin-africa/portal-api/internal/core/ports"
)

// AssistantHandler exposes the chatbot and AI-curated news endpoints.
// Both are total: upstream failures degrade to fallback values, never 5xx.
type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

type chatRequest struct {
	Message string `json:"message" validate:"required"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// Chat handles POST /v1/assistant/chat.
//
// @Summary      Ask the virtual assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "User message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/assistant/chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply := h.assistant.Ask(c.Request().Context(), req.Message)
	return c.JSON(http.StatusOK, chatResponse{Reply: reply})
}

// News handles GET /v1/news/:topic.
//
// @Summary      Get AI-curated administrative news for a topic
// @Tags         assistant
// @Produce      json
// @Param        topic  path      string  true  "News topic (e.g. legalisation)"
// @Success      200    {object}  ports.NewsResult
// @Router       /v1/news/{topic} [get]
func (h *AssistantHandler) News(c echo.Context) error {
	result := h.assistant.CuratedNews(c.Request().Context(), c.Param("topic"))
	return c.JSON(http.StatusOK, result)
}
