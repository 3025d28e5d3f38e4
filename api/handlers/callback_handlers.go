package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-agent/dto"
	"blog-agent/services"
)

// CallbackHandler godoc
// @Summary      Handle note callback
// @Description  Wraps the submitted notes into a blog post HTML fragment
// @Tags         callback
// @Accept       json
// @Param        body  body  dto.CallbackRequestDTO  true  "Callback payload"
// @Produce      json
// @Success      200  {object}  dto.CallbackResponseDTO
// @Failure      400  {object}  dto.ErrorResponseDTO
// @Router       /callback [post]
func CallbackHandler(svc *services.CallbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponseDTO{Error: err.Error()})
			return
		}

		blogPost := svc.WritePost(c.Request.Context(), notesFromBody(body))
		c.JSON(http.StatusOK, dto.CallbackResponseDTO{BlogPost: blogPost})
	}
}

// notesFromBody reads payload.text from the decoded body.
// Any missing level or wrong shape silently becomes empty notes; shape problems
// are not an error for this endpoint.
func notesFromBody(body map[string]any) string {
	payload, _ := body["payload"].(map[string]any)
	text, _ := payload["text"].(string)
	return text
}
