package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rcampos/vinylstore-backend/internal/handlers/dto"
	"github.com/rcampos/vinylstore-backend/internal/services"
)

// ActivityHandler expõe o log de atividade da aplicação (admin)
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler cria um novo ActivityHandler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// Get retorna o conteúdo do arquivo de log
func (h *ActivityHandler) Get(c *gin.Context) {
	content, err := h.activityService.ReadActivities()
	if err != nil {
		dto.RespondDomainError(c, err)
		return
	}

	c.String(http.StatusOK, content)
}
