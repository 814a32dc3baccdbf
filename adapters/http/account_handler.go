package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	auditUC "github.com/khoahotran/favorite-food/internal/application/usecase/audit"
	"github.com/khoahotran/favorite-food/pkg/apperror"
	"github.com/khoahotran/favorite-food/pkg/logger"
)

type AccountHandler struct {
	listEventsUseCase *auditUC.ListEventsUseCase
	logger            logger.Logger
}

func NewAccountHandler(listEvents *auditUC.ListEventsUseCase, log logger.Logger) *AccountHandler {
	return &AccountHandler{
		listEventsUseCase: listEvents,
		logger:            log,
	}
}

// ListEvents serves GET /api/account/events?limit=N.
func (h *AccountHandler) ListEvents(c *gin.Context) {
	userID, ok := GetUserIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthenticated("userID not found in context", nil))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.NewInvalidInput(apperror.CodeInvalidArgument, "limit must be a number", "limit: "+raw, err))
			return
		}
		limit = n
	}

	output, err := h.listEventsUseCase.Execute(c.Request.Context(), auditUC.ListEventsInput{UserID: userID, Limit: limit})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToAccountEventsResponse(output.Entries))
}
