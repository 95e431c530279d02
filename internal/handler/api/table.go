package api

import (
	"net/http"

	resdto "table-booking/internal/handler/dto/response"
	"table-booking/internal/handler/httperr"
	"table-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TableHandler struct {
	tableQueries queries.TableQueries
}

func NewTableHandler(tableQueries queries.TableQueries) *TableHandler {
	return &TableHandler{
		tableQueries: tableQueries,
	}
}

// @Summary List tables
// @Description List every restaurant table in catalog order
// @Tags tables
// @Produce json
// @Success 200 {array} resdto.TableResponse
// @Router /tables [get]
func (h *TableHandler) List(c *gin.Context) {
	views := h.tableQueries.List(c.Request.Context())

	response, err := resdto.FromTableViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, response)
}
