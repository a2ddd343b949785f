package controllers

import (
	"net/http"

	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
)

// TableController handles HTTP requests for table reads.
type TableController struct {
	tableService services.TableService
}

// NewTableController creates a new TableController.
func NewTableController(tableService services.TableService) *TableController {
	return &TableController{tableService: tableService}
}

// ListTables handles GET /api/tables.
func (tc *TableController) ListTables(ctx *gin.Context) {
	tables, svcErr := tc.tableService.ListTables(ctx.Request.Context())
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: tables})
}

// GetTable handles GET /api/tables/:id, embedding the table's active orders.
func (tc *TableController) GetTable(ctx *gin.Context) {
	table, svcErr := tc.tableService.GetTable(ctx.Request.Context(), ctx.Param("id"))
	if svcErr != nil {
		ctx.JSON(svcErr.StatusCode, models.APIResponse{Success: false, Error: svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, models.APIResponse{Success: true, Data: table})
}
