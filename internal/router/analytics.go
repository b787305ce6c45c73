package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-api/pkg/ai"
	"gamestore-api/pkg/global"
	"gamestore-api/pkg/mongo"
	"gamestore-api/pkg/orders"
)

// GetGenreAnalytics returns per-genre catalog aggregates.
func GetGenreAnalytics(c *gin.Context) {
	stats, err := mongo.GetGenreStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to fetch genre analytics", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(stats))
}

// GenerateAICatalogReport returns AI merchandising insights over the catalog.
func GenerateAICatalogReport(c *gin.Context) {
	report, err := ai.GenerateCatalogReport(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to generate catalog report", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}

// GenerateAISalesReport returns AI insights over the local order history.
func GenerateAISalesReport(c *gin.Context) {
	report, err := ai.GenerateSalesReport(c.Request.Context(), orders.Use().Orders())
	if err != nil {
		c.JSON(http.StatusInternalServerError, global.ErrorResponse("Failed to generate sales report", nil))
		return
	}

	c.JSON(http.StatusOK, global.SuccessResponse(report))
}
