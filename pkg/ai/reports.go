package ai

import (
	"context"
	"time"

	"gamestore-api/pkg/models"
	"gamestore-api/pkg/mongo"
)

// AIReportResponse represents the structure of AI-generated reports
type AIReportResponse struct {
	Status      string     `json:"status"`
	Data        ReportData `json:"data"`
	GeneratedAt time.Time  `json:"generated_at"`
	AIEnabled   bool       `json:"ai_enabled"`
}

type ReportData struct {
	RawData    interface{} `json:"raw_data"`
	AIInsights string      `json:"ai_insights,omitempty"`
	Summary    string      `json:"summary"`
	Error      string      `json:"error,omitempty"`
}

// GenerateCatalogReport generates AI-powered merchandising insights from the
// genre analytics aggregation.
func GenerateCatalogReport(ctx context.Context) (*AIReportResponse, error) {
	catalogData, err := mongo.GetGenreStats(ctx)
	if err != nil {
		return &AIReportResponse{
			Status:      "error",
			Data:        ReportData{Error: "Failed to fetch catalog data: " + err.Error()},
			GeneratedAt: time.Now(),
			AIEnabled:   IsEnabled(),
		}, err
	}

	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: catalogData,
			Summary: "Catalog data retrieved successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatCatalogPrompt(catalogData)
		aiInsights, err := generateCompletion(ctx, CatalogReportSystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated catalog insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw catalog data (AI insights unavailable)"
	}

	return response, nil
}

// GenerateSalesReport generates AI-powered insights from the local order
// history.
func GenerateSalesReport(ctx context.Context, orders []models.Order) (*AIReportResponse, error) {
	response := &AIReportResponse{
		Status:      "success",
		GeneratedAt: time.Now(),
		AIEnabled:   IsEnabled(),
		Data: ReportData{
			RawData: orders,
			Summary: "Order history retrieved successfully",
		},
	}

	if IsEnabled() {
		userPrompt := formatOrderHistoryPrompt(orders)
		aiInsights, err := generateCompletion(ctx, SalesReportSystemPrompt, userPrompt)
		if err != nil {
			response.Data.Error = "AI analysis failed: " + err.Error()
		} else {
			response.Data.AIInsights = aiInsights
			response.Data.Summary = "AI-generated sales insights and recommendations"
		}
	} else {
		response.Data.Summary = "Raw order history (AI insights unavailable)"
	}

	return response, nil
}
