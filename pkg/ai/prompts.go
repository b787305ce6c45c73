package ai

import (
	"encoding/json"
	"fmt"
)

// System prompts for the two AI report types
const (
	CatalogReportSystemPrompt = `You are a merchandising analyst for a video game storefront.
Analyze catalog data and provide insights on:
- Genre coverage, gaps and over-representation
- Pricing spread and outliers per genre
- Rating patterns and catalog quality concerns
- Concrete recommendations for what to stock next
Keep responses to 3-4 paragraphs maximum, in clear business language.`

	SalesReportSystemPrompt = `You are a sales analyst for a video game storefront.
Analyze completed order history and provide insights on:
- Revenue totals and order value distribution
- Best-selling titles and genres
- Purchaser patterns worth acting on
- Specific recommendations to grow sales
Keep responses to 3-4 paragraphs maximum, suitable for the store owner.`
)

func formatCatalogPrompt(catalogData interface{}) string {
	jsonData, _ := json.MarshalIndent(catalogData, "", "  ")
	return fmt.Sprintf(`Analyze the following game catalog data and provide merchandising insights:

%s

Please provide:
1. Genre and pricing highlights
2. Gaps or concerns in the current catalog
3. Specific stocking recommendations
4. Actionable next steps for the store owner`, string(jsonData))
}

func formatOrderHistoryPrompt(orderData interface{}) string {
	jsonData, _ := json.MarshalIndent(orderData, "", "  ")
	return fmt.Sprintf(`Analyze the following completed order history and provide sales insights:

%s

Please provide:
1. Revenue and order value highlights
2. Best-selling titles and genres
3. Notable purchasing patterns
4. Specific recommendations to grow sales`, string(jsonData))
}
