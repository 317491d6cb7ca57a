package v1

import (
	"net/http"

	"github.com/flexfin/backend/internal/categorize"
	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	"github.com/flexfin/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterCategorizeRoutes registers the routes for AI categorization with
// the RouterGroup that is passed.
//
// The client is injected so tests can point it at a stub server.
func RegisterCategorizeRoutes(r *gin.RouterGroup, client *categorize.Client) {
	r.OPTIONS("", OptionsCategorize)
	r.POST("", CategorizeInput(client))
}

// CategorizeRequest is a free-text expense to be turned into a transaction
// suggestion.
type CategorizeRequest struct {
	UserID string      `json:"userId" binding:"required" example:"d1f7f5a4-9d25-4a41-9b6d-4b4b2e4b2b4a"` // Subject of the user
	Input  string      `json:"input" binding:"required" example:"12.50 for lunch yesterday"`             // The free-text expense
	Month  types.Month `json:"month" example:"2024-05"`                                                  // The budget month to match categories against. Defaults to the current month.
}

// CategorizeSuggestion is the post-processed categorization answer.
type CategorizeSuggestion struct {
	Amount            decimal.Decimal `json:"amount" example:"12.5"`                // The extracted amount
	Description       string          `json:"description" example:"Lunch"`          // The extracted description
	Date              types.Date      `json:"date" example:"2024-05-14"`            // The resolved calendar day
	SuggestedCategory string          `json:"suggestedCategory" example:"Food"`     // The raw category answer of the service
	MatchedCategory   *Category       `json:"matchedCategory"`                      // The budget category the answer resolved to, nil if none matched
	Confidence        float64         `json:"confidence" example:"0.92"`            // Confidence reported by the service
	IsAutoApplicable  bool            `json:"isAutoApplicable" example:"true"`      // True if the suggestion can be applied without confirmation
}

type CategorizeResponse struct {
	Data  *CategorizeSuggestion `json:"data"`                                                    // The transaction suggestion
	Error *string               `json:"error" example:"the request body must not be empty"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categorization
// @Success		204
// @Router			/v1/categorize [options]
func OptionsCategorize(c *gin.Context) {
	httputil.OptionsPost(c)
}

// CategorizeInput returns the handler that turns free-text expenses into
// transaction suggestions.
//
// @Summary		Categorize an expense
// @Description	Sends a free-text expense to the categorization service and resolves the answer against the user's budget
// @Tags			Categorization
// @Accept			json
// @Produce		json
// @Success		200		{object}	CategorizeResponse
// @Failure		400		{object}	CategorizeResponse
// @Failure		502		{object}	CategorizeResponse
// @Param			input	body		CategorizeRequest	true	"The expense to categorize"
// @Router			/v1/categorize [post]
func CategorizeInput(client *categorize.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var request CategorizeRequest
		err := httputil.BindData(c, &request)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategorizeResponse{Error: &s})
			return
		}

		reference := types.DateOf(timeNow())
		month := request.Month
		if month.IsZero() {
			month = reference.MonthOf()
		}

		budget, err := models.BudgetForMonth(models.DB, request.UserID, month)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), CategorizeResponse{Error: &s})
			return
		}

		// A month without a budget still gets a suggestion, there are
		// just no categories to match against.
		var categories []models.Category
		if budget != nil {
			categories = budget.Categories
		}

		names := make([]string, 0, len(categories))
		for _, category := range categories {
			names = append(names, category.Name)
		}

		result, err := client.Categorize(c.Request.Context(), request.Input, names)
		if err != nil {
			s := err.Error()
			c.JSON(http.StatusBadGateway, CategorizeResponse{Error: &s})
			return
		}

		var matchBudget models.Budget
		if budget != nil {
			matchBudget = *budget
		}
		suggestion := categorize.Process(result, request.Input, matchBudget, reference)

		data := CategorizeSuggestion{
			Amount:            suggestion.Amount,
			Description:       suggestion.Description,
			Date:              suggestion.ResolvedDate,
			SuggestedCategory: suggestion.SuggestedCategory,
			Confidence:        suggestion.Confidence,
			IsAutoApplicable:  suggestion.IsAutoApplicable,
		}

		if suggestion.MatchedCategory != nil {
			matched := newCategoryResource(c, *suggestion.MatchedCategory)
			data.MatchedCategory = &matched
		}

		c.JSON(http.StatusOK, CategorizeResponse{Data: &data})
	}
}
