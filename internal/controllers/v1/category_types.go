package v1

import (
	"fmt"

	"github.com/flexfin/backend/internal/httputil"
	"github.com/flexfin/backend/internal/models"
	ez_uuid "github.com/flexfin/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	BudgetID        uuid.UUID       `json:"budgetId" example:"52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"` // ID of the budget the category belongs to
	Name            string          `json:"name" example:"Groceries" default:""`                     // Display name, unique per budget
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"450" default:"0"`               // Amount of income assigned to this category
	Color           string          `json:"color" example:"#36a2eb" default:""`                      // Display color
	Icon            string          `json:"icon" example:"cart" default:""`                          // Optional icon tag
	IsCustom        bool            `json:"isCustom" example:"true" default:"false"`                 // True for user-defined categories
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		BudgetID:        editable.BudgetID,
		Name:            editable.Name,
		AllocatedAmount: editable.AllocatedAmount,
		Color:           editable.Color,
		Icon:            editable.Icon,
		IsCustom:        editable.IsCustom,
	}
}

type CategoryLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"` // The category itself
	Budget string `json:"budget" example:"https://example.com/api/v1/budgets/52d967d3-33f4-4b04-9ba7-772e5ab9d0ce"`  // The budget the category belongs to
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategoryResource(c *gin.Context, model models.Category) Category {
	url := httputil.RequestPathV1(c)

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			BudgetID:        model.BudgetID,
			Name:            model.Name,
			AllocatedAmount: model.AllocatedAmount,
			Color:           model.Color,
			Icon:            model.Icon,
			IsCustom:        model.IsCustom,
		},
		Links: CategoryLinks{
			Self:   fmt.Sprintf("%s/categories/%s", url, model.ID),
			Budget: fmt.Sprintf("%s/budgets/%s", url, model.BudgetID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (c *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	c.Data = append(c.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	BudgetID ez_uuid.UUID `form:"budget"`                     // By ID of the budget
	Name     string       `form:"name" filterField:"false"`   // By name
	IsCustom bool         `form:"isCustom"`                   // Only user-defined or only default categories
	Offset   uint         `form:"offset" filterField:"false"` // The offset of the first category returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of categories to return. Defaults to 50.
}

func (f CategoryQueryFilter) model() (models.Category, error) {
	return models.Category{
		BudgetID: f.BudgetID.UUID,
		IsCustom: f.IsCustom,
	}, nil
}
