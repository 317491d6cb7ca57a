package models

import "errors"

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	ErrBudgetMonthNotUnique         = errors.New("you already have a budget for this month")
	ErrCategoryNameNotUnique        = errors.New("the category name must be unique for the budget")
	ErrTransactionAmountNotPositive = errors.New("the transaction amount must be positive")
	ErrMonthlyIncomeNegative        = errors.New("the monthly income must not be negative")
	ErrAllocatedAmountNegative      = errors.New("the allocated amount must not be negative")
)
