// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("income_item_type", validateIncomeItemType)
		_ = v.RegisterValidation("income_status", validateIncomeStatus)
		_ = v.RegisterValidation("date_range", validateDateRange)
		_ = v.RegisterValidation("sort_field", validateSortField)
		_ = v.RegisterValidation("sort_order", validateSortOrder)
	}
}

func validateIncomeItemType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "per_student", "per_parent":
		return true
	}
	return false
}

func validateIncomeStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pending", "paid":
		return true
	}
	return false
}

func validateDateRange(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "today", "week", "month", "year":
		return true
	}
	return false
}

func validateSortField(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "date", "parent", "total", "status", "createdAt":
		return true
	}
	return false
}

func validateSortOrder(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "asc", "desc":
		return true
	}
	return false
}
