// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"siteledger/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("record_type", validateRecordType)
		_ = v.RegisterValidation("record_category", validateRecordCategory)
		_ = v.RegisterValidation("time_window", validateTimeWindow)
		_ = v.RegisterValidation("project_type", validateProjectType)
		_ = v.RegisterValidation("project_status", validateProjectStatus)
		_ = v.RegisterValidation("project_priority", validateProjectPriority)
	}
}

func validateRecordType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case string(models.RecordTypeIncome), string(models.RecordTypeExpense):
		return true
	}
	return false
}

func validateRecordCategory(fl validator.FieldLevel) bool {
	return models.ValidCategory(fl.Field().String())
}

func validateTimeWindow(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "all", "today", "this_week":
		return true
	}
	return false
}

func validateProjectType(fl validator.FieldLevel) bool {
	switch models.ProjectType(fl.Field().String()) {
	case models.ProjectTypeResidential, models.ProjectTypeCommercial,
		models.ProjectTypeIndustrial, models.ProjectTypeInfrastructure:
		return true
	}
	return false
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	switch models.ProjectStatus(fl.Field().String()) {
	case models.ProjectStatusPlanning, models.ProjectStatusInProgress,
		models.ProjectStatusOnHold, models.ProjectStatusCompleted:
		return true
	}
	return false
}

func validateProjectPriority(fl validator.FieldLevel) bool {
	switch models.ProjectPriority(fl.Field().String()) {
	case models.PriorityLow, models.PriorityMedium,
		models.PriorityHigh, models.PriorityCritical:
		return true
	}
	return false
}
