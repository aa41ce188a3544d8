// Package validation provides custom validators for the application
package validation

import (
	"suraksha/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Initialize registers all custom validators
func Initialize() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("language", validateLanguage)
		if err != nil {
			panic(err)
		}
	}
}

// validateLanguage checks if a string is one of the supported alert languages
func validateLanguage(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, lang := range models.SupportedLanguages {
		if lang == value {
			return true
		}
	}
	return false
}
