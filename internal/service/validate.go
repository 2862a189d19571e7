package service

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateStruct runs tag validation and flattens failures into one
// human-readable error for form rendering.
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var problems []string
	for _, err := range err.(validator.ValidationErrors) {
		field := strings.ToLower(err.Field())
		switch err.Tag() {
		case "required":
			problems = append(problems, field+" is required")
		case "email":
			problems = append(problems, field+" must be a valid email")
		case "oneof":
			problems = append(problems, field+" must be one of: "+err.Param())
		case "min":
			problems = append(problems, field+" must be at least "+err.Param())
		case "max":
			problems = append(problems, field+" must be at most "+err.Param())
		default:
			problems = append(problems, field+" is invalid")
		}
	}

	return fmt.Errorf("%s", strings.Join(problems, ", "))
}
