package httpapi

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"educatord/pkg/types"
)

// validate is configured to report field names from json tags so validation
// errors reference the wire-level field.
var validate = func() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}()

// validateGenerateRequest normalizes and validates the request in place.
// The prompt and context are trimmed; an omitted content type defaults to
// explanation while an unknown one is rejected.
func validateGenerateRequest(req *types.GenerateRequest) error {
	req.Prompt = strings.TrimSpace(req.Prompt)
	req.Context = strings.TrimSpace(req.Context)
	if req.ContentType == "" {
		req.ContentType = types.ContentExplanation
	}
	if !req.ContentType.Valid() {
		return fmt.Errorf("content_type: unknown value %q", req.ContentType)
	}
	if req.Prompt == "" {
		return errors.New("prompt: must not be empty")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			parts := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				parts = append(parts, fieldDetail(fe))
			}
			return errors.New(strings.Join(parts, "; "))
		}
		return err
	}
	return nil
}

// fieldDetail renders one validation failure with field-level detail.
func fieldDetail(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + ": is required"
	case "min":
		return fmt.Sprintf("%s: must be at least %s characters", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s: must be at most %s characters", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s: must be >= %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s: must be <= %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag())
	}
}
