package validation

import (
	"strings"

	"hotel-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterBindingRules adds the custom tags used by request DTOs to gin's validator.
func RegisterBindingRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errs.New("gin binding validator is not go-playground/validator")
	}
	if err := v.RegisterValidation("notblank", notBlank); err != nil {
		return errs.Wrap(err, "register notblank rule")
	}
	return nil
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// FieldErrors flattens binding failures into field -> rule pairs for the response detail.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fe.Tag()
	}
	return out
}
