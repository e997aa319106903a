package ir

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sublee/enumconv/internal/codefmt"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// known accepts enum-like values which know their own valid range.
	_ = v.RegisterValidation("known", func(fl validator.FieldLevel) bool {
		k, ok := fl.Field().Interface().(interface{ IsValid() bool })
		return ok && k.IsValid()
	})

	v.RegisterStructValidation(validateParam, GenericParam{})
	v.RegisterStructValidation(validateFields, Fields{})
	v.RegisterStructValidation(validateField, Field{})
	return v
}

func validateParam(sl validator.StructLevel) {
	p := sl.Current().Interface().(GenericParam)
	switch p.Kind {
	case ParamLifetime:
		if p.Name != "" && !IsLifetime(p.Name) {
			sl.ReportError(p.Name, "Name", "Name", "lifetime", "")
		}
	case ParamType, ParamConst:
		if p.Name != "" && !isIdent(p.Name) {
			sl.ReportError(p.Name, "Name", "Name", "ident", "")
		}
	}
	if p.Kind == ParamConst && p.Type == nil {
		sl.ReportError(p.Type, "Type", "Type", "required", "")
	}
}

func validateFields(sl validator.StructLevel) {
	fs := sl.Current().Interface().(Fields)
	switch fs.Style {
	case StyleUnit:
		if len(fs.List) != 0 {
			sl.ReportError(fs.List, "List", "List", "unit", "")
		}
	case StyleUnnamed:
		for i, f := range fs.List {
			if f.Name != "" {
				name := fmt.Sprintf("List[%d].Name", i)
				sl.ReportError(f.Name, name, name, "unnamed", "")
			}
		}
	case StyleNamed:
		for i, f := range fs.List {
			if f.Name == "" {
				name := fmt.Sprintf("List[%d].Name", i)
				sl.ReportError(f.Name, name, name, "required", "")
			}
		}
	}
}

// validateField checks the type by hand: a unit tuple type is a zero struct
// which the required tag would reject.
func validateField(sl validator.StructLevel) {
	f := sl.Current().Interface().(Field)
	if f.Type == nil {
		sl.ReportError(f.Type, "Type", "Type", "required", "")
	}
}

// Validate checks the declaration for missing names, unknown kinds and
// inconsistent field lists. All problems are reported at once, positioned at
// the declaration.
func (d *Decl) Validate() error {
	if d == nil {
		return errors.New("nil declaration")
	}

	err := validate.Struct(d)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var errs error
	for _, ve := range verrs {
		field := strings.TrimPrefix(ve.Namespace(), "Decl.")
		err := codefmt.Errorf(codefmt.At(d.Pos), "invalid %s %s: %s: %s", d.Kind, d.Name, field, formatValidationError(ve))
		errs = errors.Join(errs, err)
	}
	return errs
}

// formatValidationError converts a validator.FieldError to a human-readable
// message.
func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "known":
		return fmt.Sprintf("unknown value %v", ve.Value())
	case "lifetime":
		return fmt.Sprintf("%q is not a lifetime", ve.Value())
	case "ident":
		return fmt.Sprintf("%q is not an identifier", ve.Value())
	case "unit":
		return "unit variant cannot have fields"
	case "unnamed":
		return fmt.Sprintf("unnamed field cannot have name %q", ve.Value())
	default:
		if ve.Param() != "" {
			return fmt.Sprintf("failed %s=%s validation", ve.Tag(), ve.Param())
		}
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
