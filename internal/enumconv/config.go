package enumconvinternal

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/sublee/enumconv/ir"
)

// Config holds the attribute names and the synthesized lifetime the generator
// works with.
type Config struct {
	// FromIgnore is the variant attribute excluding the variant from wrap
	// conversions.
	FromIgnore string `validate:"required,attr"`

	// TryIntoIgnore is the variant attribute excluding the variant from
	// unwrap conversions.
	TryIntoIgnore string `validate:"required,attr"`

	// ReferencesAttr is the declaration attribute holding the ownership
	// configuration of unwrap conversions.
	ReferencesAttr string `validate:"required,attr"`

	// Lifetime is introduced into reference-mode unwrap conversions.
	Lifetime string `validate:"required,lifetime"`

	Logger *slog.Logger `validate:"-"`
}

// DefaultConfig returns the configuration with the conventional attribute
// names.
func DefaultConfig() Config {
	return Config{
		FromIgnore:     "from_ignore",
		TryIntoIgnore:  "try_into_ignore",
		ReferencesAttr: "try_into_references",
		Lifetime:       "'try_into_ref",
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("lifetime", func(fl validator.FieldLevel) bool {
		return ir.IsLifetime(fl.Field().String())
	})
	_ = v.RegisterValidation("attr", func(fl validator.FieldLevel) bool {
		// An attribute name is a lifetime name without the apostrophe.
		return ir.IsLifetime("'" + fl.Field().String())
	})
	return v
}

// Validate checks that every name is set and well-formed.
func (cfg Config) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var errs error
	for _, ve := range verrs {
		var msg string
		switch ve.Tag() {
		case "required":
			msg = "required"
		case "lifetime":
			msg = fmt.Sprintf("%q is not a lifetime", ve.Value())
		case "attr":
			msg = fmt.Sprintf("%q is not an attribute name", ve.Value())
		default:
			msg = fmt.Sprintf("failed %s validation", ve.Tag())
		}
		errs = errors.Join(errs, fmt.Errorf("invalid config: %s: %s", ve.Field(), msg))
	}
	return errs
}

func (cfg Config) logger() *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}
