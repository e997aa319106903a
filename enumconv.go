// Package enumconv generates conversions between a tagged union and the types
// held by its variants.
//
// Given the structured description of an enum, Enumconv works out which
// conversions can be derived, and hands them to an emitter as [ir.Conversion]
// records. There are two independent families:
//
//   - [EnumFrom] wraps a payload value into the union by selecting the variant
//     holding that type. It never fails.
//   - [EnumTryInto] unwraps the union back into a payload value. It succeeds
//     only when the union holds the matching variant.
//
// For example, this enum:
//
//	enum NumberOrString {
//		Num(f32),
//		Str(String),
//	}
//
// derives "f32 -> NumberOrString" selecting Num and "String -> NumberOrString"
// selecting Str, and the reverse fallible conversions.
//
// # Eligible variants
//
// Only variants holding exactly one unnamed field take part. Unit variants,
// tuple variants with several fields, and variants with named fields are
// skipped silently. A variant is excluded from a family by marking it with the
// family's ignore attribute:
//
//	enum Message {
//		Text(String),
//		#[from_ignore]
//		Raw(Vec<u8>), // only unwrapped, never wrapped
//	}
//
// # Ambiguous payload types
//
// If two or more eligible variants hold the same payload type, no conversion
// is derived for that type at all, since it would be unclear which variant to
// pick. This is not an error and no diagnostic is reported:
//
//	enum X {
//		A(i32),    // i32 -> X
//		B(String), // none
//		C(String), // none
//	}
//
// Types are compared structurally as written, so "String" and
// "std::string::String" are different types here.
//
// # Ownership modes
//
// Unwrap conversions take the union by value by default. The references
// attribute on the enum requests other modes as a comma-separated list of
// "owned", "ref" (or "&") and "ref mut" (or "&mut"):
//
//	#[try_into_references(&, ref mut, owned)]
//
// Each variant then derives one unwrap conversion per mode. Reference modes
// introduce the lifetime 'try_into_ref on both sides of the conversion. A
// failed owned conversion returns the union value back to the caller; a failed
// reference conversion only reports the mismatch. See
// [github.com/sublee/enumconv/pkg/enumconverrors].
package enumconv

import (
	"log/slog"

	enumconvinternal "github.com/sublee/enumconv/internal/enumconv"
	"github.com/sublee/enumconv/ir"
)

// Option customizes the attribute names and the logger.
type Option func(*enumconvinternal.Config)

// WithLogger sets the logger. The generator reports skipped variants and
// dropped payload types at debug level. If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *enumconvinternal.Config) { cfg.Logger = logger }
}

// WithFromIgnore renames the variant attribute excluding a variant from
// [EnumFrom]. The default is "from_ignore".
func WithFromIgnore(name string) Option {
	return func(cfg *enumconvinternal.Config) { cfg.FromIgnore = name }
}

// WithTryIntoIgnore renames the variant attribute excluding a variant from
// [EnumTryInto]. The default is "try_into_ignore".
func WithTryIntoIgnore(name string) Option {
	return func(cfg *enumconvinternal.Config) { cfg.TryIntoIgnore = name }
}

// WithReferencesAttr renames the enum attribute holding the ownership modes of
// [EnumTryInto]. The default is "try_into_references".
func WithReferencesAttr(name string) Option {
	return func(cfg *enumconvinternal.Config) { cfg.ReferencesAttr = name }
}

// WithLifetime changes the lifetime introduced into reference conversions. The
// default is "'try_into_ref". It must not collide with a lifetime the enum
// declares.
func WithLifetime(lifetime string) Option {
	return func(cfg *enumconvinternal.Config) { cfg.Lifetime = lifetime }
}

func config(opts []Option) enumconvinternal.Config {
	cfg := enumconvinternal.DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// EnumFrom returns the wrap conversions of decl: one per variant holding a
// single unnamed field of a type no other eligible variant holds. It fails if
// decl is not an enum or is malformed.
func EnumFrom(decl *ir.Decl, opts ...Option) ([]ir.Conversion, error) {
	return enumconvinternal.Wrap(decl, config(opts))
}

// EnumTryInto returns the unwrap conversions of decl: for each variant holding
// a single unnamed field of a type no other eligible variant holds, one
// conversion per requested ownership mode. It fails if decl is not an enum, is
// malformed, or has a malformed references attribute.
func EnumTryInto(decl *ir.Decl, opts ...Option) ([]ir.Conversion, error) {
	return enumconvinternal.Unwrap(decl, config(opts))
}
