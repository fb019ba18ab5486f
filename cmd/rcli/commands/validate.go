package commands

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"rcli/internal/source"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// "-" is standard input; anything else must be an existing file.
	_ = v.RegisterValidation("file_or_stdin", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == source.Stdin {
			return true
		}
		fi, err := os.Stat(s)
		return err == nil && !fi.IsDir()
	})
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("flag"); name != "" {
			return "--" + name
		}
		return f.Name
	})
	return v
}

// check validates opts and reports the first failure in flag terms.
func check(opts any) error {
	err := validate.Struct(opts)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	name := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "file_or_stdin":
		return fmt.Sprintf("%s: %q is not a file (use - for stdin)", name, fe.Value())
	case "file":
		return fmt.Sprintf("%s: %q is not a file", name, fe.Value())
	case "dir":
		return fmt.Sprintf("%s: %q is not a directory", name, fe.Value())
	case "min", "max", "len":
		return fmt.Sprintf("%s: %v violates %s=%s", name, fe.Value(), fe.Tag(), fe.Param())
	}
	return fmt.Sprintf("%s: failed %s", name, fe.Tag())
}
