// Package validation registers the custom binding rules used by the request
// DTOs: canonical 24-hour times and the closed photo-package enumeration.
package validation

import (
	"regexp"

	"photopro/internal/configdoc"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var hhmmPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// Register installs the custom rules on gin's binding engine. Must run once
// before the router handles requests.
func Register() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("photopackage", func(fl validator.FieldLevel) bool {
		return configdoc.PhotoPackage(fl.Field().String()).Valid()
	})
}
