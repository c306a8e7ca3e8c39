package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/MKhiriev/webcrm-console/models"
	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

// emailPattern is the address check used by the WebCRM web forms.
var emailPattern = regexp.MustCompile(`^\w+([\.-]?\w+)*@\w+([\.-]?\w+)*(\.\w{2,3})+$`)

const (
	tagLegacyEmail     = "legacyemail"
	tagMobile          = "mobile"
	tagDestinationType = "desttype"
)

// EntityValidator checks references and destinations with the struct tags
// declared on the models.
type EntityValidator struct {
	validate    *validator.Validate
	phoneRegion string
}

// NewEntityValidator returns a Validator for [models.Reference] and
// [models.Destination]. When phoneRegion is set (e.g. "IT") mobile numbers
// must also be valid numbers for that region.
func NewEntityValidator(phoneRegion string) Validator {
	v := &EntityValidator{
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		phoneRegion: strings.ToUpper(strings.TrimSpace(phoneRegion)),
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		if label := fld.Tag.Get("label"); label != "" {
			return label
		}
		return fld.Name
	})

	// registration only fails for empty tags or nil funcs
	_ = v.validate.RegisterValidation(tagLegacyEmail, isLegacyEmail)
	_ = v.validate.RegisterValidation(tagMobile, v.isMobile)
	_ = v.validate.RegisterValidation(tagDestinationType, isDestinationType)

	return v
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Reference, models.Destination:
		return v.validateStruct(ctx, value, fields...)
	case *models.Reference:
		return v.validateStruct(ctx, *value, fields...)
	case *models.Destination:
		return v.validateStruct(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *EntityValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Il campo %s è obbligatorio.", fe.Field())
	case "required_without":
		return "Inserire almeno il nome o il cognome."
	case tagLegacyEmail:
		return fmt.Sprintf("Il campo %s non è corretto.", fe.Field())
	case "number":
		return fmt.Sprintf("Il campo %s può contenere solo numeri.", fe.Field())
	case tagMobile:
		return fmt.Sprintf("Il campo %s non è un numero di cellulare valido.", fe.Field())
	case tagDestinationType:
		return fmt.Sprintf("Il campo %s deve essere Sede Legale o Sede Operativa.", fe.Field())
	default:
		return fmt.Sprintf("Il campo %s non è valido.", fe.Field())
	}
}

func isLegacyEmail(fl validator.FieldLevel) bool {
	return emailPattern.MatchString(fl.Field().String())
}

func isDestinationType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case models.DestinationTypeRegisteredOffice, models.DestinationTypeOperationalSite:
		return true
	default:
		return false
	}
}

func (v *EntityValidator) isMobile(fl validator.FieldLevel) bool {
	if v.phoneRegion == "" {
		return true
	}

	p, err := libphonenumber.Parse(fl.Field().String(), v.phoneRegion)
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(p)
}
