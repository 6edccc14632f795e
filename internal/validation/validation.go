package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance used for struct tag checks on
// request payloads. Custom rules live alongside as plain functions.
var validate = validator.New(validator.WithRequiredStructEnabled())

func init() {
	// cnp checks a normalized Romanian personal numeric code.
	_ = validate.RegisterValidation("cnp", func(fl validator.FieldLevel) bool {
		return IsValidCNP(fl.Field().String())
	})
}

// Struct runs the tag-based checks of validator/v10 on a request struct.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

var nonDigits = regexp.MustCompile(`\D`)

// StripNonDigits normalizes a numeric identifier typed by an operator,
// dropping spaces, dots and any other separators.
func StripNonDigits(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// IsValidCNP reports whether the value is exactly 13 digits after
// normalization.
func IsValidCNP(cnp string) bool {
	return len(StripNonDigits(cnp)) == 13
}

// Result is the outcome of an ordered validation pass. Only the first
// failing rule is reported, matching how the intake form guides the
// operator field by field.
type Result struct {
	OK         bool
	Field      string
	FirstError string
}

func ok() Result { return Result{OK: true} }

func fail(field, msg string) Result {
	return Result{Field: field, FirstError: msg}
}

// ClientIntake is the raw intake form content before normalization.
type ClientIntake struct {
	FullName       string
	CNP            string
	IDCardNumber   string
	PassportNumber string
	DriverLicense  string
	Phone          string
	Email          string
}

// CheckClientIntake applies the intake rules in their fixed order.
// A client must present either the domestic identity pair (CNP plus ID
// card) or a passport number. The CNP, when present, must normalize to
// exactly 13 digits.
func CheckClientIntake(in ClientIntake) Result {
	if strings.TrimSpace(in.FullName) == "" {
		return fail("full_name", "numele complet este obligatoriu")
	}

	cnp := strings.TrimSpace(in.CNP)
	idCard := strings.TrimSpace(in.IDCardNumber)
	passport := strings.TrimSpace(in.PassportNumber)

	hasDomestic := cnp != "" && idCard != ""
	if !hasDomestic && passport == "" {
		return fail("identity", "completați CNP și seria CI, sau numărul de pașaport")
	}
	if cnp != "" && !IsValidCNP(cnp) {
		return fail("cnp", "CNP-ul trebuie să conțină exact 13 cifre")
	}

	if strings.TrimSpace(in.DriverLicense) == "" {
		return fail("driver_license", "permisul de conducere este obligatoriu")
	}
	if strings.TrimSpace(in.Phone) == "" {
		return fail("phone", "numărul de telefon este obligatoriu")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return fail("email", "adresa de email este obligatorie")
	}
	if err := validate.Var(email, "email"); err != nil {
		return fail("email", "adresa de email este invalidă")
	}
	return ok()
}
