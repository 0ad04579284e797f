// Package apperror provides utilities to handle and map custom validation errors.
package apperror

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	errRequired      = errors.New("is required")
	errInvalidEmail  = errors.New("must be a valid email address")
	errInvalidURL    = errors.New("must be a valid URL")
	errUnknownRole   = errors.New("must be one of Owner, Admin, IT or Teacher")
	errUnknownBucket = errors.New("must be one of 100, 250, 400, 500 or 1000+")
	errNotYesNo      = errors.New(`must be "yes" or "no"`)
	errPhoneTooShort = errors.New("must be at least 5 characters long")
)

var customErrors = map[string]error{
	"ContactSubmission.Name.required":    errRequired,
	"ContactSubmission.Email.required":   errRequired,
	"ContactSubmission.Email.email":      errInvalidEmail,
	"ContactSubmission.Message.required": errRequired,
	"ContactSubmission.SourceURL.url":    errInvalidURL,

	"AttendanceEnquiry.FullName.required":          errRequired,
	"AttendanceEnquiry.Role.required":              errRequired,
	"AttendanceEnquiry.Role.oneof":                 errUnknownRole,
	"AttendanceEnquiry.SchoolName.required":        errRequired,
	"AttendanceEnquiry.CityProvince.required":      errRequired,
	"AttendanceEnquiry.Email.required":             errRequired,
	"AttendanceEnquiry.Email.email":                errInvalidEmail,
	"AttendanceEnquiry.Phone.required":             errRequired,
	"AttendanceEnquiry.Phone.min":                  errPhoneTooShort,
	"AttendanceEnquiry.EstimatedStudents.required": errRequired,
	"AttendanceEnquiry.EstimatedStudents.oneof":    errUnknownBucket,
	"AttendanceEnquiry.HighSchool.required":        errRequired,
	"AttendanceEnquiry.HighSchool.oneof":           errNotYesNo,
	"AttendanceEnquiry.Message.required":           errRequired,
	"AttendanceEnquiry.SourceURL.url":              errInvalidURL,
}

// CustomValidationError converts validator errors into a standardized field-level format.
// Every violated field is reported, keyed by its JSON name.
func CustomValidationError(err error) []map[string]string {
	errList := make([]map[string]string, 0)

	var validationErr validator.ValidationErrors

	switch {
	case errors.As(err, &validationErr):
		for _, e := range validationErr {
			field := e.StructNamespace()
			key := field + "." + e.Tag()

			errMsg := fmt.Sprintf("%s is invalid", field)
			if v, ok := customErrors[key]; ok {
				errMsg = v.Error()
			}

			errList = append(errList, map[string]string{e.Field(): errMsg})
		}
	}
	return errList
}
