package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var ErrNotFound = errors.New("not found")

var (
	ErrValidation        = errors.New("validation")
	ErrExpired           = errors.New("payment deadline expired")
	ErrInvalidTransition = errors.New("invalid transition")
)

func humanizeValidationErrors(errs validator.ValidationErrors) string {
	var b strings.Builder
	for _, fe := range errs {
		if fe.Param() != "" {
			fmt.Fprintf(&b, "%s: %s=%s; ", fe.Field(), fe.Tag(), fe.Param())
		} else {
			fmt.Fprintf(&b, "%s: %s; ", fe.Field(), fe.Tag())
		}
	}
	s := b.String()
	if len(s) > 2 {
		s = s[:len(s)-2]
	}
	return s
}

func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return fmt.Errorf("%w: %s", ErrValidation, humanizeValidationErrors(verrs))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
