package domain

import (
	"encoding/json"
	"errors"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and reports the first
// failing field as a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return NewValidationError(fe.Field(), "failed on "+fe.Tag())
	}
	return NewValidationError("payload", err.Error())
}

// NewComment is the payload for posting a comment on a review.
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}

// Validate checks that username and body are present and non-empty.
func (c NewComment) Validate() error {
	return validateStruct(c)
}

// NewReview is the payload for creating a review. ReviewImgURL is optional.
type NewReview struct {
	Owner        string `json:"owner" validate:"required"`
	Title        string `json:"title" validate:"required"`
	ReviewBody   string `json:"review_body" validate:"required"`
	Designer     string `json:"designer" validate:"required"`
	Category     string `json:"category" validate:"required"`
	ReviewImgURL string `json:"review_img_url"`
}

// Validate checks the required review fields.
func (r NewReview) Validate() error {
	return validateStruct(r)
}

// NewCategory is the payload for creating a category.
type NewCategory struct {
	Slug        string `json:"slug" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// Validate checks that slug and description are present and non-empty.
func (c NewCategory) Validate() error {
	return validateStruct(c)
}

// VoteChange carries the raw inc_votes value of a vote request.
type VoteChange struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// Delta returns the vote increment. The value must be present and be an
// integer, given either as a JSON number or a numeric string.
func (v VoteChange) Delta() (int, error) {
	raw := strings.TrimSpace(string(v.IncVotes))
	if raw == "" || raw == "null" {
		return 0, NewValidationError("inc_votes", "is required")
	}

	var n int
	if err := json.Unmarshal(v.IncVotes, &n); err == nil {
		return n, nil
	}

	var s string
	if err := json.Unmarshal(v.IncVotes, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, nil
		}
	}
	return 0, NewValidationError("inc_votes", "must be an integer")
}
