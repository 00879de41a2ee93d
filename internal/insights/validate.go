package insights

import (
	"github.com/go-playground/validator/v10"

	apperrors "rwexcli/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the document against the section schemas before it is
// serialized, so a missing or misnamed field fails the run instead of
// producing a silently incomplete artifact.
func Validate(doc *Document) error {
	if err := validate.Struct(doc); err != nil {
		return apperrors.NewValidationError("insights document failed schema validation", err)
	}
	return nil
}
