package constants

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"github.com/pumpsui/pumpsui_service/pkg/sui"
)

var validate = validator.New()

// ValueError reports a single constant whose value does not match its kind
type ValueError struct {
	Key  string
	Kind Kind
	Err  error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%s (%s): %v", e.Key, e.Kind, e.Err)
}

func (e *ValueError) Unwrap() error {
	return e.Err
}

// Is makes every ValueError match ErrInvalidValue
func (e *ValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// Validate checks every entry against its kind and reports all violations
// at once. A nil result means the set is well formed.
func Validate(s *Set) error {
	var result *multierror.Error
	for _, e := range s.entries {
		if err := validateEntry(e); err != nil {
			result = multierror.Append(result, &ValueError{Key: e.Key, Kind: e.Kind, Err: err})
		}
	}
	return result.ErrorOrNil()
}

func validateEntry(e Entry) error {
	switch e.Kind {
	case KindObjectID:
		if err := sui.ValidateObjectID(e.Value); err != nil {
			return err
		}
		if e.Value != strings.ToLower(e.Value) {
			return fmt.Errorf("%w: %q is not lowercase", sui.ErrInvalidObjectID, e.Value)
		}
		return nil
	case KindURL:
		if err := validate.Var(e.Value, "required,http_url"); err != nil {
			return fmt.Errorf("%q is not an absolute http(s) url", e.Value)
		}
		return nil
	default:
		return fmt.Errorf("unknown kind %q", e.Kind)
	}
}

// InvalidKeys extracts the offending keys from an error returned by Validate
func InvalidKeys(err error) []string {
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		var verr *ValueError
		if errors.As(err, &verr) {
			return []string{verr.Key}
		}
		return nil
	}
	keys := make([]string, 0, len(merr.Errors))
	for _, e := range merr.Errors {
		var verr *ValueError
		if errors.As(e, &verr) {
			keys = append(keys, verr.Key)
		}
	}
	return keys
}
