// Package validation provides boundary-layer input and format validation.
// The projection engine assumes inputs have already passed through here and
// performs no defensive re-validation of its own.
package validation

import (
	"fmt"

	"github.com/iwvelando/buy-vs-lease/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatCSV {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, format)
	}
	return nil
}
