package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/kitecorp/kitebuild/internal/errors"
)

// printResult writes value to w in the requested output format. The textFn
// callback renders the human-readable form; JSON output marshals value with
// indentation for readability.
func printResult(w io.Writer, format string, value any, textFn func(io.Writer)) error {
	if format == OutputJSON {
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal output")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	textFn(w)
	return nil
}

// printUserError writes a user-friendly error message, with a suggested
// action when one is known for the error.
func printUserError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %s\n", errors.UserMessage(err))
	if action := errors.Actionable(err); action != "" {
		fmt.Fprintf(w, "Hint: %s\n", action)
	}
}
