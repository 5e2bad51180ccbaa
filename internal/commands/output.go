package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/invite/internal/core/styles"
)

// reportInvalid prints field errors one per line and returns a short error
// for the exit status. Other errors are returned unchanged.
func reportInvalid(w io.Writer, err error) error {
	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	for _, fe := range fieldErrs {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", styles.ErrorStyle.Render("✘"), fe.Field, fe.Err)
	}
	return fmt.Errorf("%d invalid field(s)", len(fieldErrs))
}

func success(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintln(w, styles.SuccessStyle.Render(styles.IconCheck+" "+fmt.Sprintf(format, args...)))
}

func header(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, styles.CommandHeaderStyle.Render(title))
	_, _ = fmt.Fprintln(w, styles.DividerStyle.Render(strings.Repeat("─", 40)))
}

// runForm runs f with the app theme. A user abort is reported as ok=false
// with no error.
func runForm(f *huh.Form) (ok bool, err error) {
	if err := f.WithTheme(styles.FormTheme()).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("form: %w", err)
	}
	return true, nil
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
