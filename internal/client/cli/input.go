package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword prints prompt to w and reads a password from the terminal
// without echo. A newline is printed after the read to keep the UI tidy.
func GetPassword(prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+": "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// parseAssignments splits "key=value" arguments. Values may contain '='.
func parseAssignments(args []string) ([][2]string, error) {
	out := make([][2]string, 0, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		out = append(out, [2]string{k, v})
	}
	return out, nil
}

func isSecret(path string) bool {
	return strings.Contains(strings.ToLower(path), "password")
}

// fillForm assigns form fields from key=value args. Without args it asks
// for every field in order; an empty answer keeps the current value.
func fillForm[F any](reader *bufio.Reader, w io.Writer, form *F, fields []forms.Field[F], args []string) error {
	if len(args) > 0 {
		pairs, err := parseAssignments(args)
		if err != nil {
			return err
		}
		for _, kv := range pairs {
			if err := forms.Assign(form, fields, kv[0], kv[1]); err != nil {
				return err
			}
		}
		return nil
	}

	for _, fd := range fields {
		var (
			value string
			err   error
		)
		if isSecret(fd.Path) {
			var pw []byte
			pw, err = getPassword(fd.Label, w)
			value = string(pw)
		} else {
			prompt := fd.Label
			if cur := fd.Get(form); cur != "" {
				prompt += " [" + cur + "]"
			}
			if len(fd.Options) > 0 {
				prompt += " (" + strings.Join(fd.Options, " | ") + ")"
			}
			value, err = getSimpleText(reader, prompt, w)
		}
		if err != nil {
			return err
		}
		if value == "" {
			continue
		}
		if err := forms.Assign(form, fields, fd.Path, value); err != nil {
			return err
		}
	}
	return nil
}
