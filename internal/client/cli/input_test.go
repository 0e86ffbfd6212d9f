package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/salesdesk/internal/client/forms"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	assert.ErrorIs(t, err, io.EOF)
}

func TestGetPassword_Error(t *testing.T) {
	old := readPassword
	defer func() { readPassword = old }()
	readPassword = func(int) ([]byte, error) {
		return nil, errors.New("boom")
	}
	var out bytes.Buffer
	_, err := GetPassword("Enter password", &out)
	require.Error(t, err)
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"month=2024-06", "comment=a=b", "empty="})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"month", "2024-06"}, {"comment", "a=b"}, {"empty", ""}}, got)

	_, err = parseAssignments([]string{"nokey"})
	assert.Error(t, err)
	_, err = parseAssignments([]string{"=v"})
	assert.Error(t, err)
}

func TestFillForm_FromArgs(t *testing.T) {
	form := forms.NewSignupForm()
	err := fillForm(rdr(""), io.Discard, &form, forms.SignupFields(), []string{"name=Meera", "Email=m@x.io"})
	require.NoError(t, err)
	assert.Equal(t, "Meera", form.Name)
	assert.Equal(t, "m@x.io", form.Email)

	err = fillForm(rdr(""), io.Discard, &form, forms.SignupFields(), []string{"role=admin"})
	assert.ErrorIs(t, err, forms.ErrValidation)
	err = fillForm(rdr(""), io.Discard, &form, forms.SignupFields(), []string{"shoeSize=9"})
	assert.ErrorIs(t, err, forms.ErrUnknownField)
}

func TestFillForm_Interactive(t *testing.T) {
	origST, origGP := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origST, origGP })

	answers := map[string]string{"Name": "Meera", "Email": "m@x.io"}
	var prompts []string
	getSimpleText = func(_ *bufio.Reader, prompt string, _ io.Writer) (string, error) {
		prompts = append(prompts, prompt)
		label, _, _ := strings.Cut(prompt, " [")
		label, _, _ = strings.Cut(label, " (")
		return answers[label], nil
	}
	var secrets []string
	getPassword = func(prompt string, _ io.Writer) ([]byte, error) {
		secrets = append(secrets, prompt)
		return []byte("pw"), nil
	}

	form := forms.NewSignupForm()
	require.NoError(t, fillForm(rdr(""), io.Discard, &form, forms.SignupFields(), nil))

	assert.Equal(t, "Meera", form.Name)
	assert.Equal(t, "pw", form.Password)
	assert.Equal(t, "pw", form.PasswordConfirm)
	assert.Equal(t, "manager", form.Role)
	assert.Equal(t, []string{"Password", "Confirm Password"}, secrets)
	assert.Contains(t, prompts, "Role [manager] (manager | team_lead | sales_executive)")
}
