package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestUnwrap(t *testing.T) {
	resp := &Response{Body: []byte(`{"status":"success","token":"t1","data":{"users":[{"_id":"1","name":"A"},{"_id":"2","name":"B"}]}}`)}

	users, err := Unwrap[[]record](resp, "users")
	require.NoError(t, err)
	assert.Equal(t, []record{{"1", "A"}, {"2", "B"}}, users)

	token, err := TopLevel[string](resp, "token")
	require.NoError(t, err)
	assert.Equal(t, "t1", token)
}

func TestUnwrap_Errors(t *testing.T) {
	cases := map[string]*Response{
		"nil":         nil,
		"not json":    {Body: []byte("<html>")},
		"missing key": {Body: []byte(`{"data":{"user":{}}}`)},
		"wrong shape": {Body: []byte(`{"data":{"users":{"_id":1}}}`)},
	}
	for name, resp := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Unwrap[[]record](resp, "users")
			require.ErrorIs(t, err, ErrEnvelope)
		})
	}

	_, err := TopLevel[string](&Response{Body: []byte(`{"data":{}}`)}, "token")
	require.ErrorIs(t, err, ErrEnvelope)
}
