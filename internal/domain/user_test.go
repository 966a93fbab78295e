package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaxAge_NormalizesGarbageToAbsent(t *testing.T) {
	cases := map[string]*int{
		`{"age": 30}`:    ptr(30),
		`{"age": "30"}`:  ptr(30),
		`{"age": " 30"}`: ptr(30),
		`{"age": null}`:  nil,
		`{"age": ""}`:    nil,
		`{"age": "abc"}`: nil,
		`{"age": 0}`:     nil,
		`{"age": -5}`:    nil,
		`{}`:             nil,
	}
	for in, want := range cases {
		var got UserInput
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		if want == nil {
			assert.Nil(t, got.Age.Value, in)
		} else {
			require.NotNil(t, got.Age.Value, in)
			assert.Equal(t, *want, *got.Age.Value, in)
		}
	}
}

func TestUser_AbsentFieldsSerializeAsNull(t *testing.T) {
	b, err := json.Marshal(User{ID: 4, Name: "Ana", Email: "ana@email.com"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":4,"name":"Ana","email":"ana@email.com","phone":null,"age":null}`, string(b))
}

func ptr(n int) *int { return &n }
