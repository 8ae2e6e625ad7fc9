package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUser_UnmarshalJSON_IDKeys(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"underscore id", `{"_id":"u1","name":"Ana","email":"ana@example.com"}`, "u1"},
		{"plain id", `{"id":"u2","name":"Ana","email":"ana@example.com"}`, "u2"},
		{"underscore id wins", `{"_id":"u1","id":"u2","name":"Ana","email":"ana@example.com"}`, "u1"},
		{"no id", `{"name":"Ana","email":"ana@example.com"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var user User
			require.NoError(t, json.Unmarshal([]byte(tt.body), &user))
			require.Equal(t, tt.want, user.ID)
			require.Equal(t, "Ana", user.Name)
		})
	}
}

func TestUser_MarshalUsesUnderscoreID(t *testing.T) {
	data, err := json.Marshal(User{ID: "u1", Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.JSONEq(t, `{"_id":"u1","name":"Ana","email":"ana@example.com"}`, string(data))
}
