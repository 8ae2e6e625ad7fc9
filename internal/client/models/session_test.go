package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSession_Valid(t *testing.T) {
	user := User{ID: "u1", Name: "Ana", Email: "ana@example.com"}

	tests := []struct {
		name    string
		session *Session
		want    bool
	}{
		{"token and user", &Session{Token: "tok", User: user}, true},
		{"token only", &Session{Token: "tok"}, false},
		{"user only", &Session{User: user}, false},
		{"neither", &Session{}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.session.Valid())
		})
	}
}
