package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserKey(t *testing.T) {
	tests := []struct {
		name  string
		param string
		want  UserKey
	}{
		{"numeric id", "42", UserKey{ID: 42}},
		{"large numeric id", "999999", UserKey{ID: 999999}},
		{"plain email", "a@b.com", UserKey{Email: "a@b.com"}},
		{"digit-prefixed email stays an email", "123abc@x.test", UserKey{Email: "123abc@x.test"}},
		{"decimal is not an id", "12.5", UserKey{Email: "12.5"}},
		{"negative number is not an id", "-1", UserKey{Email: "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseUserKey(tt.param)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Email == "", got.ByID())
		})
	}
}
