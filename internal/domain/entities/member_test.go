package entities

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatedMember(t *testing.T) {
	member, err := NewValidatedMember(NewMember("alice@example.com", "secret", "alice"))
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", member.GetMember().Email)

	cases := []struct {
		name   string
		member *Member
	}{
		{"empty email", NewMember("", "secret", "alice")},
		{"long email", NewMember(strings.Repeat("a", 101), "secret", "alice")},
		{"empty password", NewMember("alice@example.com", "", "alice")},
		{"empty nickname", NewMember("alice@example.com", "secret", "")},
		{"long nickname", NewMember("alice@example.com", "secret", strings.Repeat("n", 31))},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewValidatedMember(tc.member)
			assert.Error(t, err)
		})
	}
}

func TestNewValidatedFollow(t *testing.T) {
	_, err := NewValidatedFollow(NewFollow(1, 2))
	require.NoError(t, err)

	_, err = NewValidatedFollow(NewFollow(3, 3))
	assert.Error(t, err)

	_, err = NewValidatedFollow(NewFollow(0, 2))
	assert.Error(t, err)
}

func TestNewValidatedPost(t *testing.T) {
	_, err := NewValidatedPost(NewPost(1, "content"))
	require.NoError(t, err)

	_, err = NewValidatedPost(NewPost(1, ""))
	assert.Error(t, err)

	_, err = NewValidatedPost(NewPost(0, "content"))
	assert.Error(t, err)
}
