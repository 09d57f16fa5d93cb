//go:build unit

package user_test

import (
	"strings"
	"testing"

	"hotel-reservation/internal/domain/user"
	"hotel-reservation/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.UserBuilder)
	errIs  error
}

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, "Alice Tan", actual.Name())
		assert.Equal(t, "alice@example.com", actual.Email().Value())
		assert.Equal(t, "+60 12-345 6789", actual.Phone().Value())
	})

	t.Run("contact details are optional", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().Anonymous().BuildDomain()
		require.NoError(t, err)

		assert.True(t, actual.Email().IsEmpty())
		assert.True(t, actual.Phone().IsEmpty())
	})

	t.Run("name is trimmed", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithName("  Bob  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Bob", actual.Name())
	})

	t.Run("name validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.UserBuilder) { b.WithName("") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.UserBuilder) { b.WithName("   ") },
				errIs:  user.ErrEmptyName,
			},
			{
				name:   "maximum length name",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength)) },
			},
			{
				name:   "name too long",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("a", user.MaxNameLength+1)) },
				errIs:  user.ErrNameTooLong,
			},
			{
				name:   "multibyte name counted by runes",
				mutate: func(b *builder.UserBuilder) { b.WithName(strings.Repeat("あ", user.MaxNameLength)) },
			},
		})
	})

	t.Run("email validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "missing at sign",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("alice.example.com") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "missing top level domain",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("alice@example") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "display name form",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("Alice <alice@example.com>") },
				errIs:  user.ErrInvalidEmail,
			},
			{
				name:   "plus addressing",
				mutate: func(b *builder.UserBuilder) { b.WithEmail("alice+hotel@example.co.uk") },
			},
		})
	})

	t.Run("phone validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "free text with extension",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("012-345 ext 6") },
			},
			{
				name:   "words are accepted",
				mutate: func(b *builder.UserBuilder) { b.WithPhone("call front desk") },
			},
			{
				name:   "maximum length",
				mutate: func(b *builder.UserBuilder) { b.WithPhone(strings.Repeat("1", user.MaxPhoneLength)) },
			},
			{
				name:   "too long",
				mutate: func(b *builder.UserBuilder) { b.WithPhone(strings.Repeat("1", user.MaxPhoneLength+1)) },
				errIs:  user.ErrPhoneTooLong,
			},
		})
	})

	t.Run("phone is trimmed", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().WithPhone("  012-345 ext 6  ").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "012-345 ext 6", actual.Phone().Value())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewUserBuilder()
			tc.mutate(b)

			actual, err := b.BuildDomain()
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, actual)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, actual)
		})
	}
}
