package mailsift_test

import (
	"strings"
	"testing"

	"github.com/mailsift/mailsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	t.Parallel()

	t.Run("finds addresses embedded in prose", func(t *testing.T) {
		t.Parallel()

		got := mailsift.Scan("Contact support@Example.COM or sales@company.org.", mailsift.SourceBody, 0)

		require.Len(t, got, 2)
		assert.Equal(t, "support@Example.COM", got[0].Text)
		assert.Equal(t, "sales@company.org", got[1].Text)
		assert.Equal(t, mailsift.SourceBody, got[0].Kind)
	})

	t.Run("preserves original case", func(t *testing.T) {
		t.Parallel()

		got := mailsift.Scan("Write to John.Doe@Corp.Example.io today", mailsift.SourceBody, 0)

		require.Len(t, got, 1)
		assert.Equal(t, "John.Doe@Corp.Example.io", got[0].Text)
	})

	t.Run("trims trailing sentence punctuation from the domain", func(t *testing.T) {
		t.Parallel()

		got := mailsift.Scan("reach me at a@b.com.", mailsift.SourceBody, 0)

		require.Len(t, got, 1)
		assert.Equal(t, "a@b.com", got[0].Text)
	})

	t.Run("returns empty result for empty text", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mailsift.Scan("", mailsift.SourceBody, 0))
	})

	t.Run("ignores lone at signs", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mailsift.Scan("a @ b and @@ and @", mailsift.SourceBody, 0))
	})

	t.Run("requires at least two domain labels", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mailsift.Scan("root@localhost", mailsift.SourceBody, 0))
	})

	t.Run("rejects labels with edge hyphens", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mailsift.Scan("x@-bad.com", mailsift.SourceBody, 0))
	})

	t.Run("rejects labels longer than 63 characters", func(t *testing.T) {
		t.Parallel()

		long := strings.Repeat("a", 64)
		assert.Empty(t, mailsift.Scan("x@"+long+".com", mailsift.SourceBody, 0))
	})

	t.Run("stops scanning a source at the candidate cap", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 50; i++ {
			b.WriteString("user")
			b.WriteByte(byte('a' + i%26))
			b.WriteString("@mail.example ")
		}

		got := mailsift.Scan(b.String(), mailsift.SourceBody, 10)

		assert.Len(t, got, 10)
	})

	t.Run("corrects a non-positive cap to the default", func(t *testing.T) {
		t.Parallel()

		got := mailsift.Scan("a@b.co c@d.co", mailsift.SourceBody, -5)

		assert.Len(t, got, 2)
	})

	t.Run("keeps permissive matches for the validator to reject", func(t *testing.T) {
		t.Parallel()

		// Consecutive dots pass the grammar; IsValid is the gate.
		got := mailsift.Scan("a..b@domain.com", mailsift.SourceBody, 0)

		require.Len(t, got, 1)
		assert.Equal(t, "a..b@domain.com", got[0].Text)
	})

	t.Run("handles adjacent addresses separated by non-address bytes", func(t *testing.T) {
		t.Parallel()

		got := mailsift.Scan("a@b.com,c@d.org;e@f.net", mailsift.SourceBody, 0)

		require.Len(t, got, 3)
		assert.Equal(t, "a@b.com", got[0].Text)
		assert.Equal(t, "c@d.org", got[1].Text)
		assert.Equal(t, "e@f.net", got[2].Text)
	})

	t.Run("is linear on pathological input", func(t *testing.T) {
		t.Parallel()

		// A long run of '@' with no local parts must terminate quickly
		// and match nothing.
		assert.Empty(t, mailsift.Scan(strings.Repeat("@", 100_000), mailsift.SourceBody, 0))
	})
}
