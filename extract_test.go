package mailsift_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts, validates and normalizes body text addresses", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return "Contact support@Example.COM or sales@company.org.", nil
			},
		}

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(doc)

		// example.com is on the placeholder deny list, so only the
		// second address survives.
		assert.Equal(t, []string{"sales@company.org"}, got)
	})

	t.Run("rejects consecutive-dot candidates", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return "write to a..b@domain.org please", nil
			},
		}

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(doc)

		assert.Empty(t, got)
	})

	t.Run("extracts the address portion of a mailto reference", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			MailRefsFn: func() ([]string, error) {
				return []string{"mailto:TEST@Acme-Widgets.com?subject=Hi"}, nil
			},
		}

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(doc)

		assert.Equal(t, []string{"test@acme-widgets.com"}, got)
	})

	t.Run("caps a flood of distinct addresses at max results", func(t *testing.T) {
		t.Parallel()

		var b strings.Builder
		for i := 0; i < 2000; i++ {
			fmt.Fprintf(&b, "user%04d@corp.dev ", i)
		}
		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) { return b.String(), nil },
		}

		cfg := mailsift.DefaultConfig()
		cfg.MaxResults = 500
		cfg.PerSourceCandidateCap = 5000

		got := mailsift.NewEngine(cfg).Extract(doc)

		require.Len(t, got, 500)
		assert.Equal(t, "user0000@corp.dev", got[0])
		assert.Equal(t, "user0499@corp.dev", got[499])
	})

	t.Run("deduplicates across channels keeping discovery order", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return "first@corp.dev and second@corp.dev", nil
			},
			MailRefsFn: func() ([]string, error) {
				return []string{"mailto:FIRST@corp.dev"}, nil
			},
		}

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(doc)

		assert.Equal(t, []string{"first@corp.dev", "second@corp.dev"}, got)
	})

	t.Run("returns empty result for a nil document", func(t *testing.T) {
		t.Parallel()

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(nil)

		assert.Empty(t, got)
	})

	t.Run("every returned entry passes validation", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return "a@b.co junk@@ x@y a..b@c.org real.one@corp.dev", nil
			},
			StructuredDataFn: func() ([]string, error) {
				return []string{`{"contact":"json.person@corp.dev"}`}, nil
			},
		}

		got := mailsift.NewEngine(mailsift.DefaultConfig()).Extract(doc)

		require.NotEmpty(t, got)
		for _, email := range got {
			assert.True(t, mailsift.IsValid(email), email)
		}
	})

	t.Run("normalizes invalid configuration instead of failing", func(t *testing.T) {
		t.Parallel()

		engine := mailsift.NewEngine(mailsift.Config{MaxResults: -10, PerSourceCandidateCap: -1})

		cfg := engine.Config()
		assert.Equal(t, mailsift.DefaultMaxResults, cfg.MaxResults)
		assert.Equal(t, mailsift.DefaultCandidateCap, cfg.PerSourceCandidateCap)
	})

	t.Run("is safe for concurrent extractions", func(t *testing.T) {
		t.Parallel()

		engine := mailsift.NewEngine(mailsift.DefaultConfig())
		done := make(chan []string, 8)
		for i := 0; i < 8; i++ {
			i := i
			go func() {
				doc := &mock.DocumentView{
					VisibleTextFn: func() (string, error) {
						return fmt.Sprintf("worker%d@corp.dev", i), nil
					},
				}
				done <- engine.Extract(doc)
			}()
		}
		for i := 0; i < 8; i++ {
			got := <-done
			require.Len(t, got, 1)
			assert.True(t, strings.HasPrefix(got[0], "worker"))
		}
	})
}
