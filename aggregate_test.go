package mailsift_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/mailsift/mailsift"
	"github.com/mailsift/mailsift/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("collects every channel in a fixed order", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) { return "body text", nil },
			MailRefsFn: func() ([]string, error) {
				return []string{"mailto:a@b.com"}, nil
			},
			LabeledFieldsFn: func() ([]mailsift.Field, error) {
				return []mailsift.Field{{Key: "data-email", Value: "c@d.org"}}, nil
			},
			FormValuesFn: func() ([]string, error) {
				return []string{"e@f.net"}, nil
			},
			MetaValuesFn: func() ([]mailsift.Field, error) {
				return []mailsift.Field{{Key: "author", Value: "g@h.io"}}, nil
			},
			StructuredDataFn: func() ([]string, error) {
				return []string{`{"email":"i@j.co"}`}, nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 6)
		assert.Equal(t, mailsift.SourceBody, sources[0].Kind)
		assert.Equal(t, mailsift.SourceLink, sources[1].Kind)
		assert.Equal(t, mailsift.SourceField, sources[2].Kind)
		assert.Equal(t, mailsift.SourceForm, sources[3].Kind)
		assert.Equal(t, mailsift.SourceMeta, sources[4].Kind)
		assert.Equal(t, mailsift.SourceStructured, sources[5].Kind)
	})

	t.Run("strips scheme and query from mail references", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			MailRefsFn: func() ([]string, error) {
				return []string{"mailto:TEST@Example.com?subject=Hi", "MAILTO:b@c.org"}, nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 2)
		assert.Equal(t, "TEST@Example.com", sources[0].Text)
		assert.Equal(t, "b@c.org", sources[1].Text)
	})

	t.Run("skips a failing channel and keeps the others", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return "", errors.New("unreadable segment")
			},
			FormValuesFn: func() ([]string, error) {
				return []string{"x@y.dev"}, nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 1)
		assert.Equal(t, mailsift.SourceForm, sources[0].Kind)
	})

	t.Run("reduces valid structured data to its string values", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			StructuredDataFn: func() ([]string, error) {
				return []string{`{"@type":"Person","email":"mailto-less@corp.dev","nested":{"alt":"x@y.co"}}`}, nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 1)
		assert.Contains(t, sources[0].Text, "mailto-less@corp.dev")
		assert.Contains(t, sources[0].Text, "x@y.co")
	})

	t.Run("falls back to raw text for a malformed structured blob", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			StructuredDataFn: func() ([]string, error) {
				return []string{`{"email": "broken@corp.dev",`}, nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 1)
		assert.Contains(t, sources[0].Text, "broken@corp.dev")
	})

	t.Run("bounds body text length", func(t *testing.T) {
		t.Parallel()

		doc := &mock.DocumentView{
			VisibleTextFn: func() (string, error) {
				return strings.Repeat("x", 300_000), nil
			},
		}

		sources := mailsift.Aggregate(doc)

		require.Len(t, sources, 1)
		assert.Len(t, sources[0].Text, 200_000)
	})

	t.Run("bounds the number of elements per channel", func(t *testing.T) {
		t.Parallel()

		values := make([]string, 500)
		for i := range values {
			values[i] = "v@w.dev"
		}
		doc := &mock.DocumentView{
			FormValuesFn: func() ([]string, error) { return values, nil },
		}

		sources := mailsift.Aggregate(doc)

		assert.Len(t, sources, 200)
	})

	t.Run("skips empty channels entirely", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, mailsift.Aggregate(&mock.DocumentView{}))
	})
}
