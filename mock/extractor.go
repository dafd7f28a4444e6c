package mock

import "github.com/mailsift/mailsift"

var _ mailsift.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mailsift.Extractor.
type Extractor struct {
	ExtractFn func(doc mailsift.DocumentView) []string
}

func (e *Extractor) Extract(doc mailsift.DocumentView) []string {
	return e.ExtractFn(doc)
}
