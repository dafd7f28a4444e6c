// Package mock provides function-field mock implementations of the
// mailsift capability interfaces for use in tests.
package mock

import "github.com/mailsift/mailsift"

var _ mailsift.DocumentView = (*DocumentView)(nil)

// DocumentView is a mock implementation of mailsift.DocumentView.
// Unset accessor funcs behave as empty channels rather than panicking,
// so tests only wire the channels they care about.
type DocumentView struct {
	VisibleTextFn    func() (string, error)
	MailRefsFn       func() ([]string, error)
	LabeledFieldsFn  func() ([]mailsift.Field, error)
	FormValuesFn     func() ([]string, error)
	MetaValuesFn     func() ([]mailsift.Field, error)
	StructuredDataFn func() ([]string, error)
}

func (d *DocumentView) VisibleText() (string, error) {
	if d.VisibleTextFn == nil {
		return "", nil
	}
	return d.VisibleTextFn()
}

func (d *DocumentView) MailRefs() ([]string, error) {
	if d.MailRefsFn == nil {
		return nil, nil
	}
	return d.MailRefsFn()
}

func (d *DocumentView) LabeledFields() ([]mailsift.Field, error) {
	if d.LabeledFieldsFn == nil {
		return nil, nil
	}
	return d.LabeledFieldsFn()
}

func (d *DocumentView) FormValues() ([]string, error) {
	if d.FormValuesFn == nil {
		return nil, nil
	}
	return d.FormValuesFn()
}

func (d *DocumentView) MetaValues() ([]mailsift.Field, error) {
	if d.MetaValuesFn == nil {
		return nil, nil
	}
	return d.MetaValuesFn()
}

func (d *DocumentView) StructuredData() ([]string, error) {
	if d.StructuredDataFn == nil {
		return nil, nil
	}
	return d.StructuredDataFn()
}
