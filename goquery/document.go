// Package goquery implements mailsift.DocumentView over parsed HTML
// using github.com/PuerkitoBio/goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mailsift/mailsift"
)

// Compile-time interface verification.
var _ mailsift.DocumentView = (*Document)(nil)

// Document is a read-only view over a single parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse builds a Document from raw HTML. The parser is lenient, so this
// only fails on reader-level problems, which for a string input means
// effectively never; malformed markup yields a best-effort tree.
func Parse(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, mailsift.Errorf(mailsift.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// VisibleText returns the document's readable text with script, style,
// noscript and template contents removed.
func (d *Document) VisibleText() (string, error) {
	body := d.doc.Find("body").Clone()
	if body.Length() == 0 {
		return "", nil
	}
	body.Find("script, style, noscript, template").Remove()
	return body.Text(), nil
}

// MailRefs returns the href values of mailto anchors and image-map areas,
// scheme and query intact.
func (d *Document) MailRefs() ([]string, error) {
	var refs []string
	d.doc.Find(`a[href^="mailto:"], a[href^="MAILTO:"], area[href^="mailto:"]`).Each(func(_ int, sel *goquery.Selection) {
		if href, ok := sel.Attr("href"); ok && href != "" {
			refs = append(refs, href)
		}
	})
	return refs, nil
}

// labeledAttrs are attributes commonly used to tag contact data on
// arbitrary elements.
var labeledAttrs = []string{"data-email", "data-mail", "data-contact"}

// LabeledFields returns data-tagged attribute values plus the text of
// <address> elements.
func (d *Document) LabeledFields() ([]mailsift.Field, error) {
	var fields []mailsift.Field
	for _, attr := range labeledAttrs {
		d.doc.Find("[" + attr + "]").Each(func(_ int, sel *goquery.Selection) {
			if val, ok := sel.Attr(attr); ok && val != "" {
				fields = append(fields, mailsift.Field{Key: attr, Value: val})
			}
		})
	}
	d.doc.Find("address").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			fields = append(fields, mailsift.Field{Key: "address", Value: text})
		}
	})
	return fields, nil
}

// FormValues returns the value attributes of inputs and the content of
// textareas. Only values present in the markup are visible here; a live
// DOM's user-typed state has no equivalent in static HTML.
func (d *Document) FormValues() ([]string, error) {
	var values []string
	d.doc.Find("input[value]").Each(func(_ int, sel *goquery.Selection) {
		if val, ok := sel.Attr("value"); ok && val != "" {
			values = append(values, val)
		}
	})
	d.doc.Find("textarea").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			values = append(values, text)
		}
	})
	return values, nil
}

// MetaValues returns meta tag content values keyed by name or property.
func (d *Document) MetaValues() ([]mailsift.Field, error) {
	var metas []mailsift.Field
	d.doc.Find("meta[content]").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok || content == "" {
			return
		}
		key, ok := sel.Attr("name")
		if !ok {
			key, _ = sel.Attr("property")
		}
		metas = append(metas, mailsift.Field{Key: key, Value: content})
	})
	return metas, nil
}

// StructuredData returns the raw text of JSON-LD and plain JSON script
// blocks.
func (d *Document) StructuredData() ([]string, error) {
	var blobs []string
	d.doc.Find(`script[type="application/ld+json"], script[type="application/json"]`).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			blobs = append(blobs, text)
		}
	})
	return blobs, nil
}
