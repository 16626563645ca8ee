// Package document wraps a parsed gateway XML tree and implements the
// dynamic field lookup shared by notifications, responses, and
// merchant-calculation callbacks.
package document

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"

	"github.com/merchantkit/gcheckout/types"
)

// FieldError reports a logical field name that matched no element in
// the document. Missing fields are errors, never empty values.
type FieldError struct {
	Name string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("no such field: %s", e.Name)
}

// Document is a read-only parsed XML tree.
type Document struct {
	doc *etree.Document
}

// Parse reads a gateway XML body into a Document.
func Parse(raw []byte) (*Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(raw); err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("parse xml: missing root element")
	}
	return &Document{doc: doc}, nil
}

// Root exposes the underlying root element for callers that need to
// search the tree themselves.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// FindElement returns the first element with the given tag in
// depth-first pre-order, or nil.
func (d *Document) FindElement(tag string) *etree.Element {
	return at(d.doc.Root(), tag)
}

// Field translates a logical name ("google_order_number") to the
// schema's hyphen convention and returns the text of the first matching
// element in document order. A tag that occurs under several parents
// (the billing and shipping "email", for instance) returns whichever
// comes first; use FieldUnder for a scoped lookup.
func (d *Document) Field(name string) (string, error) {
	el := at(d.doc.Root(), tagFor(name))
	if el == nil {
		return "", &FieldError{Name: name}
	}
	return el.Text(), nil
}

// MoneyField reads an amount element together with its currency
// attribute.
func (d *Document) MoneyField(name string) (types.Money, error) {
	el := at(d.doc.Root(), tagFor(name))
	if el == nil {
		return types.Money{}, &FieldError{Name: name}
	}
	return moneyFrom(el, name)
}

// BoolField reads a "true"/"false" element.
func (d *Document) BoolField(name string) (bool, error) {
	raw, err := d.Field(name)
	if err != nil {
		return false, err
	}
	switch strings.TrimSpace(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, fmt.Errorf("field %s: not a boolean: %q", name, raw)
}

// FieldUnder scopes the lookup: it finds the first parent element
// anywhere in the tree, then resolves each path step within the
// previous match's subtree. This is how address accessors avoid the
// billing/shipping ambiguity of the unscoped Field.
func (d *Document) FieldUnder(parent string, path ...string) (string, error) {
	el := at(d.doc.Root(), tagFor(parent))
	if el == nil {
		return "", &FieldError{Name: parent}
	}
	for _, name := range path {
		el = atBelow(el, tagFor(name))
		if el == nil {
			return "", &FieldError{Name: parent + "/" + strings.Join(path, "/")}
		}
	}
	return el.Text(), nil
}

// MoneyFieldUnder is the scoped counterpart of MoneyField.
func (d *Document) MoneyFieldUnder(parent string, path ...string) (types.Money, error) {
	el := at(d.doc.Root(), tagFor(parent))
	if el == nil {
		return types.Money{}, &FieldError{Name: parent}
	}
	for _, name := range path {
		el = atBelow(el, tagFor(name))
		if el == nil {
			return types.Money{}, &FieldError{Name: parent + "/" + strings.Join(path, "/")}
		}
	}
	return moneyFrom(el, parent+"/"+strings.Join(path, "/"))
}

func tagFor(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// at searches el and its subtree for the first element with the tag,
// depth-first pre-order.
func at(el *etree.Element, tag string) *etree.Element {
	if el.Tag == tag {
		return el
	}
	for _, child := range el.ChildElements() {
		if found := at(child, tag); found != nil {
			return found
		}
	}
	return nil
}

// atBelow is at restricted to strict descendants.
func atBelow(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if found := at(child, tag); found != nil {
			return found
		}
	}
	return nil
}

func moneyFrom(el *etree.Element, name string) (types.Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(el.Text()))
	if err != nil {
		return types.Money{}, fmt.Errorf("field %s: %w", name, err)
	}
	return types.NewMoney(amount, el.SelectAttrValue("currency", "")), nil
}
