// Package model defines domain models for biomethane certificates.
package model

import "strings"

// Field is one submitted form field. ID and Label travel with the value so the
// document store can reproduce the original submission verbatim.
type Field struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// FieldList is an ordered sequence of fields. Order is semantically significant:
// it is the order the values are serialized in for hashing and must be preserved
// from submission through confirmation.
type FieldList []Field

// Separator joins field values in the canonical serialization.
const Separator = "_"

// Serialize produces the canonical byte string the fingerprint is computed over:
// each value in list order, prefixed by the separator. Only values participate;
// IDs and labels are ignored. Reordering fields changes the digest — there is no
// canonicalization step upstream, so none is applied here.
func (l FieldList) Serialize() []byte {
	var b strings.Builder
	for _, f := range l {
		b.WriteString(Separator)
		b.WriteString(f.Value)
	}
	return []byte(b.String())
}

// ValueByID returns the value of the field with the given id, or "" if absent.
func (l FieldList) ValueByID(id string) string {
	for _, f := range l {
		if f.ID == id {
			return f.Value
		}
	}
	return ""
}
