package nostr

import (
	"fmt"

	"github.com/mailru/easyjson"
	"github.com/mailru/easyjson/jlexer"
	"github.com/mailru/easyjson/jwriter"
)

var (
	_ easyjson.Marshaler   = (*KindInfo)(nil)
	_ easyjson.Unmarshaler = (*KindInfo)(nil)
)

// KindInfo is a flat description of a kind, meant for display.
type KindInfo struct {
	Code   Kind
	Name   string
	Title  string
	Range  Range
	Custom bool
}

func Describe(k Kind) KindInfo {
	v := k.Variant()
	_, custom := v.(CustomVariant)
	return KindInfo{
		Code:   k,
		Name:   v.String(),
		Title:  v.Title(),
		Range:  k.Range(),
		Custom: custom,
	}
}

func (info KindInfo) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	info.MarshalEasyJSON(&w)
	return w.BuildBytes()
}

func (info KindInfo) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"kind":`)
	w.Uint16(uint16(info.Code))
	w.RawString(`,"name":`)
	w.String(info.Name)
	w.RawString(`,"title":`)
	w.String(info.Title)
	w.RawString(`,"range":`)
	w.String(info.Range.String())
	w.RawString(`,"custom":`)
	w.Bool(info.Custom)
	w.RawByte('}')
}

func (info *KindInfo) UnmarshalJSON(data []byte) error {
	r := jlexer.Lexer{Data: data}
	info.UnmarshalEasyJSON(&r)
	return r.Error()
}

// UnmarshalEasyJSON only trusts the "kind" field, everything else is derived
// from it again so a stale or hand-edited description can't disagree with the
// registry.
func (info *KindInfo) UnmarshalEasyJSON(r *jlexer.Lexer) {
	if r.IsNull() {
		r.Skip()
		return
	}

	var (
		kind Kind
		seen bool
	)
	r.Delim('{')
	for !r.IsDelim('}') {
		key := r.UnsafeFieldName(false)
		r.WantColon()
		if r.IsNull() {
			r.Skip()
			r.WantComma()
			continue
		}
		switch key {
		case "kind":
			kind = Kind(r.Uint16())
			seen = true
		default:
			r.SkipRecursive()
		}
		r.WantComma()
	}
	r.Delim('}')
	r.Consumed()

	if !r.Ok() {
		return
	}
	if !seen {
		r.AddError(fmt.Errorf("kind info is missing the 'kind' field"))
		return
	}
	*info = Describe(kind)
}
