package probe

import (
	"github.com/mailru/easyjson/jwriter"
)

// MarshalEasyJSON writes r as a flat JSON object. Format and size fields
// are omitted for failed files.
func (r Result) MarshalEasyJSON(w *jwriter.Writer) {
	w.RawString(`{"path":`)
	w.String(r.Path)
	w.RawString(`,"bytes":`)
	w.Int64(r.Bytes)
	if r.Err != nil {
		w.RawString(`,"error":`)
		w.String(r.Err.Error())
	} else {
		w.RawString(`,"format":`)
		w.String(r.Image.Format.String())
		w.RawString(`,"mime":`)
		w.String(r.Image.Format.MIMEType())
		w.RawString(`,"width":`)
		w.Uint32(r.Image.Width)
		w.RawString(`,"height":`)
		w.Uint32(r.Image.Height)
	}
	w.RawByte('}')
}

// MarshalJSON supports json.Marshaler interface.
func (r Result) MarshalJSON() ([]byte, error) {
	w := jwriter.Writer{}
	r.MarshalEasyJSON(&w)
	return w.Buffer.BuildBytes(), w.Error
}
