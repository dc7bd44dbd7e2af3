package helpers

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
)

// MaxBodyBytes caps the size of a form submission.
const MaxBodyBytes = 1 << 20

// FormBinder is implemented by request types that can be filled from form values.
type FormBinder interface {
	BindForm(values url.Values)
}

// DecodeForm fills dest from the request body via BindForm. JSON bodies must
// be an object; its scalar members are bound as strings (5551234 becomes
// "5551234"), null and nested values are treated as absent. On failure
// it writes a 400 plaintext error and returns false; otherwise returns true.
// Callers should return immediately when DecodeForm returns false.
func DecodeForm(w http.ResponseWriter, r *http.Request, dest FormBinder) bool {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/json":
		values, err := jsonValues(r)
		if err != nil {
			WriteText(w, http.StatusBadRequest, MsgInvalidBody)
			return false
		}
		dest.BindForm(values)
		return true
	case "multipart/form-data":
		if err := r.ParseMultipartForm(MaxBodyBytes); err != nil {
			WriteText(w, http.StatusBadRequest, MsgInvalidBody)
			return false
		}
	default:
		if err := r.ParseForm(); err != nil {
			WriteText(w, http.StatusBadRequest, MsgInvalidBody)
			return false
		}
	}
	dest.BindForm(r.PostForm)
	return true
}

// jsonValues decodes a JSON object body into form values.
func jsonValues(r *http.Request) (url.Values, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	var body map[string]any
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	values := make(url.Values, len(body))
	for k, v := range body {
		switch v.(type) {
		case string, json.Number, bool:
			values.Set(k, fmt.Sprint(v))
		}
	}
	return values, nil
}
