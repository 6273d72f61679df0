package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
)

// Body is a tagged request-body variant. JSON bodies are serialized with
// an application/json content type; multipart bodies stream their parts
// under a multipart boundary and carry no JSON header at all.
type Body interface {
	build() (io.Reader, string, error)
}

type jsonBody struct {
	v any
}

// JSON wraps v for serialization as a JSON request body.
func JSON(v any) Body {
	return jsonBody{v: v}
}

func (b jsonBody) build() (io.Reader, string, error) {
	data, err := json.Marshal(b.v)
	if err != nil {
		return nil, "", fmt.Errorf("encode request body: %w", err)
	}
	return bytes.NewReader(data), "application/json", nil
}

// FilePart is one file attached to a multipart body.
type FilePart struct {
	// Field is the form field name the server expects.
	Field string
	// Name is the client-side file name sent in the part header.
	Name string
	// Reader supplies the file contents.
	Reader io.Reader
}

type multipartBody struct {
	fields map[string]string
	files  []FilePart
}

// Multipart builds a multipart/form-data body from plain fields and file
// parts, used by the upload endpoint.
func Multipart(fields map[string]string, files ...FilePart) Body {
	return multipartBody{fields: fields, files: files}
}

func (b multipartBody) build() (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range b.fields {
		if err := w.WriteField(field, value); err != nil {
			return nil, "", fmt.Errorf("write multipart field %q: %w", field, err)
		}
	}
	for _, f := range b.files {
		part, err := w.CreateFormFile(f.Field, f.Name)
		if err != nil {
			return nil, "", fmt.Errorf("create multipart file %q: %w", f.Field, err)
		}
		if _, err := io.Copy(part, f.Reader); err != nil {
			return nil, "", fmt.Errorf("copy multipart file %q: %w", f.Field, err)
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("finish multipart body: %w", err)
	}

	return &buf, w.FormDataContentType(), nil
}
