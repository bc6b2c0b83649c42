package adapter

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	boundaryBytes = 10

	// fileFieldName is rendered as an empty file part instead of a value.
	fileFieldName = "add_file"
)

// Field is one form field of a multipart body. Fields are emitted in the order
// they are given.
type Field struct {
	Name  string
	Value string
}

// MultipartBody is a serialized multipart/form-data body together with the
// boundary that separates its parts.
type MultipartBody struct {
	Body     []byte
	Boundary string
}

// ContentType returns the Content-Type header value for the body.
func (m MultipartBody) ContentType() string {
	return "multipart/form-data; boundary=" + m.Boundary
}

// BuildMultipart serializes fields with a random boundary of 20 hex characters.
//
// The body is written by hand instead of with mime/multipart because pyLoad
// expects the exact part layout below, including an empty add_file part with
// an octet-stream content type.
func BuildMultipart(fields []Field) (MultipartBody, error) {
	raw := make([]byte, boundaryBytes)
	if _, err := rand.Read(raw); err != nil {
		return MultipartBody{}, fmt.Errorf("generate multipart boundary: %w", err)
	}

	return buildMultipartWithBoundary(fields, hex.EncodeToString(raw)), nil
}

func buildMultipartWithBoundary(fields []Field, boundary string) MultipartBody {
	var sb strings.Builder
	for _, f := range fields {
		sb.WriteString("--" + boundary + "\r\n")
		if f.Name == fileFieldName {
			sb.WriteString(`Content-Disposition: form-data; name="` + f.Name + `"; filename="` + f.Value + "\"\r\n")
			sb.WriteString("Content-Type: application/octet-stream\r\n\r\n\r\n")
			continue
		}
		sb.WriteString(`Content-Disposition: form-data; name="` + f.Name + "\"\r\n\r\n")
		sb.WriteString(f.Value + "\r\n")
	}
	sb.WriteString("--" + boundary + "--\r\n")

	return MultipartBody{Body: []byte(sb.String()), Boundary: boundary}
}
