package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type decodeTarget struct {
	A string `json:"a"`
	B string `json:"b"`
}

func decodeInto(t *testing.T, r *http.Request) (decodeTarget, error) {
	t.Helper()
	var dst decodeTarget
	err := decodeRequest(httptest.NewRecorder(), r, &dst, map[string]*string{"a": &dst.A, "b": &dst.B})
	return dst, err
}

func TestDecodeRequest(t *testing.T) {
	tests := []struct {
		name        string
		target      string
		contentType string
		body        string
		want        decodeTarget
		wantErr     error
	}{
		{
			name:        "urlencoded",
			target:      "/",
			contentType: "application/x-www-form-urlencoded",
			body:        "a=1&b=two+words",
			want:        decodeTarget{A: "1", B: "two words"},
		},
		{
			name:        "urlencoded with charset",
			target:      "/",
			contentType: "application/x-www-form-urlencoded; charset=UTF-8",
			body:        "a=x",
			want:        decodeTarget{A: "x"},
		},
		{
			name:   "missing content type is a form",
			target: "/",
			body:   "b=y",
			want:   decodeTarget{B: "y"},
		},
		{
			name:        "query values are read",
			target:      "/?a=q",
			contentType: "application/x-www-form-urlencoded",
			body:        "b=y",
			want:        decodeTarget{A: "q", B: "y"},
		},
		{
			name:        "json",
			target:      "/",
			contentType: "application/json",
			body:        `{"a":"1","b":"2"}`,
			want:        decodeTarget{A: "1", B: "2"},
		},
		{
			name:        "malformed json",
			target:      "/",
			contentType: "application/json",
			body:        `{"a":`,
			wantErr:     ErrMalformedBody,
		},
		{
			name:        "unsupported media type",
			target:      "/",
			contentType: "text/xml",
			body:        "<a/>",
			wantErr:     ErrUnsupportedContentType,
		},
		{
			name:        "unparsable content type",
			target:      "/",
			contentType: ";;;",
			wantErr:     ErrUnsupportedContentType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.target, strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}

			got, err := decodeInto(t, req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeRequest_BodyTooLarge(t *testing.T) {
	oversized := strings.Repeat("a", maxRequestBodySize+1)

	tests := []struct {
		name        string
		contentType string
		body        string
	}{
		{name: "json", contentType: "application/json", body: `{"a":"` + oversized + `"}`},
		{name: "urlencoded", contentType: "application/x-www-form-urlencoded", body: "a=" + oversized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", tt.contentType)

			_, err := decodeInto(t, req)

			require.ErrorIs(t, err, ErrBodyTooLarge)
		})
	}
}
