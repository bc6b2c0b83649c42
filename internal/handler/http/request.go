package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
)

const (
	maxMultipartMemory = 1 << 20
	maxRequestBodySize = 1 << 20
)

// decodeRequest fills dst from a JSON body, or the string fields named in
// formFields from an url-encoded or multipart form. A request without a
// Content-Type is treated as an url-encoded form. Bodies larger than
// maxRequestBodySize are rejected with [ErrBodyTooLarge].
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any, formFields map[string]*string) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	contentType := r.Header.Get("Content-Type")
	mediaType := "application/x-www-form-urlencoded"
	if contentType != "" {
		var err error
		mediaType, _, err = mime.ParseMediaType(contentType)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedContentType, err)
		}
	}

	switch mediaType {
	case "application/json":
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return bodyError(err)
		}
		return nil
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return bodyError(err)
		}
	case "application/x-www-form-urlencoded":
		if contentType == "" {
			r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
		if err := r.ParseForm(); err != nil {
			return bodyError(err)
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedContentType, mediaType)
	}

	for name, field := range formFields {
		*field = r.FormValue(name)
	}
	return nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrBodyTooLarge, tooLarge.Limit)
	}
	return fmt.Errorf("%w: %v", ErrMalformedBody, err)
}
