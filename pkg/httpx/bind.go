package httpx

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
)

// MaxJSONBodySize caps request bodies at 1 MB. Quote text is the largest
// client payload and stays far below this.
const MaxJSONBodySize = 1 << 20

// DecodeJSON reads and decodes a JSON request body into v. The content type
// must be application/json and the body must fit within MaxJSONBodySize.
func DecodeJSON(r *http.Request, v any) error {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return fmt.Errorf("%w: missing content-type, expected application/json", ErrUnsupportedMedia)
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != "application/json" {
		return fmt.Errorf("%w: got %q, expected application/json", ErrUnsupportedMedia, contentType)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, MaxJSONBodySize+1))
	if err != nil {
		return fmt.Errorf("%w: reading body: %v", ErrInvalidBody, err)
	}
	if len(body) > MaxJSONBodySize {
		return fmt.Errorf("%w: body exceeds %d bytes", ErrBodyTooLarge, MaxJSONBodySize)
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: empty body", ErrInvalidBody)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}
	return nil
}
