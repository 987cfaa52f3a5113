package extract

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrInvalidUTF8 is the cause carried by InvalidUTF8 rejections.
var ErrInvalidUTF8 = errors.New("invalid utf-8 sequence")

// Bytes buffers the whole body.
func Bytes() Extractor[[]byte] {
	return func(r *Request) ([]byte, Rejection) {
		data, rej := r.bufferBody()
		if rej != nil {
			return nil, Box(rej)
		}
		return data, nil
	}
}

// String buffers the whole body and validates it as UTF-8.
func String() Extractor[string] {
	return func(r *Request) (string, Rejection) {
		data, rej := r.bufferBody()
		if rej != nil {
			return "", Box(rej)
		}
		if !utf8.Valid(data) {
			return "", Box(InvalidUTF8{Err: invalidUTF8At(data)})
		}
		return string(data), nil
	}
}

func invalidUTF8At(data []byte) error {
	offset := 0
	for offset < len(data) {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return fmt.Errorf("%w at byte offset %d", ErrInvalidUTF8, offset)
}

// Body takes the body without buffering it, for handlers that stream.
// The handler owns the returned reader; the server closes it after the response.
func Body() Extractor[io.ReadCloser] {
	return func(r *Request) (io.ReadCloser, Rejection) {
		return r.TakeBody()
	}
}

// BytesMaxLength buffers the body when the declared Content-Length is at most limit.
//
// The Content-Length header is checked before the body is taken: without a
// parseable header the request is rejected with LengthRequired (411), and a
// declared length above limit with PayloadTooLarge (413). In both cases the
// body stays in the request.
//
// The bound applies to the declared length only. A sender that declares a
// small length and transmits more is still buffered fully; wrap routes with
// middleware.BodyLimit for a hard limit on bytes read.
func BytesMaxLength(limit int64) Extractor[[]byte] {
	return func(r *Request) ([]byte, Rejection) {
		header := r.Header.Get("Content-Length")
		if header == "" {
			return nil, Box(LengthRequired{})
		}
		declared, err := strconv.ParseUint(strings.TrimSpace(header), 10, 64)
		if err != nil {
			return nil, Box(LengthRequired{})
		}
		if limit < 0 || declared > uint64(limit) {
			return nil, Box(PayloadTooLarge{})
		}

		data, rej := r.bufferBody()
		if rej != nil {
			return nil, Box(rej)
		}
		return data, nil
	}
}
