package domain

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// AssetKind distinguishes the two stored media types. Each kind has its own
// MIME allow-list, size ceiling, and collection.
type AssetKind string

const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

var ErrAssetNotFound = errors.New("asset not found")
var ErrInvalidMimeType = errors.New("unsupported media type")
var ErrAssetTooLarge = errors.New("asset exceeds size limit")
var ErrRangeNotSatisfiable = errors.New("requested range not satisfiable")

// allowedMimeTypes restricts what each asset kind may store. Anything outside
// the list is rejected before a single byte reaches the store.
var allowedMimeTypes = map[AssetKind]map[string]struct{}{
	AssetImage: {
		"image/jpeg": {},
		"image/png":  {},
		"image/webp": {},
		"image/gif":  {},
	},
	AssetVideo: {
		"video/mp4":       {},
		"video/webm":      {},
		"video/quicktime": {},
		"video/ogg":       {},
	},
}

// MimeAllowed reports whether contentType may be stored under kind.
func (k AssetKind) MimeAllowed(contentType string) bool {
	_, ok := allowedMimeTypes[k][strings.ToLower(contentType)]
	return ok
}

// Asset is a stored binary object. The byte buffer is immutable once
// written: assets are replaced by upload+delete, never patched in place,
// which is what makes long-horizon immutable caching safe.
type Asset struct {
	ID           string            `json:"id" bson:"_id,omitempty"`
	Filename     string            `json:"filename" bson:"filename"`
	OriginalName string            `json:"original_name" bson:"original_name"`
	MimeType     string            `json:"mime_type" bson:"mime_type"`
	Size         int64             `json:"size" bson:"size"`
	Data         []byte            `json:"-" bson:"data"`
	Metadata     map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	CreatedAt    time.Time         `json:"created_at" bson:"created_at"`
}

// ByteRange is an inclusive byte interval [Start, End] within an asset,
// derived per request from the Range header. It never outlives the exchange.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes the range covers.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// ContentRange renders the Content-Range header value for an asset of the
// given total size.
func (r ByteRange) ContentRange(size int64) string {
	return "bytes " + strconv.FormatInt(r.Start, 10) + "-" + strconv.FormatInt(r.End, 10) + "/" + strconv.FormatInt(size, 10)
}

// ParseRange parses a Range header value against an asset of size bytes.
//
// Only the single-range forms "bytes=start-" and "bytes=start-end" are
// supported; a comma-separated list degrades to its first segment. Suffix
// ranges ("bytes=-n"), malformed input, and out-of-bounds intervals all
// return ErrRangeNotSatisfiable so callers answer 416 instead of clamping.
func ParseRange(header string, size int64) (ByteRange, error) {
	const prefix = "bytes="
	if !strings.HasPrefix(header, prefix) {
		return ByteRange{}, ErrRangeNotSatisfiable
	}
	spec := strings.TrimPrefix(header, prefix)
	if i := strings.IndexByte(spec, ','); i >= 0 {
		spec = spec[:i]
	}
	spec = strings.TrimSpace(spec)

	startStr, endStr, found := strings.Cut(spec, "-")
	if !found || startStr == "" {
		return ByteRange{}, ErrRangeNotSatisfiable
	}

	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return ByteRange{}, ErrRangeNotSatisfiable
	}

	end := size - 1
	if endStr != "" {
		end, err = strconv.ParseInt(endStr, 10, 64)
		if err != nil {
			return ByteRange{}, ErrRangeNotSatisfiable
		}
	}

	if start >= size || end < start || end >= size {
		return ByteRange{}, ErrRangeNotSatisfiable
	}

	return ByteRange{Start: start, End: end}, nil
}
