package errors

import (
	"errors"
)

var (
	// Structural decode errors
	ErrTruncatedHeader = errors.New("truncated element header")
	ErrTruncatedBody   = errors.New("truncated element body")
	ErrInvalidLength   = errors.New("element length smaller than header size")
	ErrTrailingData    = errors.New("trailing data not consumed by any element")
	ErrNotAnIconFamily = errors.New("data is not an icon family")

	// Compression errors
	ErrTruncatedCompressedData    = errors.New("compressed data ends mid-chunk")
	ErrDecompressedLengthMismatch = errors.New("decompressed data length mismatch")

	// Bitmap validation errors
	ErrBadSignature       = errors.New("bad bitmap signature")
	ErrInvalidPayloadSize = errors.New("element data size does not match its type")

	// Lookup errors
	ErrNoMatchingElement = errors.New("no matching element for the requested resolution")

	// Image handling errors
	ErrUnsupportedImageFormat = errors.New("unsupported image format")

	// File & directory errors
	ErrFileNotFound      = errors.New("file not found")
	ErrFileReadError     = errors.New("error reading file")
	ErrFileWriteError    = errors.New("error writing to file")
	ErrFileExistsError   = errors.New("file already exists")
	ErrDirNotFound       = errors.New("directory not found")
	ErrDirExistsError    = errors.New("directory already exists")
	ErrPathNotAccessible = errors.New("path is not accessible")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrUnsupportedFile   = errors.New("unsupported file format")

	// Configuration errors
	ErrConfigInvalid    = errors.New("invalid configuration")
	ErrConfigParseError = errors.New("error parsing configuration")
)
