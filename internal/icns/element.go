package icns

import (
	"encoding/binary"
	"fmt"
	"sync"

	apperrors "github.com/deploymenttheory/go-icns/internal/common/errors"
)

// headerSize is the size of an element header: a four-byte type code
// followed by a big-endian uint32 holding the total element length,
// header included.
const headerSize = 8

// Element is one tagged record inside an icon family. The raw body is
// always available; the structured payload is resolved from it on first
// access and memoized, so untouched elements are never interpreted.
type Element struct {
	Code TypeCode
	Body []byte

	resolveOnce sync.Once
	payload     Payload
	payloadErr  error
}

// KnownType returns the registry descriptor for the element's type code,
// or nil if the code is not recognized.
func (e *Element) KnownType() *TypeDescriptor {
	desc, ok := LookupType(e.Code)
	if !ok {
		return nil
	}
	return desc
}

// Payload resolves the element's body into its structured form. The
// result is computed once and cached; concurrent callers are safe.
// Unrecognized type codes yield an *UnknownData payload, never an error.
func (e *Element) Payload() (Payload, error) {
	e.resolveOnce.Do(func() {
		e.payload, e.payloadErr = resolvePayload(e.Code, e.Body)
	})
	return e.payload, e.payloadErr
}

// decodeElement reads one element (header plus body) from the cursor.
func decodeElement(r *reader) (*Element, error) {
	hdr, err := r.readBytes(headerSize, apperrors.ErrTruncatedHeader)
	if err != nil {
		return nil, err
	}

	var code TypeCode
	copy(code[:], hdr[:4])

	length := binary.BigEndian.Uint32(hdr[4:])
	if length < headerSize {
		return nil, fmt.Errorf("%w: element %s declares length %d",
			apperrors.ErrInvalidLength, code, length)
	}

	body, err := r.readBytes(int(length)-headerSize, apperrors.ErrTruncatedBody)
	if err != nil {
		return nil, fmt.Errorf("element %s: %w", code, err)
	}

	return &Element{Code: code, Body: body}, nil
}

// EncodeStandalone wraps a detached family body into a stream that
// decodes as a top-level icon family, by prefixing a synthetic "icns"
// header whose length covers header plus body.
func EncodeStandalone(body []byte) []byte {
	out := make([]byte, headerSize+len(body))
	copy(out, mainFamilyCode[:])
	binary.BigEndian.PutUint32(out[4:], uint32(headerSize+len(body)))
	copy(out[headerSize:], body)
	return out
}

// IconFamily is an ordered mapping from type code to element: one
// container's direct children. If a family contains the same type code
// twice, the later element replaces the earlier one but keeps its
// original position, matching how macOS tooling treats such files.
type IconFamily struct {
	order    []TypeCode
	elements map[TypeCode]*Element

	// Index from resolution and data kind to element, for best-quality
	// lookups. Built once at construction from the type registry alone.
	byResolution map[Resolution]map[DataKind]*Element
}

func newIconFamily(elems []*Element) *IconFamily {
	f := &IconFamily{
		elements:     make(map[TypeCode]*Element, len(elems)),
		byResolution: make(map[Resolution]map[DataKind]*Element),
	}
	for _, e := range elems {
		if _, seen := f.elements[e.Code]; !seen {
			f.order = append(f.order, e.Code)
		}
		f.elements[e.Code] = e
	}
	for _, code := range f.order {
		e := f.elements[code]
		desc := e.KnownType()
		if desc == nil || !desc.HasResolution() {
			continue
		}
		byKind := f.byResolution[desc.Res]
		if byKind == nil {
			byKind = make(map[DataKind]*Element)
			f.byResolution[desc.Res] = byKind
		}
		byKind[desc.Kind] = e
	}
	return f
}

// Len returns the number of elements in the family.
func (f *IconFamily) Len() int {
	return len(f.order)
}

// Codes returns the element type codes in insertion order.
func (f *IconFamily) Codes() []TypeCode {
	out := make([]TypeCode, len(f.order))
	copy(out, f.order)
	return out
}

// Element looks up a direct child by type code.
func (f *IconFamily) Element(tc TypeCode) (*Element, bool) {
	e, ok := f.elements[tc]
	return e, ok
}

// Elements returns the family's direct children in insertion order.
func (f *IconFamily) Elements() []*Element {
	out := make([]*Element, 0, len(f.order))
	for _, code := range f.order {
		out = append(out, f.elements[code])
	}
	return out
}

// decodeFamilyBody decodes a family's raw body into its child elements.
// The body must be fully consumed: leftover bytes too short to form
// another element header are trailing garbage and fail the decode.
func decodeFamilyBody(body []byte) (*IconFamily, error) {
	if len(body) == 0 {
		return nil, fmt.Errorf("%w: icon family has no elements", apperrors.ErrTruncatedBody)
	}

	r := newReader(body)
	var elems []*Element
	for r.remaining() > 0 {
		if r.remaining() < headerSize {
			return nil, fmt.Errorf("%w: %d bytes left at end of family",
				apperrors.ErrTrailingData, r.remaining())
		}
		e, err := decodeElement(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	return newIconFamily(elems), nil
}

// DecodeIconFamily decodes a complete ICNS stream. Exactly one top-level
// element is read and its type code must be "icns"; bytes after it are
// ignored. The returned family's child payloads are still lazy.
func DecodeIconFamily(data []byte) (*IconFamily, error) {
	r := newReader(data)
	root, err := decodeElement(r)
	if err != nil {
		return nil, err
	}
	if root.Code != mainFamilyCode {
		return nil, fmt.Errorf("%w: top-level type code is %s",
			apperrors.ErrNotAnIconFamily, root.Code)
	}

	payload, err := root.Payload()
	if err != nil {
		return nil, err
	}
	fam, ok := payload.(*IconFamily)
	if !ok {
		// Cannot happen while "icns" is registered as a family kind.
		return nil, fmt.Errorf("%w: unexpected payload %T", apperrors.ErrNotAnIconFamily, payload)
	}
	return fam, nil
}
