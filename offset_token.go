package dbpager

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

var _encoder = base64.RawURLEncoding

// OffsetToken is an opaque page token for APIs that hand out continuation
// tokens while the storage only supports LIMIT/OFFSET. The zero offset encodes
// to an empty token.
type OffsetToken struct {
	offset int
}

func NewOffsetToken(offset int) *OffsetToken {
	return &OffsetToken{
		offset: offset,
	}
}

// DecodeOffsetToken parses a base64-encoded token. An empty string yields a
// nil token, i.e. the first page.
func DecodeOffsetToken(b64String string) (*OffsetToken, error) {
	if len(b64String) == 0 {
		return nil, nil
	}

	offsetBytes, err := _encoder.DecodeString(b64String)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64 encoded offset token: %w", err)
	}

	offset, err := strconv.Atoi(string(offsetBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode offset token value: %w", err)
	}

	if offset < 0 {
		return nil, fmt.Errorf("offset token holds negative offset %d", offset)
	}

	return &OffsetToken{
		offset: offset,
	}, nil
}

// String - implements fmt.Stringer.
func (t *OffsetToken) String() string {
	if t.IsEmpty() {
		return ""
	}

	return _encoder.EncodeToString([]byte(strconv.Itoa(t.offset)))
}

// IsEmpty returns true for a nil token or the zero offset.
func (t *OffsetToken) IsEmpty() bool {
	return t == nil || t.offset == 0
}

// GetOffset returns the numeric offset value.
func (t *OffsetToken) GetOffset() int {
	if t != nil {
		return t.offset
	}

	return 0
}

// WithOffset sets the numeric offset value and returns the token.
func (t *OffsetToken) WithOffset(offset int) *OffsetToken {
	if t == nil {
		t = new(OffsetToken)
	}

	t.offset = offset

	return t
}

// MarshalText - implements encoding.TextMarshaler.
func (t *OffsetToken) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText - implements encoding.TextUnmarshaler.
func (t *OffsetToken) UnmarshalText(text []byte) error {
	decoded, err := DecodeOffsetToken(string(text))
	if err != nil {
		return err
	}

	t.offset = decoded.GetOffset()

	return nil
}

var _ fmt.Stringer = (*OffsetToken)(nil)
