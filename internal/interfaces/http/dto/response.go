package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/inventorydb/backend/internal/domain/shared"
)

// TimestampLayout is the wire format of every timestamp: ISO-8601, second
// precision, UTC, no zone suffix.
const TimestampLayout = "2006-01-02T15:04:05"

// DeleteSuccessDetail is the detail returned by successful deletes
const DeleteSuccessDetail = "success"

// Timestamp is a time.Time that serializes in TimestampLayout
type Timestamp time.Time

// NewTimestamp creates a Timestamp
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t)
}

// Time returns the underlying time
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// String formats the timestamp
func (t Timestamp) String() string {
	return time.Time(t).UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler
func (t Timestamp) MarshalJSON() ([]byte, error) {
	b := make([]byte, 0, len(TimestampLayout)+2)
	b = append(b, '"')
	b = time.Time(t).UTC().AppendFormat(b, TimestampLayout)
	b = append(b, '"')
	return b, nil
}

// UnmarshalJSON implements json.Unmarshaler. Values with a zone offset or
// fractional seconds are accepted as well.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" {
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return &time.ParseError{Layout: TimestampLayout, Value: s}
	}
	s = s[1 : len(s)-1]
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

// Ref is the short form of a related entity embedded in a parent response
type Ref struct {
	ID      uuid.UUID `json:"id"`
	Created Timestamp `json:"created"`
	Updated Timestamp `json:"updated"`
}

// ToRefs converts entity headers to their wire form
func ToRefs(entities []shared.BaseEntity) []Ref {
	refs := make([]Ref, len(entities))
	for i, e := range entities {
		refs[i] = Ref{
			ID:      e.ID,
			Created: NewTimestamp(e.CreatedAt),
			Updated: NewTimestamp(e.UpdatedAt),
		}
	}
	return refs
}

// DetailResponse carries a plain confirmation message
type DetailResponse struct {
	Detail string `json:"detail"`
}

// NewDeleteResponse is the body returned after a successful delete
func NewDeleteResponse() DetailResponse {
	return DetailResponse{Detail: DeleteSuccessDetail}
}
