package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Category groups products. CreateAt and UpdateAt default to the insert time;
// updates never refresh UpdateAt on their own.
type Category struct {
	ObjectID     uuid.UUID `json:"_id" db:"object_id"`
	ID           string    `json:"id" db:"id"`
	CategoryName string    `json:"category_name" db:"category_name"`
	CreateAt     time.Time `json:"create_at" db:"create_at"`
	UpdateAt     time.Time `json:"update_at" db:"update_at"`
}

// CategoryInput is the request payload for creating a category.
type CategoryInput struct {
	ID           string     `json:"id"`
	CategoryName string     `json:"category_name"`
	CreateAt     *time.Time `json:"create_at,omitempty"`
	UpdateAt     *time.Time `json:"update_at,omitempty"`
}

// UnmarshalJSON accepts the timestamp forms understood by parseTimestamp.
func (c *CategoryInput) UnmarshalJSON(data []byte) error {
	type plain CategoryInput
	aux := struct {
		*plain
		CreateAt json.RawMessage `json:"create_at"`
		UpdateAt json.RawMessage `json:"update_at"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return decodeTimestamps(aux.CreateAt, aux.UpdateAt, &c.CreateAt, &c.UpdateAt)
}

// CategoryPatch carries the fields of an update request.
type CategoryPatch struct {
	ID           *string    `json:"id"`
	CategoryName *string    `json:"category_name"`
	CreateAt     *time.Time `json:"create_at"`
	UpdateAt     *time.Time `json:"update_at"`
}

// UnmarshalJSON accepts the timestamp forms understood by parseTimestamp.
func (c *CategoryPatch) UnmarshalJSON(data []byte) error {
	type plain CategoryPatch
	aux := struct {
		*plain
		CreateAt json.RawMessage `json:"create_at"`
		UpdateAt json.RawMessage `json:"update_at"`
	}{plain: (*plain)(c)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	return decodeTimestamps(aux.CreateAt, aux.UpdateAt, &c.CreateAt, &c.UpdateAt)
}

// timestampLayouts are tried in order; layouts without a zone are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func decodeTimestamps(createRaw, updateRaw json.RawMessage, createAt, updateAt **time.Time) error {
	var err error
	if *createAt, err = parseTimestamp(createRaw); err != nil {
		return fmt.Errorf("create_at: %w", err)
	}
	if *updateAt, err = parseTimestamp(updateRaw); err != nil {
		return fmt.Errorf("update_at: %w", err)
	}
	return nil
}

// parseTimestamp reads a JSON date string or a number of Unix milliseconds.
// Absent or null values yield nil.
func parseTimestamp(raw json.RawMessage) (*time.Time, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	if raw[0] != '"' {
		ms, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid timestamp %s", raw)
		}
		t := time.UnixMilli(int64(ms)).UTC()
		return &t, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid timestamp %q", s)
}
