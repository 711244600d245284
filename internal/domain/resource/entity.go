package resource

import (
	"errors"
	"strings"
)

var (
	ErrEmptyLabel        = errors.New("resource label cannot be empty")
	ErrEmptyNaturalKey   = errors.New("resource natural key cannot be empty")
	ErrLabelTooLong      = errors.New("resource label is too long (max 255 characters)")
	ErrNaturalKeyTooLong = errors.New("resource natural key is too long (max 255 characters)")
)

const (
	MaxLabelLength      = 255
	MaxNaturalKeyLength = 255
)

// Resource is a bookable vehicle. The natural key (license plate) is unique
// across resources; the numeric id is assigned by the store.
type Resource struct {
	id         int64
	label      string
	naturalKey string
}

// NewResource validates a resource that has not been persisted yet.
func NewResource(label, naturalKey string) (*Resource, error) {
	label, naturalKey = strings.TrimSpace(label), strings.TrimSpace(naturalKey)

	if err := validateLabel(label); err != nil {
		return nil, err
	}
	if err := ValidateNaturalKey(naturalKey); err != nil {
		return nil, err
	}

	return &Resource{
		label:      label,
		naturalKey: naturalKey,
	}, nil
}

func ReconstructResource(id int64, label, naturalKey string) *Resource {
	return &Resource{
		id:         id,
		label:      label,
		naturalKey: naturalKey,
	}
}

// Assign returns a copy carrying the store-assigned id.
func (r *Resource) Assign(id int64) *Resource {
	return &Resource{
		id:         id,
		label:      r.label,
		naturalKey: r.naturalKey,
	}
}

func (r *Resource) IsPersisted() bool {
	return r.id > 0
}

func ValidateNaturalKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyNaturalKey
	}
	if len(key) > MaxNaturalKeyLength {
		return ErrNaturalKeyTooLong
	}
	return nil
}

func validateLabel(label string) error {
	if label == "" {
		return ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	return nil
}

func (r *Resource) ID() int64          { return r.id }
func (r *Resource) Label() string      { return r.label }
func (r *Resource) NaturalKey() string { return r.naturalKey }
