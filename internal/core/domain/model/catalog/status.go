package catalog

import (
	"errors"
	"strings"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

// Well-known status names.
const (
	StatusCreated    = "Created"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
)

// StatusNameMaxLength is the longest status name accepted from clients.
const StatusNameMaxLength = 50

var ErrStatusIsNotConstructed = errors.New("Status must be created via NewStatus constructor")

// StandardStatusNames lists the statuses a fresh database is seeded with.
func StandardStatusNames() []string {
	return []string{StatusCreated, StatusInProgress, StatusCompleted, StatusFailed}
}

// Status is a named state an order can be in. There is no ordering between statuses:
// an order may move from any status to any other.
type Status struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

// NewStatus builds a status from its identifier and unique name.
func NewStatus(id kernel.UUID, name string) (*Status, error) {
	s := &Status{isConstructed: true}

	if err := errors.Join(
		id.Validate(),
		validateName("status name", name),
	); err != nil {
		return nil, err
	}

	s.id = id
	s.name = name
	return s, nil
}

func (s *Status) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStatusIsNotConstructed
	}
	return nil
}

func (s *Status) ID() kernel.UUID {
	return s.id
}

func (s *Status) Name() string {
	return s.name
}

// IsCompleted reports whether orders in this status count towards profit.
func (s *Status) IsCompleted() bool {
	return s.name == StatusCompleted
}

func validateName(param, name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}
