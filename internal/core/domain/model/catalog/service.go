package catalog

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
)

var ErrServiceIsNotConstructed = errors.New("Service must be created via NewService constructor")

// Service groups products, e.g. "Email" or "Hosting". Order items reference both
// the product and the service they were sold under.
type Service struct {
	id   kernel.UUID
	name string

	isConstructed bool
}

func NewService(id kernel.UUID, name string) (*Service, error) {
	if err := errors.Join(id.Validate(), validateName("service name", name)); err != nil {
		return nil, err
	}

	return &Service{id: id, name: name, isConstructed: true}, nil
}

func (s *Service) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrServiceIsNotConstructed
	}
	return nil
}

func (s *Service) ID() kernel.UUID {
	return s.id
}

func (s *Service) Name() string {
	return s.name
}
