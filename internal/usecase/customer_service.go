package usecase

import (
	"errors"
	"time"

	"github.com/iho/moneyflow/internal/domain"
	"github.com/iho/moneyflow/internal/store"
)

// CustomerService owns the customer collection and is the only mutation
// path for customers.
type CustomerService struct {
	customers *store.Store[domain.Customer]
	seq       store.Sequence
	now       func() time.Time
}

// NewCustomerService creates a CustomerService over the given store.
func NewCustomerService(customers *store.Store[domain.Customer], now func() time.Time) *CustomerService {
	return &CustomerService{customers: customers, now: now}
}

// Create registers a new customer. Only a hash of the personal data is
// kept, never the data itself.
func (s *CustomerService) Create(dataHash string) domain.Customer {
	return s.customers.Create(domain.Customer{
		ID:        s.seq.Next(),
		CreatedAt: s.now(),
		DataHash:  dataHash,
	})
}

// Read returns the customer with the given id.
func (s *CustomerService) Read(id int64) (domain.Customer, error) {
	c, err := s.customers.Read(id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	return c, err
}

// Update replaces the customer's data hash. The write is an upsert with a
// fresh creation timestamp, matching the store's update semantics.
func (s *CustomerService) Update(id int64, dataHash string) domain.Customer {
	return s.customers.Update(domain.Customer{
		ID:        id,
		CreatedAt: s.now(),
		DataHash:  dataHash,
	})
}

// Delete removes the customer. Deleting an absent id succeeds and returns
// the zero customer.
func (s *CustomerService) Delete(id int64) domain.Customer {
	return s.customers.Delete(id)
}

// Block marks the customer as blocked. Blocking an already-blocked
// customer succeeds again.
func (s *CustomerService) Block(id int64) (domain.Customer, error) {
	c, err := s.customers.Read(id)
	if err != nil {
		return domain.Customer{}, domain.ErrCustomerNotFound
	}

	c.Blocked = true

	return s.customers.Update(c), nil
}
