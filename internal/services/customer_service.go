package services

import (
	"context"

	"flightops360/hangar/internal/constants"
	"flightops360/hangar/internal/models/entities"
	"flightops360/hangar/internal/store"
)

type CustomerService struct {
	customers *Collection[entities.Customer, *entities.Customer]
}

func NewCustomerService(s store.Store) *CustomerService {
	return &CustomerService{
		customers: NewCollection[entities.Customer](s, constants.CollectionCustomers, "customer"),
	}
}

// ListCustomers returns customers by name.
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, err
	}
	sortByKey(customers, func(c *entities.Customer) string { return c.Name })
	return customers, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	return s.customers.Get(ctx, id)
}

func (s *CustomerService) SaveCustomer(ctx context.Context, c *entities.Customer) (*entities.Customer, error) {
	return s.customers.Save(ctx, c)
}

// DeleteCustomer does not touch quotes or trips that reference the customer.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id string) (*DeleteResult, error) {
	return s.customers.Delete(ctx, id)
}
