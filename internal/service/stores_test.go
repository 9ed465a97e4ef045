package service

import (
	"context"

	"github.com/mercato/mercato-api/internal/model"
	"github.com/mercato/mercato-api/internal/repository"
)

// memUserStore is an in-memory UserStore for tests.
type memUserStore struct {
	users  []model.User
	nextID int64
}

func newMemUserStore() *memUserStore {
	return &memUserStore{nextID: 1}
}

func (s *memUserStore) Create(_ context.Context, user *model.User) error {
	for _, u := range s.users {
		if u.Email == user.Email {
			return repository.ErrDuplicateEmail
		}
	}
	user.ID = s.nextID
	s.nextID++
	s.users = append(s.users, *user)
	return nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (s *memUserStore) List(_ context.Context) ([]model.User, error) {
	return append([]model.User(nil), s.users...), nil
}

// memProductStore is an in-memory ProductStore for tests. List applies
// only the owner predicate; the full filter semantics are exercised
// against the SQL builder in the repository package.
type memProductStore struct {
	products []model.Product
	nextID   int64
}

func newMemProductStore() *memProductStore {
	return &memProductStore{nextID: 1}
}

func (s *memProductStore) Create(_ context.Context, product *model.Product) error {
	product.ID = s.nextID
	s.nextID++
	s.products = append(s.products, *product)
	return nil
}

func (s *memProductStore) GetByID(_ context.Context, id int64) (*model.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			product := p
			return &product, nil
		}
	}
	return nil, repository.ErrProductNotFound
}

func (s *memProductStore) List(_ context.Context, filter model.ProductFilter) ([]model.Product, error) {
	var result []model.Product
	for _, p := range s.products {
		if filter.OwnerID != nil && p.OwnerID != *filter.OwnerID {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *memProductStore) Update(_ context.Context, product *model.Product) error {
	for i, p := range s.products {
		if p.ID == product.ID {
			s.products[i] = *product
			return nil
		}
	}
	return repository.ErrProductNotFound
}

func (s *memProductStore) Delete(_ context.Context, id int64) error {
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return repository.ErrProductNotFound
}
