package service

import (
	"context"
	"errors"

	"github.com/mercato/mercato-api/internal/model"
	"github.com/mercato/mercato-api/internal/repository"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNotOwner        = errors.New("caller does not own this product")
)

// ProductStore is the persistence surface the product service needs.
// *repository.ProductRepository satisfies it.
type ProductStore interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter model.ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id int64) error
}

// ProductService handles product business logic and enforces the
// owner-only mutation rule.
type ProductService struct {
	store ProductStore
}

// NewProductService creates a new ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// requireOwner is the single ownership rule for mutations: a product
// may only be changed by the user recorded as its owner. Every mutating
// operation goes through here rather than re-checking on its own.
func requireOwner(product *model.Product, caller *model.User) error {
	if product.OwnerID != caller.ID {
		return ErrNotOwner
	}
	return nil
}

// Create inserts a product owned by the caller. Price is taken as
// given; nothing rejects a negative value, matching the stored schema.
func (s *ProductService) Create(ctx context.Context, owner *model.User, req model.ProductRequest) (model.ProductResponse, error) {
	product := &model.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		OwnerID:     owner.ID,
	}

	if err := s.store.Create(ctx, product); err != nil {
		return model.ProductResponse{}, err
	}

	return product.ToResponse(), nil
}

// List returns products matching the filter.
func (s *ProductService) List(ctx context.Context, filter model.ProductFilter) ([]model.ProductResponse, error) {
	products, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]model.ProductResponse, len(products))
	for i := range products {
		result[i] = products[i].ToResponse()
	}
	return result, nil
}

// ListOwned returns the caller's products: the general listing with the
// owner predicate forced to the caller's ID.
func (s *ProductService) ListOwned(ctx context.Context, owner *model.User, filter model.ProductFilter) ([]model.ProductResponse, error) {
	filter.OwnerID = &owner.ID
	return s.List(ctx, filter)
}

// Update replaces a product's name, price, and description. Fails with
// ErrProductNotFound if the product is absent and ErrNotOwner if the
// caller is not its owner; the owner reference itself never changes.
func (s *ProductService) Update(ctx context.Context, id int64, caller *model.User, req model.ProductRequest) (model.ProductResponse, error) {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}

	if err := requireOwner(product, caller); err != nil {
		return model.ProductResponse{}, err
	}

	product.Name = req.Name
	product.Price = req.Price
	product.Description = req.Description

	if err := s.store.Update(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return model.ProductResponse{}, ErrProductNotFound
		}
		return model.ProductResponse{}, err
	}

	return product.ToResponse(), nil
}

// Delete removes a product, with the same not-found and ownership
// semantics as Update.
func (s *ProductService) Delete(ctx context.Context, id int64, caller *model.User) error {
	product, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := requireOwner(product, caller); err != nil {
		return err
	}

	if err := s.store.Delete(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	return nil
}
