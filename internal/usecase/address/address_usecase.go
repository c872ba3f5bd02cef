package address

import (
	"context"
	"fmt"

	"github.com/gomatri/matrimony-backend/internal/domain"
	"github.com/gomatri/matrimony-backend/internal/repository"
)

type AddressUseCase struct {
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
}

func NewAddressUseCase(
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
) *AddressUseCase {
	return &AddressUseCase{
		addressRepo: addressRepo,
		userRepo:    userRepo,
	}
}

type AddressRequest struct {
	Street  *string `json:"street" binding:"omitempty,max=100"`
	City    string  `json:"city" binding:"required,max=50"`
	State   string  `json:"state" binding:"required,max=50"`
	Country string  `json:"country" binding:"required,max=50"`
}

// Add creates an address and attaches it to the user's account.
func (uc *AddressUseCase) Add(ctx context.Context, userID int, req *AddressRequest) (*domain.Address, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	address := &domain.Address{
		Street:  req.Street,
		City:    req.City,
		State:   req.State,
		Country: req.Country,
	}
	if err := uc.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	user.AddressID = &address.ID
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to link address to user: %w", err)
	}
	return address, nil
}

func (uc *AddressUseCase) GetByID(ctx context.Context, id int) (*domain.Address, error) {
	return uc.addressRepo.GetByID(ctx, id)
}

func (uc *AddressUseCase) GetAll(ctx context.Context) ([]*domain.Address, error) {
	return uc.addressRepo.GetAll(ctx)
}

func (uc *AddressUseCase) Update(ctx context.Context, id int, req *AddressRequest) (*domain.Address, error) {
	address, err := uc.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	address.Street = req.Street
	address.City = req.City
	address.State = req.State
	address.Country = req.Country
	if err := uc.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (uc *AddressUseCase) DeleteByID(ctx context.Context, id int) error {
	return uc.addressRepo.Delete(ctx, id)
}
