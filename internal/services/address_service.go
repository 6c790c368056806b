package services

import (
	"context"
	"errors"

	"golang-jewelry-backend/internal/models"
	"golang-jewelry-backend/internal/repositories"

	"github.com/google/uuid"
)

type AddressService struct {
	addressRepo repositories.AddressRepository
}

func NewAddressService(addressRepo repositories.AddressRepository) *AddressService {
	return &AddressService{
		addressRepo: addressRepo,
	}
}

type CreateAddressRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Street    string `json:"street" binding:"required"`
	City      string `json:"city" binding:"required"`
	State     string `json:"state" binding:"required"`
	Pincode   string `json:"pincode" binding:"required"`
	Country   string `json:"country" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

type UpdateAddressRequest struct {
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	Street    *string `json:"street"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	Pincode   *string `json:"pincode"`
	Country   *string `json:"country"`
	IsDefault *bool   `json:"is_default"`
}

func (s *AddressService) CreateAddress(ctx context.Context, userID string, req *CreateAddressRequest) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	// Only one default address per user
	if req.IsDefault {
		if err := s.addressRepo.UnsetDefaultAddresses(ctx, userUUID); err != nil {
			return nil, err
		}
	}

	address := &models.Address{
		UserID:    userUUID,
		FullName:  req.FullName,
		Phone:     req.Phone,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Pincode:   req.Pincode,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *AddressService) GetAddresses(ctx context.Context, userID string) ([]models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	return s.addressRepo.GetByUserID(ctx, userUUID)
}

func (s *AddressService) UpdateAddress(ctx context.Context, userID, addressID string, req *UpdateAddressRequest) (*models.Address, error) {
	address, err := s.getOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		address.FullName = *req.FullName
	}
	if req.Phone != nil {
		address.Phone = *req.Phone
	}
	if req.Street != nil {
		address.Street = *req.Street
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.State != nil {
		address.State = *req.State
	}
	if req.Pincode != nil {
		address.Pincode = *req.Pincode
	}
	if req.Country != nil {
		address.Country = *req.Country
	}
	if req.IsDefault != nil {
		if *req.IsDefault && !address.IsDefault {
			if err := s.addressRepo.UnsetDefaultAddresses(ctx, address.UserID); err != nil {
				return nil, err
			}
		}
		address.IsDefault = *req.IsDefault
	}

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, err
	}

	return address, nil
}

func (s *AddressService) DeleteAddress(ctx context.Context, userID, addressID string) error {
	address, err := s.getOwnedAddress(ctx, userID, addressID)
	if err != nil {
		return err
	}
	return s.addressRepo.Delete(ctx, address.ID)
}

func (s *AddressService) getOwnedAddress(ctx context.Context, userID, addressID string) (*models.Address, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, errors.New("invalid user ID")
	}

	id, err := uuid.Parse(addressID)
	if err != nil {
		return nil, errors.New("invalid address ID")
	}

	address, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("address not found")
	}
	if address.UserID != userUUID {
		return nil, errors.New("address not found")
	}

	return address, nil
}
