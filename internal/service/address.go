package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/contactbook/backend/internal/db"
	"github.com/contactbook/backend/internal/model"
)

type AddressService struct {
	contacts  ContactStore
	addresses AddressStore
}

func NewAddressService(contacts ContactStore, addresses AddressStore) *AddressService {
	return &AddressService{contacts: contacts, addresses: addresses}
}

// resolveContact enforces ownership: every address operation first resolves
// the contact under the calling user.
func (s *AddressService) resolveContact(ctx context.Context, user *model.UserAccount, contactID string) (*model.Contact, error) {
	contact, err := s.contacts.GetContact(ctx, user.Username, contactID)
	if err != nil {
		if db.IsNoRows(err) {
			return nil, NotFound("Contact not found")
		}
		return nil, fmt.Errorf("get contact: %w", err)
	}
	return contact, nil
}

func (s *AddressService) Create(ctx context.Context, user *model.UserAccount, contactID string, req model.CreateAddressRequest) (model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return model.AddressResponse{}, err
	}

	address := &model.Address{
		ID:         uuid.NewString(),
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addresses.CreateAddress(ctx, address); err != nil {
		return model.AddressResponse{}, fmt.Errorf("create address: %w", err)
	}
	return address.Response(), nil
}

func (s *AddressService) Get(ctx context.Context, user *model.UserAccount, contactID, addressID string) (model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return model.AddressResponse{}, err
	}

	address, err := s.addresses.GetAddress(ctx, contact.ID, addressID)
	if err != nil {
		if db.IsNoRows(err) {
			return model.AddressResponse{}, NotFound("Address not found")
		}
		return model.AddressResponse{}, fmt.Errorf("get address: %w", err)
	}
	return address.Response(), nil
}

func (s *AddressService) List(ctx context.Context, user *model.UserAccount, contactID string) ([]model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return nil, err
	}

	addresses, err := s.addresses.ListAddresses(ctx, contact.ID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	responses := make([]model.AddressResponse, 0, len(addresses))
	for i := range addresses {
		responses = append(responses, addresses[i].Response())
	}
	return responses, nil
}

func (s *AddressService) Update(ctx context.Context, user *model.UserAccount, contactID, addressID string, req model.UpdateAddressRequest) (model.AddressResponse, error) {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return model.AddressResponse{}, err
	}

	address := &model.Address{
		ID:         addressID,
		ContactID:  contact.ID,
		Street:     req.Street,
		City:       req.City,
		Province:   req.Province,
		Country:    req.Country,
		PostalCode: req.PostalCode,
	}
	if err := s.addresses.UpdateAddress(ctx, address); err != nil {
		if db.IsNoRows(err) {
			return model.AddressResponse{}, NotFound("Address not found")
		}
		return model.AddressResponse{}, fmt.Errorf("update address: %w", err)
	}
	return address.Response(), nil
}

func (s *AddressService) Delete(ctx context.Context, user *model.UserAccount, contactID, addressID string) error {
	contact, err := s.resolveContact(ctx, user, contactID)
	if err != nil {
		return err
	}

	if err := s.addresses.DeleteAddress(ctx, contact.ID, addressID); err != nil {
		if db.IsNoRows(err) {
			return NotFound("Address not found")
		}
		return fmt.Errorf("delete address: %w", err)
	}
	return nil
}
