package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/contactbook/backend/internal/db"
	"github.com/contactbook/backend/internal/model"
)

const defaultPageSize = 10

type ContactService struct {
	contacts ContactStore
}

func NewContactService(contacts ContactStore) *ContactService {
	return &ContactService{contacts: contacts}
}

func (s *ContactService) Create(ctx context.Context, user *model.UserAccount, req model.CreateContactRequest) (model.ContactResponse, error) {
	contact := &model.Contact{
		ID:        uuid.NewString(),
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contacts.CreateContact(ctx, contact); err != nil {
		return model.ContactResponse{}, fmt.Errorf("create contact: %w", err)
	}
	return contact.Response(), nil
}

func (s *ContactService) Get(ctx context.Context, user *model.UserAccount, id string) (model.ContactResponse, error) {
	contact, err := s.contacts.GetContact(ctx, user.Username, id)
	if err != nil {
		if db.IsNoRows(err) {
			return model.ContactResponse{}, NotFound("Contact not found")
		}
		return model.ContactResponse{}, fmt.Errorf("get contact: %w", err)
	}
	return contact.Response(), nil
}

func (s *ContactService) Update(ctx context.Context, user *model.UserAccount, id string, req model.UpdateContactRequest) (model.ContactResponse, error) {
	contact := &model.Contact{
		ID:        id,
		Username:  user.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.contacts.UpdateContact(ctx, contact); err != nil {
		if db.IsNoRows(err) {
			return model.ContactResponse{}, NotFound("Contact not found")
		}
		return model.ContactResponse{}, fmt.Errorf("update contact: %w", err)
	}
	return contact.Response(), nil
}

func (s *ContactService) Delete(ctx context.Context, user *model.UserAccount, id string) error {
	if err := s.contacts.DeleteContact(ctx, user.Username, id); err != nil {
		if db.IsNoRows(err) {
			return NotFound("Contact not found")
		}
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}

// Search returns one page of the user's contacts. Pages are 1-based; out of
// range page numbers are clamped rather than rejected.
func (s *ContactService) Search(ctx context.Context, user *model.UserAccount, f model.ContactFilter, page, size int) ([]model.ContactResponse, model.PagingResponse, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}

	contacts, total, err := s.contacts.SearchContacts(ctx, user.Username, f, size, (page-1)*size)
	if err != nil {
		return nil, model.PagingResponse{}, fmt.Errorf("search contacts: %w", err)
	}

	responses := make([]model.ContactResponse, 0, len(contacts))
	for i := range contacts {
		responses = append(responses, contacts[i].Response())
	}

	totalPage := (total + size - 1) / size
	paging := model.PagingResponse{
		CurrentPage: page,
		TotalPage:   totalPage,
		Size:        size,
	}
	return responses, paging, nil
}
