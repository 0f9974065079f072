package services

import (
	"errors"
	"sync"
	"time"

	"buildsurge/internal/domain"
	applog "buildsurge/internal/log"
	"buildsurge/internal/store"
	"buildsurge/internal/validate"
)

// ErrNotFound reports a delete target that is not in the collection.
var ErrNotFound = errors.New("inquiry not found")

// ValidationError carries a message safe to echo back to the caller.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// SubmitInput is the raw, untrusted form payload.
type SubmitInput struct {
	Name     string
	Company  string
	Phone    string
	Email    string
	PipeSize string
	Quantity string
	Message  string
}

// InquiryService validates, persists, lists, and deletes inquiries.
// Every operation does a full load of the collection and, for
// mutations, a full rewrite. A single mutex serializes access so
// concurrent submissions cannot interleave read-modify-write cycles.
type InquiryService struct {
	Store store.Store

	mu sync.Mutex
}

func NewInquiryService(st store.Store) *InquiryService {
	return &InquiryService{Store: st}
}

// load substitutes an empty collection when the store cannot be read.
// That keeps the site accepting inquiries over a corrupt file, at the
// cost of masking the corruption; the error is logged loudly so it is
// at least visible server-side.
func (s *InquiryService) load() []domain.Inquiry {
	list, err := s.Store.Load()
	if err != nil {
		applog.Error(nil, "inquiry.store.load.fail", err, nil)
		return []domain.Inquiry{}
	}
	return list
}

func (s *InquiryService) Submit(in SubmitInput) (domain.Inquiry, error) {
	name, nameOK := validate.Name(in.Name)
	phone, phoneOK := validate.Phone(in.Phone)
	email, emailOK := validate.Email(in.Email)

	if !nameOK || phone == "" || email == "" {
		return domain.Inquiry{}, &ValidationError{Message: "Name, phone, and email are required."}
	}
	if !emailOK {
		return domain.Inquiry{}, &ValidationError{Message: "Please enter a valid email address."}
	}
	if !phoneOK {
		return domain.Inquiry{}, &ValidationError{Message: "Please enter a valid phone number (at least 10 digits)."}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	now := time.Now()

	// Identifier is the creation instant in millis; bump past any
	// existing id so same-millisecond submissions cannot collide.
	id := now.UnixMilli()
	for _, q := range list {
		if q.ID >= id {
			id = q.ID + 1
		}
	}

	inq := domain.Inquiry{
		ID:          id,
		SubmittedAt: now.UTC().Format(time.RFC3339),
		Name:        name,
		Company:     validate.Optional(in.Company),
		Phone:       phone,
		Email:       email,
		PipeSize:    validate.Optional(in.PipeSize),
		Quantity:    validate.Optional(in.Quantity),
		Message:     validate.Optional(in.Message),
		Status:      "new",
	}

	list = append(list, inq)
	if err := s.Store.Save(list); err != nil {
		return domain.Inquiry{}, err
	}
	return inq, nil
}

// List returns the collection newest-first.
func (s *InquiryService) List() []domain.Inquiry {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	out := make([]domain.Inquiry, len(list))
	for i, q := range list {
		out[len(list)-1-i] = q
	}
	return out
}

func (s *InquiryService) Delete(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.load()
	kept := list[:0:0]
	for _, q := range list {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	if len(kept) == len(list) {
		return ErrNotFound
	}
	return s.Store.Save(kept)
}
