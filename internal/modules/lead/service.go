package lead

import (
	"context"
	"errors"
	"strings"

	"tyltyhub/internal/domain"
	"tyltyhub/internal/pkg/leadform"
	"tyltyhub/internal/repository"
)

type Service struct {
	leads LeadRepository
}

func NewService(leads LeadRepository) *Service {
	return &Service{leads: leads}
}

// CreateLead re-validates the submission server-side (the browser check is
// advisory only), normalizes the WhatsApp number to digits and inserts the
// lead. Returns *ValidationError for bad input, ErrDuplicateEmail when the
// email is already registered, and the storage error otherwise.
func (s *Service) CreateLead(ctx context.Context, req SaveLeadRequest, ip, userAgent string) (*domain.Lead, error) {
	nome := strings.TrimSpace(req.NomeCompleto)
	email := strings.TrimSpace(req.Email)
	whatsapp := strings.TrimSpace(req.Whatsapp)

	if nome == "" || email == "" || whatsapp == "" {
		return nil, &ValidationError{}
	}

	if fieldErrs := leadform.Check(nome, email, whatsapp); fieldErrs != nil {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	l := &domain.Lead{
		NomeCompleto: nome,
		Email:        email,
		Whatsapp:     leadform.Digits(whatsapp),
		IPAddress:    ip,
		UserAgent:    userAgent,
	}

	if err := s.leads.Create(ctx, l); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	return l, nil
}

// ListLeads returns every stored lead, newest first.
func (s *Service) ListLeads(ctx context.Context) ([]domain.Lead, error) {
	return s.leads.List(ctx)
}

func (s *Service) CountLeads(ctx context.Context) (int64, error) {
	return s.leads.Count(ctx)
}
