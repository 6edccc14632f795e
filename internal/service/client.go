package service

import (
	"context"
	"fmt"

	"autonom-backend/internal/domain"
	"autonom-backend/internal/logger"
	"autonom-backend/internal/report"
	"autonom-backend/internal/repository"
	"autonom-backend/internal/validation"
)

type clientService struct {
	clientRepo repository.ClientRepository
}

func NewClientService(clientRepo repository.ClientRepository) ClientService {
	return &clientService{clientRepo: clientRepo}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if err := checkIntake(c); err != nil {
		return err
	}
	c.CNP = validation.StripNonDigits(c.CNP)

	if err := s.clientRepo.Create(ctx, c); err != nil {
		return err
	}
	logger.Info("client created", "client_id", c.ID, "full_name", c.FullName)
	return nil
}

func (s *clientService) Get(ctx context.Context, id int32) (*domain.Client, error) {
	return s.clientRepo.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context, query string) ([]domain.Client, error) {
	clients, err := s.clientRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return report.Search(clients, query, report.ClientSearchFields), nil
}

func (s *clientService) Update(ctx context.Context, c *domain.Client) error {
	if err := checkIntake(c); err != nil {
		return err
	}
	c.CNP = validation.StripNonDigits(c.CNP)
	return s.clientRepo.Update(ctx, c)
}

func checkIntake(c *domain.Client) error {
	res := validation.CheckClientIntake(validation.ClientIntake{
		FullName:       c.FullName,
		CNP:            c.CNP,
		IDCardNumber:   c.IDCardNumber,
		PassportNumber: c.PassportNumber,
		DriverLicense:  c.DriverLicense,
		Phone:          c.Phone,
		Email:          c.Email,
	})
	if !res.OK {
		return fmt.Errorf("%w: %s", domain.ErrValidation, res.FirstError)
	}
	return nil
}
