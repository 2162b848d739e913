package profile

import (
	"context"

	"github.com/clinicdesk/calendar/pkg/model"
)

func NewService(repository Repository) Service {
	return Service{repository}
}

type Service struct {
	repository Repository
}

func (s Service) FindAll(ctx context.Context) ([]model.UserProfile, error) {
	return s.repository.FindAll(ctx)
}

func (s Service) FindByID(ctx context.Context, id uint) (model.UserProfile, error) {
	return s.repository.FindByID(ctx, id)
}

func (s Service) Create(ctx context.Context, profile model.UserProfile) (model.UserProfile, error) {
	profile.ID = 0
	err := s.repository.Create(ctx, &profile)
	return profile, err
}

func (s Service) Update(ctx context.Context, id uint, profile model.UserProfile) (model.UserProfile, error) {
	return s.repository.Update(ctx, id, profile)
}
