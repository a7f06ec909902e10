package service

import (
	"context"

	"zhejiang-tour/internal/repository"
)

// ThemeService exposes the persisted dark-mode preference.
type ThemeService interface {
	DarkMode(ctx context.Context) (bool, error)
	Toggle(ctx context.Context) (bool, error)
}

type themeService struct {
	theme repository.ThemeRepository
}

func NewThemeService(theme repository.ThemeRepository) ThemeService {
	return &themeService{theme: theme}
}

func (s *themeService) DarkMode(ctx context.Context) (bool, error) {
	return s.theme.DarkMode(ctx)
}

func (s *themeService) Toggle(ctx context.Context) (bool, error) {
	dark, err := s.theme.DarkMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.theme.SetDarkMode(ctx, !dark); err != nil {
		return false, err
	}
	return !dark, nil
}
