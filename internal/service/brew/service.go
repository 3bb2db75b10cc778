package brew

import (
	"context"
	"strings"

	"brewshop/internal/domain"
	brewrepo "brewshop/internal/repository/brew"
)

type Service struct {
	repo     brewrepo.Repository
	fileHost string
}

// New returns a catalog service. Relative image URLs are served from fileHost.
func New(repo brewrepo.Repository, fileHost string) *Service {
	return &Service{repo: repo, fileHost: strings.TrimRight(fileHost, "/")}
}

func (s *Service) List(ctx context.Context) ([]domain.Brew, error) {
	brews, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range brews {
		brews[i].Image.URL = s.imageURL(brews[i].Image.URL)
	}
	return brews, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Brew, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	b.Image.URL = s.imageURL(b.Image.URL)
	return b, nil
}

func (s *Service) imageURL(path string) string {
	if path == "" || s.fileHost == "" || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.fileHost + path
}
