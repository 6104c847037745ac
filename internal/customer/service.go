package customer

import "context"

// Service encapsulates customer-account operations used by the handler layer.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]Customer, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*Customer, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, c *Customer) error {
	return s.repo.Create(ctx, c)
}

func (s *Service) Update(ctx context.Context, id int, u *Update) (*Customer, error) {
	return s.repo.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
