package game

import "context"

// Service encapsulates game operations used by the handler layer. It is a
// thin pass-through over a Repository, injected so handlers never touch a
// store handle directly.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) List(ctx context.Context) ([]Game, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*Game, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, g *Game) error {
	return s.repo.Create(ctx, g)
}

func (s *Service) Update(ctx context.Context, id int, u *Update) (*Game, error) {
	return s.repo.Update(ctx, id, u)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
