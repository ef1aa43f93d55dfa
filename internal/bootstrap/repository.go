package bootstrap

import (
	barInfra "github.com/muhammadchandra19/stock-data/internal/infrastructure/postgresql/bar"
)

// Repository is the repository set of the generator.
type Repository struct {
	BarRepository barInfra.BarRepository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	if b.Postgres == nil {
		return
	}
	b.Repository.BarRepository = barInfra.NewRepository(b.Postgres, b.Logger)
}
