package repository

import "context"

// Repositories agrupa los puertos de persistencia. Dentro de TxRunner.Run todos comparten la transacción.
type Repositories struct {
	Users       UserRepository
	Categories  CategoryRepository
	Products    ProductRepository
	Complements ComplementRepository
	Orders      OrderRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback en otro caso.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repositories) error) error
}

// Store TxRunner con acceso directo a repositorios para lecturas fuera de transacción.
type Store interface {
	TxRunner
	Repositories() Repositories
}
