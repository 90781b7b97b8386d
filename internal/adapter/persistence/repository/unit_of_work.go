package repository

import (
	"context"
	"errors"
	"fmt"

	"atelier_backend/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// PgxUnitOfWork brackets a multi-aggregate write in one transaction on one
// pinned pooled connection.
//
// Do acquires a connection, begins a transaction, and hands the callback a
// provider whose repositories all run on that transaction. They therefore
// observe each other's uncommitted writes and stay invisible to concurrent
// units of work until commit. An error from the callback rolls everything
// back and comes back wrapped; commit and rollback are private, so exactly
// one of them happens per call.
//
// There is no retry on serialization failure: the database serializes
// conflicting stock updates at its default isolation level and a conflict
// surfaces to the caller as-is.

type PgxUnitOfWork struct {
	pool *pgxpool.Pool
	log  *logrus.Logger
}

var _ interfaces.IUnitOfWork = (*PgxUnitOfWork)(nil)

func NewPgxUnitOfWork(pool *pgxpool.Pool, log *logrus.Logger) *PgxUnitOfWork {
	return &PgxUnitOfWork{pool: pool, log: log}
}

func (u *PgxUnitOfWork) Do(ctx context.Context, fn func(provider interfaces.RepositoryProvider) error) error {
	conn, err := u.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Release()

	tx, err := conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	if err := fn(newTxProvider(tx, u.log)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			u.log.WithError(rbErr).Error("transaction rollback failed")
		}
		return fmt.Errorf("transaction rolled back: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// txProvider hands out repositories bound to one transaction. A fresh set
// is built per unit of work and discarded with it.
type txProvider struct {
	orders       *OrderPostgresRepository
	products     *ProductPostgresRepository
	devices      *DevicePostgresRepository
	appointments *AppointmentPostgresRepository
	users        *UserPostgresRepository
	audit        *AuditPostgresRepository
}

var _ interfaces.RepositoryProvider = (*txProvider)(nil)

func newTxProvider(tx pgx.Tx, log *logrus.Logger) *txProvider {
	return &txProvider{
		orders:       NewOrderPostgresRepository(tx, log),
		products:     NewProductPostgresRepository(tx, log),
		devices:      NewDevicePostgresRepository(tx, log),
		appointments: NewAppointmentPostgresRepository(tx, log),
		users:        NewUserPostgresRepository(tx),
		audit:        NewAuditPostgresRepository(tx),
	}
}

func (p *txProvider) Orders() interfaces.IOrderRepository             { return p.orders }
func (p *txProvider) Products() interfaces.IProductRepository         { return p.products }
func (p *txProvider) Devices() interfaces.IDeviceRepository           { return p.devices }
func (p *txProvider) Appointments() interfaces.IAppointmentRepository { return p.appointments }
func (p *txProvider) Users() interfaces.IUserRepository               { return p.users }
func (p *txProvider) Audit() interfaces.IAuditRepository              { return p.audit }
