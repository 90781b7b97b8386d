package interfaces

import "context"

// RepositoryProvider hands out repositories bound to the active
// transaction. A provider is valid only inside the Do callback that
// created it.
type RepositoryProvider interface {
	Orders() IOrderRepository
	Products() IProductRepository
	Devices() IDeviceRepository
	Appointments() IAppointmentRepository
	Users() IUserRepository
	Audit() IAuditRepository
}

// IUnitOfWork brackets a multi-aggregate write in one database
// transaction on one pinned pooled connection. Every repository call made
// through the provider observes the others' uncommitted writes and is
// invisible to concurrent units of work until commit.
//
// An error returned by fn rolls the transaction back and is returned
// wrapped; a nil return commits. Exactly one of the two happens per call,
// so a stray commit-without-begin cannot be expressed.
type IUnitOfWork interface {
	Do(ctx context.Context, fn func(provider RepositoryProvider) error) error
}
