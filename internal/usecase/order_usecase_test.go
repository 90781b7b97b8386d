package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"atelier_backend/internal/domain/entities"
	"atelier_backend/internal/usecase/interfaces"
	mock_interfaces "atelier_backend/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

// fakeProvider hands the test's mocks to code running inside a unit of
// work bracket.
type fakeProvider struct {
	orders       interfaces.IOrderRepository
	products     interfaces.IProductRepository
	devices      interfaces.IDeviceRepository
	appointments interfaces.IAppointmentRepository
	users        interfaces.IUserRepository
	audit        interfaces.IAuditRepository
}

func (f fakeProvider) Orders() interfaces.IOrderRepository             { return f.orders }
func (f fakeProvider) Products() interfaces.IProductRepository         { return f.products }
func (f fakeProvider) Devices() interfaces.IDeviceRepository           { return f.devices }
func (f fakeProvider) Appointments() interfaces.IAppointmentRepository { return f.appointments }
func (f fakeProvider) Users() interfaces.IUserRepository               { return f.users }
func (f fakeProvider) Audit() interfaces.IAuditRepository              { return f.audit }

// fakeUnitOfWork mirrors the pgx implementation's contract: fn error means
// rollback plus a wrapped error, nil means commit. rolledBack records which
// outcome happened.
type fakeUnitOfWork struct {
	provider   fakeProvider
	committed  bool
	rolledBack bool
}

func (f *fakeUnitOfWork) Do(_ context.Context, fn func(interfaces.RepositoryProvider) error) error {
	if err := fn(f.provider); err != nil {
		f.rolledBack = true
		return fmt.Errorf("transaction rolled back: %w", err)
	}
	f.committed = true
	return nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func int64p(v int64) *int64 { return &v }

func TestOrderUseCase_CreateOrder(t *testing.T) {
	t.Run("empty order", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, testLogger())
		_, err := uc.CreateOrder(context.Background(), 1, nil, "")
		if !errors.Is(err, ErrEmptyOrder) {
			t.Fatalf("expected ErrEmptyOrder, got %v", err)
		}
	})

	t.Run("line item without product or device", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, testLogger())
		_, err := uc.CreateOrder(context.Background(), 1, []LineItem{{Quantity: 1, UnitPrice: 5}}, "")
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("line item with both product and device", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, testLogger())
		items := []LineItem{{ProductID: int64p(1), DeviceID: int64p(2), Quantity: 1, UnitPrice: 5}}
		_, err := uc.CreateOrder(context.Background(), 1, items, "")
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil, nil, nil, testLogger())
		items := []LineItem{{ProductID: int64p(1), Quantity: 0, UnitPrice: 5}}
		_, err := uc.CreateOrder(context.Background(), 1, items, "")
		if !errors.Is(err, ErrInvalidLineItem) {
			t.Fatalf("expected ErrInvalidLineItem, got %v", err)
		}
	})

	t.Run("success computes total and decrements stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		devices := mock_interfaces.NewMockIDeviceRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products, devices: devices}}
		uc := NewOrderUseCase(uow, orders, nil, nil, testLogger())

		items := []LineItem{
			{ProductID: int64p(7), Quantity: 2, UnitPrice: 10.00},
			{DeviceID: int64p(3), Quantity: 1, UnitPrice: 5.50},
		}

		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Total != 25.50 {
					t.Fatalf("expected total 25.50, got %v", o.Total)
				}
				if o.PaymentStatus != entities.PaymentStatusPending {
					t.Fatalf("expected pending payment status, got %v", o.PaymentStatus)
				}
				o.ID = 42
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderDetail{})).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) {
				if d.OrderID != 42 {
					t.Fatalf("detail bound to order %d, want 42", d.OrderID)
				}
				return d, nil
			},
		).Times(2)
		products.EXPECT().AdjustStock(gomock.Any(), int64(7), -2).Return(nil)
		devices.EXPECT().AdjustStock(gomock.Any(), int64(3), -1).Return(nil)

		order, err := uc.CreateOrder(context.Background(), 1, items, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != 42 || len(order.Details) != 2 {
			t.Fatalf("unexpected order: %+v", order)
		}
		if !uow.committed {
			t.Fatal("expected commit")
		}
	})

	t.Run("insufficient stock rolls everything back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, nil, nil, testLogger())

		items := []LineItem{{ProductID: int64p(7), Quantity: 5, UnitPrice: 10}}

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 42
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		)
		products.EXPECT().AdjustStock(gomock.Any(), int64(7), -5).Return(interfaces.ErrStockConflict)
		products.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Product{ID: 7, Stock: 2}, nil)

		_, err := uc.CreateOrder(context.Background(), 1, items, "")
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if !uow.rolledBack {
			t.Fatal("expected rollback")
		}
	})

	t.Run("failure on the second of three items discards the first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, nil, nil, testLogger())

		items := []LineItem{
			{ProductID: int64p(1), Quantity: 1, UnitPrice: 10},
			{ProductID: int64p(2), Quantity: 3, UnitPrice: 20},
			{ProductID: int64p(3), Quantity: 1, UnitPrice: 30},
		}

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 42
				return o, nil
			},
		)
		// The first item goes through in full, the second fails on its
		// stock decrement, the third must never be reached.
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		).Times(2)
		products.EXPECT().AdjustStock(gomock.Any(), int64(1), -1).Return(nil)
		products.EXPECT().AdjustStock(gomock.Any(), int64(2), -3).Return(interfaces.ErrStockConflict)
		products.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Product{ID: 2, Stock: 1}, nil)

		_, err := uc.CreateOrder(context.Background(), 1, items, "")
		if !errors.Is(err, ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if !uow.rolledBack {
			t.Fatal("the first item's inserts must be rolled back with the rest")
		}
		if uow.committed {
			t.Fatal("nothing may commit")
		}
	})

	t.Run("unknown product surfaces as not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, nil, nil, testLogger())

		items := []LineItem{{ProductID: int64p(99), Quantity: 1, UnitPrice: 10}}

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 1
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		)
		products.EXPECT().AdjustStock(gomock.Any(), int64(99), -1).Return(interfaces.ErrStockConflict)
		products.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Product{}, nil)

		_, err := uc.CreateOrder(context.Background(), 1, items, "")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
		if !uow.rolledBack {
			t.Fatal("expected rollback")
		}
	})

	t.Run("mail failure does not undo the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		mailer := mock_interfaces.NewMockIMailer(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, mailer, nil, testLogger())

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 8
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		)
		products.EXPECT().AdjustStock(gomock.Any(), int64(7), -1).Return(nil)
		mailer.EXPECT().Send(gomock.Any(), "client@example.com", gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

		order, err := uc.CreateOrder(context.Background(), 1, []LineItem{{ProductID: int64p(7), Quantity: 1, UnitPrice: 10}}, "client@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != 8 {
			t.Fatalf("unexpected order: %+v", order)
		}
		if !uow.committed {
			t.Fatal("expected commit despite mail failure")
		}
	})
}

func TestOrderUseCase_CreateAndPay(t *testing.T) {
	t.Run("approved payment marks order paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, nil, gateway, testLogger())

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 11
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		)
		products.EXPECT().AdjustStock(gomock.Any(), int64(7), -1).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", nil, nil)
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(11), entities.PaymentStatusPaid).Return(
			entities.Order{ID: 11, PaymentStatus: entities.PaymentStatusPaid}, nil)

		order, err := uc.CreateAndPay(context.Background(), 1, []LineItem{{ProductID: int64p(7), Quantity: 1, UnitPrice: 10}}, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentStatus != entities.PaymentStatusPaid {
			t.Fatalf("expected paid, got %v", order.PaymentStatus)
		}
	})

	t.Run("gateway failure keeps the order, marked failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uow := &fakeUnitOfWork{provider: fakeProvider{orders: orders, products: products}}
		uc := NewOrderUseCase(uow, orders, nil, gateway, testLogger())

		orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				o.ID = 12
				return o, nil
			},
		)
		orders.EXPECT().AddDetail(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d entities.OrderDetail) (entities.OrderDetail, error) { return d, nil },
		)
		products.EXPECT().AdjustStock(gomock.Any(), int64(7), -1).Return(nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("provider down"))
		orders.EXPECT().UpdatePaymentStatus(gomock.Any(), int64(12), entities.PaymentStatusFailed).Return(
			entities.Order{ID: 12, PaymentStatus: entities.PaymentStatusFailed}, nil)

		order, err := uc.CreateAndPay(context.Background(), 1, []LineItem{{ProductID: int64p(7), Quantity: 1, UnitPrice: 10}}, "", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.PaymentStatus != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %v", order.PaymentStatus)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("missing order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(nil, orders, nil, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), 5)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(nil, orders, nil, nil, testLogger())

		orders.EXPECT().GetByID(gomock.Any(), int64(5)).Return(entities.Order{ID: 5, Total: 10}, nil)

		o, err := uc.GetByID(context.Background(), 5)
		if err != nil || o.ID != 5 {
			t.Fatalf("unexpected result: %+v, %v", o, err)
		}
	})
}
