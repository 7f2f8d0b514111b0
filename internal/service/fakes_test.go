package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/mailer"
	"event-management-be/internal/pkg/payment"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// fakeDB is an in-memory stand-in for the gorm-backed unit of work. It understands the
// specifications the services build.
type fakeDB struct {
	mu           sync.Mutex
	users        []*entity.User
	articles     []*entity.Article
	events       []*entity.Event
	customers    []*entity.Customer
	transactions []*entity.Transaction
	activityLogs []*entity.ActivityLog

	// Errors injected into the next matching write.
	createErr map[string]error
	deleteErr map[string]error
}

func newFakeDB() *fakeDB {
	return &fakeDB{createErr: map[string]error{}, deleteErr: map[string]error{}}
}

func (f *fakeDB) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUoW{db: f}
}

type fakeUoW struct {
	db *fakeDB
}

func (u *fakeUoW) Begin(ctx context.Context) error { return nil }
func (u *fakeUoW) Commit() error                   { return nil }
func (u *fakeUoW) Rollback() error                 { return nil }

func (u *fakeUoW) UserRepository() contract.UserRepository {
	return &fakeUserRepo{table: newTable(u.db, &u.db.users, "users", userRow)}
}
func (u *fakeUoW) ArticleRepository() contract.ArticleRepository {
	return &fakeArticleRepo{table: newTable(u.db, &u.db.articles, "articles", articleRow)}
}
func (u *fakeUoW) EventRepository() contract.EventRepository {
	return &fakeEventRepo{table: newTable(u.db, &u.db.events, "events", eventRow)}
}
func (u *fakeUoW) CustomerRepository() contract.CustomerRepository {
	return &fakeCustomerRepo{table: newTable(u.db, &u.db.customers, "customers", customerRow)}
}
func (u *fakeUoW) TransactionRepository() contract.TransactionRepository {
	return &fakeTransactionRepo{table: newTable(u.db, &u.db.transactions, "transactions", transactionRow)}
}
func (u *fakeUoW) ActivityLogRepository() contract.ActivityLogRepository {
	return &fakeActivityLogRepo{db: u.db}
}

// table is a generic row set filtered by specifications.
type table[T any] struct {
	db     *fakeDB
	rows   *[]*T
	name   string
	fields func(*T) map[string]interface{}
}

func newTable[T any](db *fakeDB, rows *[]*T, name string, fields func(*T) map[string]interface{}) *table[T] {
	return &table[T]{db: db, rows: rows, name: name, fields: fields}
}

func (t *table[T]) idOf(row *T) uuid.UUID {
	return t.fields(row)["id"].(uuid.UUID)
}

func (t *table[T]) create(row *T) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if err := t.db.createErr[t.name]; err != nil {
		delete(t.db.createErr, t.name)
		return err
	}
	clone := *row
	*t.rows = append(*t.rows, &clone)
	return nil
}

func (t *table[T]) update(row *T) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	for i, r := range *t.rows {
		if t.idOf(r) == t.idOf(row) {
			clone := *row
			(*t.rows)[i] = &clone
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (t *table[T]) delete(id uuid.UUID) error {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()
	if err := t.db.deleteErr[t.name]; err != nil {
		delete(t.db.deleteErr, t.name)
		return err
	}
	kept := (*t.rows)[:0]
	for _, r := range *t.rows {
		if t.idOf(r) != id {
			kept = append(kept, r)
		}
	}
	*t.rows = kept
	return nil
}

func (t *table[T]) find(specs ...specification.Specification) []*T {
	t.db.mu.Lock()
	defer t.db.mu.Unlock()

	var out []*T
	for _, r := range *t.rows {
		if matchAll(t.fields(r), specs) {
			clone := *r
			out = append(out, &clone)
		}
	}

	for _, s := range specs {
		if o, ok := s.(specification.OrderBy); ok {
			sort.SliceStable(out, func(i, j int) bool {
				less := lessValue(t.fields(out[i])[o.Field], t.fields(out[j])[o.Field])
				if o.Desc {
					return lessValue(t.fields(out[j])[o.Field], t.fields(out[i])[o.Field])
				}
				return less
			})
		}
	}
	for _, s := range specs {
		if p, ok := s.(specification.Pagination); ok {
			if p.Offset >= len(out) {
				return nil
			}
			end := p.Offset + p.Limit
			if end > len(out) {
				end = len(out)
			}
			out = out[p.Offset:end]
		}
	}
	return out
}

func (t *table[T]) findOne(specs ...specification.Specification) *T {
	rows := t.find(specs...)
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func matchAll(fields map[string]interface{}, specs []specification.Specification) bool {
	for _, s := range specs {
		switch spec := s.(type) {
		case specification.ByID:
			if fields["id"] != spec.ID {
				return false
			}
		case specification.ByEmail:
			if fields["email"] != spec.Email {
				return false
			}
		case specification.FilterBy:
			if fmt.Sprint(fields[spec.Field]) != fmt.Sprint(spec.Value) {
				return false
			}
		case specification.Contains:
			v := strings.ToLower(fmt.Sprint(fields[spec.Field]))
			if !strings.Contains(v, strings.ToLower(spec.Value)) {
				return false
			}
		case specification.ActiveOrderFor:
			if fields["customer_id"] != spec.CustomerID || fields["event_id"] != spec.EventID ||
				fields["status_ordered"] != string(entity.OrderStatusOrder) {
				return false
			}
		}
	}
	return true
}

func lessValue(a, b interface{}) bool {
	if ta, ok := a.(time.Time); ok {
		return ta.Before(b.(time.Time))
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func userRow(u *entity.User) map[string]interface{} {
	return map[string]interface{}{"id": u.Id, "email": u.Email, "created_at": u.CreatedAt}
}

func articleRow(a *entity.Article) map[string]interface{} {
	return map[string]interface{}{"id": a.Id, "title": a.Title, "author": a.Author, "created_at": a.CreatedAt}
}

func eventRow(e *entity.Event) map[string]interface{} {
	return map[string]interface{}{"id": e.Id, "name_event": e.NameEvent, "start_date": e.StartDate, "created_at": e.CreatedAt}
}

func customerRow(c *entity.Customer) map[string]interface{} {
	return map[string]interface{}{"id": c.Id, "email": c.Email, "username": c.Username, "created_at": c.CreatedAt}
}

func transactionRow(t *entity.Transaction) map[string]interface{} {
	return map[string]interface{}{
		"id":             t.Id,
		"customer_id":    t.CustomerId,
		"event_id":       t.EventId,
		"status_ordered": string(t.StatusOrdered),
		"status_payment": string(t.StatusPayment),
		"created_at":     t.CreatedAt,
	}
}

type fakeUserRepo struct{ table *table[entity.User] }

func (r *fakeUserRepo) Create(ctx context.Context, u *entity.User) error { return r.table.create(u) }
func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	return r.table.findOne(specs...), nil
}

type fakeArticleRepo struct{ table *table[entity.Article] }

func (r *fakeArticleRepo) Create(ctx context.Context, a *entity.Article) error { return r.table.create(a) }
func (r *fakeArticleRepo) Update(ctx context.Context, a *entity.Article) error { return r.table.update(a) }
func (r *fakeArticleRepo) Delete(ctx context.Context, id uuid.UUID) error      { return r.table.delete(id) }
func (r *fakeArticleRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	return r.table.findOne(specs...), nil
}
func (r *fakeArticleRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error) {
	return r.table.find(specs...), nil
}
func (r *fakeArticleRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.table.find(specs...))), nil
}

type fakeEventRepo struct{ table *table[entity.Event] }

func (r *fakeEventRepo) Create(ctx context.Context, e *entity.Event) error { return r.table.create(e) }
func (r *fakeEventRepo) Update(ctx context.Context, e *entity.Event) error { return r.table.update(e) }
func (r *fakeEventRepo) Delete(ctx context.Context, id uuid.UUID) error    { return r.table.delete(id) }
func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Event, error) {
	return r.table.findOne(specs...), nil
}
func (r *fakeEventRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Event, error) {
	return r.table.find(specs...), nil
}
func (r *fakeEventRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.table.find(specs...))), nil
}

type fakeCustomerRepo struct{ table *table[entity.Customer] }

func (r *fakeCustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	return r.table.create(c)
}
func (r *fakeCustomerRepo) Update(ctx context.Context, c *entity.Customer) error {
	return r.table.update(c)
}
func (r *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error { return r.table.delete(id) }
func (r *fakeCustomerRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Customer, error) {
	return r.table.findOne(specs...), nil
}
func (r *fakeCustomerRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Customer, error) {
	return r.table.find(specs...), nil
}
func (r *fakeCustomerRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.table.find(specs...))), nil
}

type fakeTransactionRepo struct{ table *table[entity.Transaction] }

func (r *fakeTransactionRepo) Create(ctx context.Context, t *entity.Transaction) error {
	return r.table.create(t)
}
func (r *fakeTransactionRepo) Update(ctx context.Context, t *entity.Transaction) error {
	return r.table.update(t)
}
func (r *fakeTransactionRepo) UpdateState(ctx context.Context, t *entity.Transaction) error {
	return r.table.update(t)
}
func (r *fakeTransactionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.table.delete(id)
}
func (r *fakeTransactionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Transaction, error) {
	return r.table.findOne(specs...), nil
}
func (r *fakeTransactionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Transaction, error) {
	return r.table.find(specs...), nil
}
func (r *fakeTransactionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.table.find(specs...))), nil
}

type fakeActivityLogRepo struct{ db *fakeDB }

func (r *fakeActivityLogRepo) Create(ctx context.Context, l *entity.ActivityLog) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if err := r.db.createErr["activity_logs"]; err != nil {
		delete(r.db.createErr, "activity_logs")
		return err
	}
	clone := *l
	r.db.activityLogs = append(r.db.activityLogs, &clone)
	return nil
}

func (f *fakeDB) logCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.activityLogs)
}

// Collaborators mocked with testify.

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) Publish(ctx context.Context, event events.Event) error {
	return m.Called(ctx, event).Error(0)
}

type mockMailer struct{ mock.Mock }

func (m *mockMailer) SendPaymentReceipt(r mailer.Receipt) error {
	return m.Called(r).Error(0)
}

type mockGateway struct{ mock.Mock }

func (m *mockGateway) CreateCheckout(ctx context.Context, req payment.CheckoutRequest) (*payment.CheckoutSession, error) {
	args := m.Called(ctx, req)
	if s, ok := args.Get(0).(*payment.CheckoutSession); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}
