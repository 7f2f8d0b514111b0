package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/pkg/mailer"
	"event-management-be/internal/pkg/metrics"
	"event-management-be/internal/pkg/payment"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/events"
	"event-management-be/pkg/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var transactionSortable = map[string]bool{
	"created_at":       true,
	"transaction_date": true,
	"payment_date":     true,
	"return_date":      true,
	"status_ordered":   true,
	"status_payment":   true,
}

type ITransactionService interface {
	Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error)
	List(ctx context.Context, req *dto.ListTransactionRequest) (*dto.PaginatedResponse[*dto.TransactionResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error)
	Update(ctx context.Context, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Checkout(ctx context.Context, id uuid.UUID) (*dto.CheckoutResponse, error)
}

type transactionService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	mailer     mailer.IEmailService
	gateway    payment.IPaymentGateway
	log        logger.ILogger
	now        func() time.Time
}

func NewTransactionService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	mailer mailer.IEmailService,
	gateway payment.IPaymentGateway,
	log logger.ILogger,
) ITransactionService {
	return &transactionService{
		uowFactory: uowFactory,
		publisher:  publisher,
		mailer:     mailer,
		gateway:    gateway,
		log:        log,
		now:        time.Now,
	}
}

func (s *transactionService) Create(ctx context.Context, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	customerId, eventId, err := parseTransactionRefs(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	fields := map[string]string{}
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: customerId})
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		fields["customer_id"] = "Invalid Customer ID. Customer does not exist."
	}
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: eventId})
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		fields["event_id"] = "Invalid Event ID. Event does not exist."
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError("Validation error", fields)
	}

	existing, err := uow.TransactionRepository().FindOne(ctx, specification.ActiveOrderFor{
		CustomerID: customerId,
		EventID:    eventId,
	})
	if err != nil {
		return nil, fmt.Errorf("find active order: %w", err)
	}
	if existing != nil {
		return nil, errActiveOrderExists()
	}

	now := s.now()
	tx := &entity.Transaction{
		Id:              uuid.New(),
		CustomerId:      customerId,
		EventId:         eventId,
		TransactionDate: today(now),
		StatusOrdered:   entity.OrderStatusProcess,
		StatusPayment:   entity.PaymentStatusWaiting,
	}
	if err := uow.TransactionRepository().Create(ctx, tx); err != nil {
		if errors.Is(err, contract.ErrDuplicate) {
			// lost the race against a concurrent insert
			return nil, errActiveOrderExists()
		}
		return nil, fmt.Errorf("create transaction: %w", err)
	}

	metrics.TransactionsCreated.Inc()
	s.publish(ctx, events.New(events.TransactionCreated, tx.Id.String(), map[string]interface{}{
		"customer_id":    tx.CustomerId.String(),
		"event_id":       tx.EventId.String(),
		"status_ordered": string(tx.StatusOrdered),
		"status_payment": string(tx.StatusPayment),
	}, now))

	return toTransactionResponse(tx), nil
}

func (s *transactionService) List(ctx context.Context, req *dto.ListTransactionRequest) (*dto.PaginatedResponse[*dto.TransactionResponse], error) {
	var filters []specification.Specification
	if req.CustomerId != "" {
		filters = append(filters, specification.Filter("customer_id", req.CustomerId))
	}
	if req.EventId != "" {
		filters = append(filters, specification.Filter("event_id", req.EventId))
	}
	if req.StatusOrdered != "" {
		filters = append(filters, specification.Filter("status_ordered", req.StatusOrdered))
	}
	if req.StatusPayment != "" {
		filters = append(filters, specification.Filter("status_payment", req.StatusPayment))
	}

	paging, err := pageSpecs(&req.ListQuery, transactionSortable, "created_at")
	if err != nil {
		return nil, err
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).TransactionRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("count transactions: %w", err)
	}
	txs, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	data := make([]*dto.TransactionResponse, 0, len(txs))
	for _, tx := range txs {
		data = append(data, toTransactionResponse(tx))
	}
	return dto.NewPaginatedResponse(req.ListQuery, total, data), nil
}

func (s *transactionService) Show(ctx context.Context, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(tx), nil
}

// Update runs the lifecycle engine on the stored transaction and writes the result back.
func (s *transactionService) Update(ctx context.Context, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	overrides, err := toOverrides(req)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}

	wasPaid := tx.StatusPayment == entity.PaymentStatusPaid

	now := s.now()
	next, err := lifecycle.Advance(*tx, now, overrides)
	if err != nil {
		return nil, overrideError(err)
	}
	next.Apply(tx)

	if err := uow.TransactionRepository().UpdateState(ctx, tx); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Transaction not found")
		}
		return nil, fmt.Errorf("update transaction state: %w", err)
	}

	metrics.TransactionTransitions.WithLabelValues(string(tx.StatusOrdered), string(tx.StatusPayment)).Inc()
	s.publish(ctx, events.New(events.TransactionUpdated, tx.Id.String(), map[string]interface{}{
		"status_ordered": string(tx.StatusOrdered),
		"status_payment": string(tx.StatusPayment),
		"payment_date":   formatDatePtr(tx.PaymentDate),
		"return_date":    tx.ReturnDate,
	}, now))

	// receipt only on the transition into paid
	if !wasPaid && tx.StatusPayment == entity.PaymentStatusPaid && s.mailer != nil {
		settled := *tx
		go s.sendReceipt(context.WithoutCancel(ctx), &settled)
	}

	return toTransactionResponse(tx), nil
}

func (s *transactionService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if _, err := s.find(ctx, uow, id); err != nil {
		return err
	}

	if err := uow.TransactionRepository().Delete(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	s.publish(ctx, events.New(events.TransactionDeleted, id.String(), map[string]interface{}{}, s.now()))
	return nil
}

// Checkout opens a payment session for an unpaid transaction, priced from its event.
func (s *transactionService) Checkout(ctx context.Context, id uuid.UUID) (*dto.CheckoutResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tx, err := s.find(ctx, uow, id)
	if err != nil {
		return nil, err
	}

	switch {
	case tx.StatusPayment == entity.PaymentStatusPaid:
		return nil, apperror.NewConflictError("Transaction is already paid")
	case tx.StatusOrdered == entity.OrderStatusCancelled:
		return nil, apperror.NewConflictError("Transaction is cancelled")
	}

	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: tx.CustomerId})
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("customer not found")
	}
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: tx.EventId})
	if err != nil {
		return nil, fmt.Errorf("find event: %w", err)
	}
	if event == nil {
		return nil, apperror.NewNotFoundError("event not found")
	}

	gross := event.Price.Round(0).IntPart()
	session, err := s.gateway.CreateCheckout(ctx, payment.CheckoutRequest{
		OrderId:       tx.Id.String(),
		GrossAmount:   gross,
		CustomerName:  customer.Username,
		CustomerEmail: customer.Email,
		CustomerPhone: customer.Phone,
		Items: []payment.Item{{
			Id:    event.Id.String(),
			Name:  event.NameEvent,
			Price: gross,
			Qty:   1,
		}},
	})
	if err != nil {
		s.log.Error("TRANSACTION", "Checkout failed", map[string]interface{}{
			"transaction_id": tx.Id.String(),
			"error":          err.Error(),
		})
		return nil, fmt.Errorf("create checkout: %w", err)
	}

	s.publish(ctx, events.New(events.CheckoutStarted, tx.Id.String(), map[string]interface{}{
		"gross_amount": gross,
	}, s.now()))

	return &dto.CheckoutResponse{
		TransactionId: tx.Id,
		Token:         session.Token,
		RedirectURL:   session.RedirectURL,
		GrossAmount:   gross,
	}, nil
}

func (s *transactionService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find transaction: %w", err)
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction not found")
	}
	return tx, nil
}

func (s *transactionService) publish(ctx context.Context, evt events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.log.Warn("TRANSACTION", "Failed to publish event", map[string]interface{}{
			"event_type": evt.EventType(),
			"entity_id":  evt.EntityID(),
			"error":      err.Error(),
		})
	}
}

func (s *transactionService) sendReceipt(ctx context.Context, tx *entity.Transaction) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: tx.CustomerId})
	if err != nil || customer == nil {
		s.log.Warn("TRANSACTION", "Receipt skipped, customer unavailable", map[string]interface{}{
			"transaction_id": tx.Id.String(),
		})
		return
	}
	event, err := uow.EventRepository().FindOne(ctx, specification.ByID{ID: tx.EventId})
	if err != nil || event == nil {
		s.log.Warn("TRANSACTION", "Receipt skipped, event unavailable", map[string]interface{}{
			"transaction_id": tx.Id.String(),
		})
		return
	}

	// mailer logs its own failures
	_ = s.mailer.SendPaymentReceipt(mailer.Receipt{
		CustomerName:  customer.Username,
		CustomerEmail: customer.Email,
		TransactionId: tx.Id.String(),
		EventName:     event.NameEvent,
		Amount:        event.Price.StringFixed(2),
		PaidAt:        *tx.ReturnDate,
	})
}

func parseTransactionRefs(req *dto.CreateTransactionRequest) (uuid.UUID, uuid.UUID, error) {
	fields := map[string]string{}
	customerId, err := uuid.Parse(req.CustomerId)
	if err != nil {
		fields["customer_id"] = "customer_id must be a valid id"
	}
	eventId, err := uuid.Parse(req.EventId)
	if err != nil {
		fields["event_id"] = "event_id must be a valid id"
	}
	if len(fields) > 0 {
		return uuid.Nil, uuid.Nil, apperror.NewValidationError("Validation error", fields)
	}
	return customerId, eventId, nil
}

func toOverrides(req *dto.UpdateTransactionRequest) (lifecycle.Overrides, error) {
	var o lifecycle.Overrides
	if req.StatusOrdered != nil && *req.StatusOrdered != "" {
		v := entity.OrderStatus(*req.StatusOrdered)
		o.StatusOrdered = &v
	}
	if req.StatusPayment != nil && *req.StatusPayment != "" {
		v := entity.PaymentStatus(*req.StatusPayment)
		o.StatusPayment = &v
	}
	if req.PaymentDate != nil && *req.PaymentDate != "" {
		d, err := parseDate("payment_date", *req.PaymentDate)
		if err != nil {
			return o, err
		}
		o.PaymentDate = &d
	}
	if err := o.Validate(); err != nil {
		return o, overrideError(err)
	}
	return o, nil
}

func overrideError(err error) error {
	field := "status_ordered"
	if errors.Is(err, lifecycle.ErrInvalidPaymentStatus) {
		field = "status_payment"
	}
	return &apperror.AppError{
		Kind:    apperror.KindValidation,
		Message: "Validation error",
		Fields:  map[string]string{field: err.Error()},
		Err:     err,
	}
}

func errActiveOrderExists() error {
	return apperror.NewConflictError("Customer already has an active transaction for this event.")
}

func toTransactionResponse(tx *entity.Transaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		Id:              tx.Id,
		CustomerId:      tx.CustomerId,
		EventId:         tx.EventId,
		TransactionDate: tx.TransactionDate.Format(dateLayout),
		PaymentDate:     formatDatePtr(tx.PaymentDate),
		ReturnDate:      tx.ReturnDate,
		StatusOrdered:   string(tx.StatusOrdered),
		StatusPayment:   string(tx.StatusPayment),
		CreatedAt:       tx.CreatedAt,
		UpdatedAt:       tx.UpdatedAt,
	}
}
