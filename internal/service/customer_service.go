package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"event-management-be/internal/dto"
	"event-management-be/internal/entity"
	"event-management-be/internal/pkg/apperror"
	"event-management-be/internal/pkg/logger"
	"event-management-be/internal/repository/contract"
	"event-management-be/internal/repository/specification"
	"event-management-be/internal/repository/unitofwork"
	"event-management-be/pkg/storage"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var customerSortable = map[string]bool{
	"created_at": true,
	"username":   true,
	"email":      true,
	"city":       true,
	"company":    true,
}

type ICustomerService interface {
	Create(ctx context.Context, req *dto.CreateCustomerRequest, image *multipart.FileHeader) (*dto.CustomerResponse, error)
	List(ctx context.Context, req *dto.ListCustomerRequest) (*dto.PaginatedResponse[*dto.CustomerResponse], error)
	Show(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error)
	Update(ctx context.Context, req *dto.UpdateCustomerRequest, image *multipart.FileHeader) (*dto.CustomerResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type customerService struct {
	uowFactory unitofwork.RepositoryFactory
	media      storage.MediaStore
	log        logger.ILogger
}

func NewCustomerService(uowFactory unitofwork.RepositoryFactory, media storage.MediaStore, log logger.ILogger) ICustomerService {
	return &customerService{
		uowFactory: uowFactory,
		media:      media,
		log:        log,
	}
}

var errEmailTaken = apperror.NewValidationError("Validation error", map[string]string{
	"email": "Email is already taken",
})

func (s *customerService) Create(ctx context.Context, req *dto.CreateCustomerRequest, image *multipart.FileHeader) (*dto.CustomerResponse, error) {
	if image == nil {
		return nil, apperror.NewValidationError("Validation error", map[string]string{
			"image": "Image is required",
		})
	}
	ttl, err := parseDate("ttl", req.Ttl)
	if err != nil {
		return nil, err
	}
	if err := checkImage(image); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := s.ensureEmailFree(ctx, uow, req.Email, uuid.Nil); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored, err := saveImage(ctx, s.media, storage.KindCustomers, image)
	if err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		Id:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Ttl:          ttl,
		City:         req.City,
		Company:      req.Company,
		Gender:       entity.Gender(req.Gender),
		Image:        stored,
	}

	if err := uow.CustomerRepository().Create(ctx, customer); err != nil {
		discardImage(s.media, s.log, "CUSTOMER", stored)
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("create customer: %w", err)
	}

	return toCustomerResponse(customer), nil
}

func (s *customerService) List(ctx context.Context, req *dto.ListCustomerRequest) (*dto.PaginatedResponse[*dto.CustomerResponse], error) {
	var filters []specification.Specification
	if req.Username != "" {
		filters = append(filters, specification.Contains{Field: "username", Value: req.Username})
	}

	paging, err := pageSpecs(&req.ListQuery, customerSortable, "created_at")
	if err != nil {
		return nil, err
	}

	repo := s.uowFactory.NewUnitOfWork(ctx).CustomerRepository()
	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}
	customers, err := repo.FindAll(ctx, append(filters, paging...)...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	data := make([]*dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		data = append(data, toCustomerResponse(c))
	}
	return dto.NewPaginatedResponse(req.ListQuery, total, data), nil
}

func (s *customerService) Show(ctx context.Context, id uuid.UUID) (*dto.CustomerResponse, error) {
	customer, err := s.find(ctx, s.uowFactory.NewUnitOfWork(ctx), id)
	if err != nil {
		return nil, err
	}
	return toCustomerResponse(customer), nil
}

func (s *customerService) Update(ctx context.Context, req *dto.UpdateCustomerRequest, image *multipart.FileHeader) (*dto.CustomerResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	customer, err := s.find(ctx, uow, req.Id)
	if err != nil {
		return nil, err
	}
	ttl, err := parseDate("ttl", req.Ttl)
	if err != nil {
		return nil, err
	}
	if err := checkImage(image); err != nil {
		return nil, err
	}
	if err := s.ensureEmailFree(ctx, uow, req.Email, customer.Id); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored, err := saveImage(ctx, s.media, storage.KindCustomers, image)
	if err != nil {
		return nil, err
	}

	previous := customer.Image
	customer.Username = req.Username
	customer.Email = req.Email
	customer.PasswordHash = string(hashed)
	customer.Phone = req.Phone
	customer.Ttl = ttl
	customer.City = req.City
	customer.Company = req.Company
	customer.Gender = entity.Gender(req.Gender)
	if stored != nil {
		customer.Image = stored
	}

	if err := uow.CustomerRepository().Update(ctx, customer); err != nil {
		discardImage(s.media, s.log, "CUSTOMER", stored)
		if errors.Is(err, contract.ErrDuplicate) {
			return nil, errEmailTaken
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	if stored != nil && (previous == nil || *previous != *stored) {
		discardImage(s.media, s.log, "CUSTOMER", previous)
	}

	return toCustomerResponse(customer), nil
}

func (s *customerService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	customer, err := s.find(ctx, uow, id)
	if err != nil {
		return err
	}

	if err := uow.CustomerRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrReferenced) {
			return apperror.NewConflictError("Cannot delete customer with associated transactions")
		}
		return fmt.Errorf("delete customer: %w", err)
	}
	discardImage(s.media, s.log, "CUSTOMER", customer.Image)
	return nil
}

// ensureEmailFree fails when another customer than self already uses email.
func (s *customerService) ensureEmailFree(ctx context.Context, uow unitofwork.UnitOfWork, email string, self uuid.UUID) error {
	other, err := uow.CustomerRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return fmt.Errorf("find customer by email: %w", err)
	}
	if other != nil && other.Id != self {
		return errEmailTaken
	}
	return nil
}

func (s *customerService) find(ctx context.Context, uow unitofwork.UnitOfWork, id uuid.UUID) (*entity.Customer, error) {
	customer, err := uow.CustomerRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("customer not found")
	}
	return customer, nil
}

func toCustomerResponse(c *entity.Customer) *dto.CustomerResponse {
	return &dto.CustomerResponse{
		Id:        c.Id,
		Username:  c.Username,
		Email:     c.Email,
		Phone:     c.Phone,
		Ttl:       c.Ttl.Format(dateLayout),
		City:      c.City,
		Company:   c.Company,
		Gender:    string(c.Gender),
		Image:     c.Image,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
