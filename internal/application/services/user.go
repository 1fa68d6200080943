package services

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"contact-manager-api/internal/application/ports"
	domain "contact-manager-api/internal/domain/user"
	"contact-manager-api/internal/infrastructure/mq"
	"contact-manager-api/internal/interface/api/rest/dto/user"
)

// UserService owns the business rules the store cannot: email uniqueness is
// pre-checked here, with the table's unique constraint as the backstop for
// the check-then-create race.
type UserService struct {
	userRepository domain.Repository
	mq             ports.RabbitMQ
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mq:             mq,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	existing, err := us.userRepository.FetchUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	if uRet != nil {
		us.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Method:  http.MethodPost,
			UserID:  uint64(uRet.ID),
			Payload: user.ToResponseUser(*uRet),
		}
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.ID, patch domain.Patch) (*domain.User, error) {
	if patch.Email != nil {
		existing, err := us.userRepository.FetchUserByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailAlreadyExists
		}
	}

	uRet, err := us.userRepository.UpdateUser(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, nil
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodPut,
		UserID:  uint64(uRet.ID),
		Payload: user.ToResponseUser(*uRet),
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, id domain.ID) error {
	u, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.ErrUserNotFound
	}

	us.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  http.MethodDelete,
		UserID:  uint64(u.ID),
		Payload: user.ToResponseUser(*u),
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}
