package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"branches-api/internal/dto"
	"branches-api/internal/entities"
	"branches-api/internal/mappers"
	"branches-api/internal/repositories"
	apperrors "branches-api/pkg/errors"
	"branches-api/pkg/types"
)

type BranchService struct {
	branchRepository repositories.BranchRepositoryInterface
	branchMapper     mappers.BranchMapperInterface
	now              func() time.Time
	logger           *zap.Logger
}

func NewBranchService(
	branchRepository repositories.BranchRepositoryInterface,
	branchMapper mappers.BranchMapperInterface,
	now func() time.Time,
	logger *zap.Logger,
) *BranchService {
	return &BranchService{
		branchRepository: branchRepository,
		branchMapper:     branchMapper,
		now:              now,
		logger:           logger,
	}
}

// findBranch - общая проверка существования для всех операций по ID.
func (s *BranchService) findBranch(ctx context.Context, id string) (*entities.Branch, error) {
	branch, found, err := s.branchRepository.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске филиала", zap.String("branch_id", id), zap.Error(err))
		return nil, err
	}
	if !found {
		return nil, apperrors.NewBranchNotFoundError(id)
	}
	if branch.BranchHolidays == nil {
		branch.BranchHolidays = []entities.BranchHoliday{}
	}
	return branch, nil
}

func (s *BranchService) save(ctx context.Context, branch *entities.Branch) (*dto.BranchResponse, error) {
	saved, err := s.branchRepository.Save(ctx, branch)
	if err != nil {
		s.logger.Error("Ошибка при сохранении филиала", zap.String("branch_id", branch.ID), zap.Error(err))
		return nil, err
	}
	response := s.branchMapper.ToResponse(saved)
	return &response, nil
}

func (s *BranchService) GetAllBranches(ctx context.Context) ([]dto.BranchResponse, error) {
	s.logger.Info("Получение всех филиалов")

	branches, err := s.branchRepository.FindAll(ctx)
	if err != nil {
		s.logger.Error("Ошибка при получении списка филиалов", zap.Error(err))
		return nil, err
	}

	responses := make([]dto.BranchResponse, 0, len(branches))
	for i := range branches {
		responses = append(responses, s.branchMapper.ToResponse(&branches[i]))
	}
	s.logger.Info("Филиалы найдены", zap.Int("count", len(responses)))
	return responses, nil
}

// CreateBranch всегда создаёт новую запись, дубликаты имени и email не проверяются.
func (s *BranchService) CreateBranch(ctx context.Context, request dto.BranchRequest) (*dto.BranchResponse, error) {
	s.logger.Info("Создание филиала", zap.String("name", request.Name))

	response, err := s.save(ctx, s.branchMapper.ToEntity(request))
	if err != nil {
		return nil, err
	}
	s.logger.Info("Филиал успешно создан", zap.String("branch_id", response.ID))
	return response, nil
}

func (s *BranchService) GetBranchByID(ctx context.Context, id string) (*dto.BranchResponse, error) {
	s.logger.Info("Получение филиала", zap.String("branch_id", id))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	response := s.branchMapper.ToResponse(branch)
	return &response, nil
}

// UpdatePhoneNumber: формат номера проверяется на уровне запроса.
func (s *BranchService) UpdatePhoneNumber(ctx context.Context, id string, phoneNumber string) (*dto.BranchResponse, error) {
	s.logger.Info("Обновление телефона филиала", zap.String("branch_id", id))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	branch.PhoneNumber = phoneNumber
	branch.LastModifiedDate = s.now()

	response, err := s.save(ctx, branch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Телефон филиала обновлён", zap.String("branch_id", id))
	return response, nil
}

// AddHolidays дописывает праздники в порядке запроса, без проверки на дубли дат.
// Пустой список ничего не добавляет, но дата изменения всё равно обновляется.
func (s *BranchService) AddHolidays(ctx context.Context, id string, requests []dto.BranchHolidayRequest) (*dto.BranchResponse, error) {
	s.logger.Info("Добавление праздников", zap.String("branch_id", id), zap.Int("count", len(requests)))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, req := range requests {
		holiday := entities.BranchHoliday{Name: req.Name}
		if req.Date != nil {
			holiday.Date = *req.Date
		}
		branch.BranchHolidays = append(branch.BranchHolidays, holiday)
	}
	branch.LastModifiedDate = s.now()

	response, err := s.save(ctx, branch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Праздники добавлены", zap.String("branch_id", id), zap.Int("total", len(response.BranchHolidays)))
	return response, nil
}

// DeleteHoliday удаляет все праздники на указанную дату.
func (s *BranchService) DeleteHoliday(ctx context.Context, id string, date types.Date) (*dto.BranchResponse, error) {
	s.logger.Info("Удаление праздника", zap.String("branch_id", id), zap.Stringer("date", date))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(branch.BranchHolidays) == 0 {
		return nil, apperrors.NewHolidayListEmptyError(id)
	}

	kept := make([]entities.BranchHoliday, 0, len(branch.BranchHolidays))
	for _, h := range branch.BranchHolidays {
		if !h.Date.Equal(date) {
			kept = append(kept, h)
		}
	}
	removed := len(branch.BranchHolidays) - len(kept)
	if removed == 0 {
		return nil, apperrors.NewHolidayNotFoundError(date)
	}

	branch.BranchHolidays = kept
	branch.LastModifiedDate = s.now()

	response, err := s.save(ctx, branch)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Праздник удалён", zap.String("branch_id", id), zap.Stringer("date", date), zap.Int("removed", removed))
	return response, nil
}

func (s *BranchService) GetHolidays(ctx context.Context, id string) ([]entities.BranchHoliday, error) {
	s.logger.Info("Получение праздников", zap.String("branch_id", id))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Праздники найдены", zap.String("branch_id", id), zap.Int("count", len(branch.BranchHolidays)))
	return branch.BranchHolidays, nil
}

// IsHoliday берёт первый по порядку вставки праздник на эту дату.
func (s *BranchService) IsHoliday(ctx context.Context, id string, date types.Date) (*dto.HolidayCheckResponse, error) {
	s.logger.Info("Проверка праздника", zap.String("branch_id", id), zap.Stringer("date", date))

	branch, err := s.findBranch(ctx, id)
	if err != nil {
		return nil, err
	}

	response := &dto.HolidayCheckResponse{BranchID: id, Date: date}
	for _, h := range branch.BranchHolidays {
		if h.Date.Equal(date) {
			response.IsHoliday = true
			response.HolidayName = null.StringFrom(h.Name)
			break
		}
	}

	s.logger.Info("Проверка праздника завершена",
		zap.String("branch_id", id),
		zap.Stringer("date", date),
		zap.Bool("is_holiday", response.IsHoliday),
	)
	return response, nil
}

// Ping проверяет доступность хранилища.
func (s *BranchService) Ping(ctx context.Context) error {
	return s.branchRepository.Ping(ctx)
}
