package service

import (
	"context"
	"errors"
	"os"

	"github.com/samber/lo"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"hr-hierarchy/internal/core/hierarchy"
	"hr-hierarchy/internal/dto"
	"hr-hierarchy/internal/model"
	"hr-hierarchy/internal/pkg/config"
	"hr-hierarchy/internal/pkg/metrics"
	"hr-hierarchy/internal/repository"
	"hr-hierarchy/pkg/constants"
	pkgErrors "hr-hierarchy/pkg/errors"
)

type EmployeeService interface {
	// Create 校验并构建层级，成功后整体替换已保存的关系
	Create(ctx context.Context, req dto.CreateEmployeesRequest) (*hierarchy.Tree, error)
	// GetHierarchy 返回当前完整的组织层级
	GetHierarchy(ctx context.Context) (*hierarchy.Tree, error)
	// GetSupervisors 返回员工的上级链
	GetSupervisors(ctx context.Context, name string, levels *int) (*hierarchy.Tree, error)
	// Audit 重新构建已保存的层级，检查数据是否仍然合法
	Audit(ctx context.Context) error
	// Seed 库为空时从 YAML 文件导入
	Seed(ctx context.Context, path string) error
}

type employeeService struct {
	repo      repository.EmployeeRepository
	logger    *zap.Logger
	maxLevels int
}

func NewEmployeeService(repo repository.EmployeeRepository, cfg *config.HierarchyConfig, logger *zap.Logger) EmployeeService {
	maxLevels := cfg.MaxLevels
	if maxLevels <= 0 {
		maxLevels = constants.DefaultMaxSupervisorLevels
	}
	return &employeeService{
		repo:      repo,
		logger:    logger,
		maxLevels: maxLevels,
	}
}

func (s *employeeService) Create(ctx context.Context, req dto.CreateEmployeesRequest) (*hierarchy.Tree, error) {
	flat := hierarchy.FlatAssignment(req)

	if err := hierarchy.Validate(flat); err != nil {
		metrics.ObserveOperation(constants.OperationCreate, constants.ResultInvalid)
		return nil, toAppError(err)
	}

	tree, err := hierarchy.Build(flat)
	if err != nil {
		metrics.ObserveOperation(constants.OperationCreate, constants.ResultInvalid)
		return nil, toAppError(err)
	}

	// 校验通过后才写库
	if err := s.repo.ReplaceAll(ctx, toModels(flat)); err != nil {
		metrics.ObserveOperation(constants.OperationCreate, constants.ResultError)
		return nil, err
	}

	metrics.ObserveOperation(constants.OperationCreate, constants.ResultSuccess)
	metrics.HierarchyEmployees.Set(float64(tree.Size()))
	s.logger.Info("组织层级已更新",
		zap.String("root", tree.Root.Name),
		zap.Int("employees", tree.Size()),
	)

	return tree, nil
}

func (s *employeeService) GetHierarchy(ctx context.Context) (*hierarchy.Tree, error) {
	flat, err := s.load(ctx)
	if err != nil {
		metrics.ObserveOperation(constants.OperationList, constants.ResultError)
		return nil, err
	}

	if len(flat) == 0 {
		metrics.ObserveOperation(constants.OperationList, constants.ResultSuccess)
		return &hierarchy.Tree{}, nil
	}

	tree, err := hierarchy.Build(flat)
	if err != nil {
		// 已保存的数据都经过校验，出现这种情况说明库被外部修改过
		s.logger.Error("已保存的组织层级不合法", zap.Error(err))
		metrics.ObserveOperation(constants.OperationList, constants.ResultError)
		return nil, pkgErrors.Wrap(pkgErrors.CodeInternalError, err.Error(), err)
	}

	metrics.ObserveOperation(constants.OperationList, constants.ResultSuccess)
	return tree, nil
}

func (s *employeeService) GetSupervisors(ctx context.Context, name string, levels *int) (*hierarchy.Tree, error) {
	maxLevels := s.maxLevels
	if levels != nil {
		// 0 即 hierarchy.Unbounded
		maxLevels = *levels
	}

	flat, err := s.load(ctx)
	if err != nil {
		metrics.ObserveOperation(constants.OperationSupervisors, constants.ResultError)
		return nil, err
	}

	tree, err := hierarchy.Resolve(flat, name, maxLevels)
	if err != nil {
		metrics.ObserveOperation(constants.OperationSupervisors, constants.ResultInvalid)
		return nil, toAppError(err)
	}

	metrics.ObserveOperation(constants.OperationSupervisors, constants.ResultSuccess)
	return tree, nil
}

func (s *employeeService) Audit(ctx context.Context) error {
	flat, err := s.load(ctx)
	if err != nil {
		metrics.ObserveOperation(constants.OperationAudit, constants.ResultError)
		return err
	}

	if len(flat) == 0 {
		s.logger.Debug("组织层级为空，跳过巡检")
		metrics.ObserveOperation(constants.OperationAudit, constants.ResultSuccess)
		metrics.HierarchyEmployees.Set(0)
		return nil
	}

	tree, err := hierarchy.Build(flat)
	if err != nil {
		s.logger.Warn("组织层级巡检发现异常", zap.Int("relations", len(flat)), zap.Error(err))
		metrics.ObserveOperation(constants.OperationAudit, constants.ResultInvalid)
		return toAppError(err)
	}

	s.logger.Info("组织层级巡检通过", zap.String("root", tree.Root.Name), zap.Int("employees", tree.Size()))
	metrics.ObserveOperation(constants.OperationAudit, constants.ResultSuccess)
	metrics.HierarchyEmployees.Set(float64(tree.Size()))
	return nil
}

func (s *employeeService) Seed(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		metrics.ObserveOperation(constants.OperationSeed, constants.ResultError)
		return pkgErrors.Wrap(pkgErrors.CodeInternalError, "读取初始化文件失败", err)
	}

	var req dto.CreateEmployeesRequest
	if err := yaml.Unmarshal(data, &req); err != nil {
		metrics.ObserveOperation(constants.OperationSeed, constants.ResultInvalid)
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, "解析初始化文件失败", err)
	}

	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		metrics.ObserveOperation(constants.OperationSeed, constants.ResultError)
		return err
	}
	if len(existing) > 0 {
		s.logger.Info("已存在组织层级数据，跳过初始化", zap.String("file", path), zap.Int("relations", len(existing)))
		return nil
	}

	if _, err := s.Create(ctx, req); err != nil {
		metrics.ObserveOperation(constants.OperationSeed, constants.ResultInvalid)
		return err
	}

	s.logger.Info("已从文件初始化组织层级", zap.String("file", path), zap.Int("relations", len(req)))
	metrics.ObserveOperation(constants.OperationSeed, constants.ResultSuccess)
	return nil
}

// load 从库中读取 员工 -> 上级
func (s *employeeService) load(ctx context.Context) (hierarchy.FlatAssignment, error) {
	employees, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return lo.SliceToMap(employees, func(e *model.Employee) (string, string) {
		return e.EmployeeName, e.SupervisorName
	}), nil
}

func toModels(flat hierarchy.FlatAssignment) []*model.Employee {
	return lo.MapToSlice(flat, func(employee, supervisor string) *model.Employee {
		return &model.Employee{
			EmployeeName:   employee,
			SupervisorName: supervisor,
		}
	})
}

// toAppError 将层级错误转换为带状态码的业务错误
func toAppError(err error) error {
	var (
		invalid  *hierarchy.InvalidValueError
		multiple *hierarchy.MultipleRootFoundError
		loop     *hierarchy.LoopHierarchyError
		notFound *hierarchy.NoEmployeeFoundError
	)

	switch {
	case errors.As(err, &notFound):
		return pkgErrors.Wrap(pkgErrors.CodeNotFound, err.Error(), err)
	case errors.As(err, &invalid), errors.As(err, &multiple), errors.As(err, &loop):
		return pkgErrors.Wrap(pkgErrors.CodeBadRequest, err.Error(), err)
	default:
		return err
	}
}
