package service

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hr-hierarchy/internal/core/hierarchy"
	"hr-hierarchy/internal/dto"
	"hr-hierarchy/internal/model"
	"hr-hierarchy/internal/pkg/config"
	pkgErrors "hr-hierarchy/pkg/errors"
)

type mockEmployeeRepository struct {
	mock.Mock
}

func (m *mockEmployeeRepository) ListAll(ctx context.Context) ([]*model.Employee, error) {
	args := m.Called(ctx)
	employees, _ := args.Get(0).([]*model.Employee)
	return employees, args.Error(1)
}

func (m *mockEmployeeRepository) ReplaceAll(ctx context.Context, employees []*model.Employee) error {
	args := m.Called(ctx, employees)
	return args.Error(0)
}

func newTestService(repo *mockEmployeeRepository, maxLevels int) EmployeeService {
	return NewEmployeeService(repo, &config.HierarchyConfig{MaxLevels: maxLevels}, zap.NewNop())
}

func rows(pairs ...string) []*model.Employee {
	employees := make([]*model.Employee, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		employees = append(employees, &model.Employee{EmployeeName: pairs[i], SupervisorName: pairs[i+1]})
	}
	return employees
}

func toJSON(t *testing.T, tree *hierarchy.Tree) string {
	t.Helper()
	data, err := json.Marshal(tree)
	require.NoError(t, err)
	return string(data)
}

func requireAppError(t *testing.T, err error, code int) *pkgErrors.AppError {
	t.Helper()
	appErr, ok := pkgErrors.As(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, code, appErr.Code)
	return appErr
}

func TestCreate(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)
	ctx := context.Background()

	repo.On("ReplaceAll", ctx, mock.MatchedBy(func(employees []*model.Employee) bool {
		return assert.ElementsMatch(t, rows("A", "B", "B", "C"), employees)
	})).Return(nil).Once()

	tree, err := svc.Create(ctx, dto.CreateEmployeesRequest{"A": "B", "B": "C"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"C": {"B": {"A": {}}}}`, toJSON(t, tree))
	repo.AssertExpectations(t)
}

func TestCreateRejectsBeforeWriting(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.CreateEmployeesRequest
		message string
		target  interface{}
	}{
		{name: "empty", req: dto.CreateEmployeesRequest{}, message: "Input is empty", target: new(*hierarchy.InvalidValueError)},
		{name: "self supervision", req: dto.CreateEmployeesRequest{"A": "A"}, message: "Employee: A has invalid value", target: new(*hierarchy.InvalidValueError)},
		{name: "multiple roots", req: dto.CreateEmployeesRequest{"A": "B", "C": "D"}, message: "Multiple roots found: B, D", target: new(*hierarchy.MultipleRootFoundError)},
		{name: "loop", req: dto.CreateEmployeesRequest{"A": "B", "B": "A"}, message: "Loop of employees: A, B", target: new(*hierarchy.LoopHierarchyError)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEmployeeRepository{}
			svc := newTestService(repo, 2)

			_, err := svc.Create(context.Background(), tt.req)

			appErr := requireAppError(t, err, pkgErrors.CodeBadRequest)
			assert.Equal(t, tt.message, appErr.Message)
			assert.ErrorAs(t, err, tt.target)
			repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateRepositoryError(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)

	dbErr := pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "保存员工关系失败", errors.New("timeout"))
	repo.On("ReplaceAll", mock.Anything, mock.Anything).Return(dbErr)

	_, err := svc.Create(context.Background(), dto.CreateEmployeesRequest{"A": "B"})
	assert.Same(t, dbErr, err)
}

func TestGetHierarchyRoundTrip(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)
	ctx := context.Background()

	req := dto.CreateEmployeesRequest{"Pete": "Nick", "Barbara": "Nick", "Nick": "Sophie", "Sophie": "Jonas"}

	var saved []*model.Employee
	repo.On("ReplaceAll", ctx, mock.Anything).Run(func(args mock.Arguments) {
		saved = args.Get(1).([]*model.Employee)
	}).Return(nil)

	created, err := svc.Create(ctx, req)
	require.NoError(t, err)

	repo.On("ListAll", ctx).Return(saved, nil)

	loaded, err := svc.GetHierarchy(ctx)
	require.NoError(t, err)
	assert.Equal(t, toJSON(t, created), toJSON(t, loaded))
}

func TestGetHierarchyEmptyStore(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)

	repo.On("ListAll", mock.Anything).Return([]*model.Employee{}, nil)

	tree, err := svc.GetHierarchy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "{}", toJSON(t, tree))
}

func TestGetHierarchyCorruptedStore(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)

	repo.On("ListAll", mock.Anything).Return(rows("A", "B", "B", "A"), nil)

	_, err := svc.GetHierarchy(context.Background())
	requireAppError(t, err, pkgErrors.CodeInternalError)
}

func TestGetSupervisors(t *testing.T) {
	unbounded := 0
	one := 1

	tests := []struct {
		name     string
		levels   *int
		expected string
	}{
		{name: "configured default", levels: nil, expected: `{"B": {"C": {}}}`},
		{name: "explicit level", levels: &one, expected: `{"B": {}}`},
		{name: "unbounded", levels: &unbounded, expected: `{"B": {"C": {"D": {}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockEmployeeRepository{}
			svc := newTestService(repo, 2)
			repo.On("ListAll", mock.Anything).Return(rows("A", "B", "B", "C", "C", "D"), nil)

			tree, err := svc.GetSupervisors(context.Background(), "A", tt.levels)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, toJSON(t, tree))
		})
	}
}

func TestGetSupervisorsDefaultLevelsWhenNotConfigured(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 0)
	repo.On("ListAll", mock.Anything).Return(rows("A", "B", "B", "C", "C", "D"), nil)

	tree, err := svc.GetSupervisors(context.Background(), "A", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"B": {"C": {}}}`, toJSON(t, tree))
}

func TestGetSupervisorsNotFound(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)
	repo.On("ListAll", mock.Anything).Return(rows("A", "B"), nil)

	_, err := svc.GetSupervisors(context.Background(), "Z", nil)

	appErr := requireAppError(t, err, pkgErrors.CodeNotFound)
	assert.Equal(t, "Employee: Z not exist", appErr.Message)

	var notFound *hierarchy.NoEmployeeFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestAudit(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)

	repo.On("ListAll", mock.Anything).Return(rows("A", "B"), nil).Once()
	assert.NoError(t, svc.Audit(context.Background()))

	repo.On("ListAll", mock.Anything).Return([]*model.Employee{}, nil).Once()
	assert.NoError(t, svc.Audit(context.Background()))

	repo.On("ListAll", mock.Anything).Return(rows("A", "B", "C", "D"), nil).Once()
	err := svc.Audit(context.Background())
	requireAppError(t, err, pkgErrors.CodeBadRequest)

	repo.AssertExpectations(t)
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestSeedIntoEmptyStore(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)
	path := writeSeed(t, "Pete: Nick\nNick: Sophie\n")

	repo.On("ListAll", mock.Anything).Return([]*model.Employee{}, nil)
	repo.On("ReplaceAll", mock.Anything, mock.MatchedBy(func(employees []*model.Employee) bool {
		return len(employees) == 2
	})).Return(nil).Once()

	require.NoError(t, svc.Seed(context.Background(), path))
	repo.AssertExpectations(t)
}

func TestSeedSkipsWhenStoreHasData(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)
	path := writeSeed(t, "Pete: Nick\n")

	repo.On("ListAll", mock.Anything).Return(rows("A", "B"), nil)

	require.NoError(t, svc.Seed(context.Background(), path))
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}

func TestSeedErrors(t *testing.T) {
	repo := &mockEmployeeRepository{}
	svc := newTestService(repo, 2)

	err := svc.Seed(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	requireAppError(t, err, pkgErrors.CodeInternalError)

	err = svc.Seed(context.Background(), writeSeed(t, "- not\n- a map\n"))
	requireAppError(t, err, pkgErrors.CodeBadRequest)

	repo.On("ListAll", mock.Anything).Return([]*model.Employee{}, nil)
	err = svc.Seed(context.Background(), writeSeed(t, "A: B\nC: D\n"))
	requireAppError(t, err, pkgErrors.CodeBadRequest)
	repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything)
}
