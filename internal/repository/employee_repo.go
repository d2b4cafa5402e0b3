package repository

import (
	"context"

	"gorm.io/gorm"

	"hr-hierarchy/internal/model"
	pkgErrors "hr-hierarchy/pkg/errors"
)

const employeeBatchSize = 500

type EmployeeRepository interface {
	// ListAll 读取全部员工-上级关系
	ListAll(ctx context.Context) ([]*model.Employee, error)
	// ReplaceAll 在同一事务中用新数据替换全部旧数据
	ReplaceAll(ctx context.Context, employees []*model.Employee) error
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) ListAll(ctx context.Context) ([]*model.Employee, error) {
	var employees []*model.Employee
	err := r.db.WithContext(ctx).Order("employee_name ASC").Find(&employees).Error
	if err != nil {
		return nil, pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "查询员工列表失败", err)
	}
	return employees, nil
}

func (r *employeeRepository) ReplaceAll(ctx context.Context, employees []*model.Employee) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Employee{}).Error; err != nil {
			return err
		}
		if len(employees) == 0 {
			return nil
		}
		return tx.CreateInBatches(employees, employeeBatchSize).Error
	})
	if err != nil {
		return pkgErrors.Wrap(pkgErrors.CodeDatabaseError, "保存员工关系失败", err)
	}
	return nil
}
