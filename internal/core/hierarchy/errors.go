package hierarchy

import (
	"fmt"
	"strings"
)

// InvalidValueError 输入数据不合法（空输入、空上级、自己是自己的上级）
type InvalidValueError struct {
	Employee   string
	EmptyInput bool
}

func (e *InvalidValueError) Error() string {
	if e.EmptyInput {
		return "Input is empty"
	}
	return fmt.Sprintf("Employee: %s has invalid value", e.Employee)
}

// MultipleRootFoundError 存在多个最高上级
type MultipleRootFoundError struct {
	Roots []string
}

func (e *MultipleRootFoundError) Error() string {
	return "Multiple roots found: " + strings.Join(e.Roots, ", ")
}

// LoopHierarchyError 上下级关系中存在环
type LoopHierarchyError struct {
	Employees []string
}

func (e *LoopHierarchyError) Error() string {
	return "Loop of employees: " + strings.Join(e.Employees, ", ")
}

// NoEmployeeFoundError 员工不存在
type NoEmployeeFoundError struct {
	Employee string
}

func (e *NoEmployeeFoundError) Error() string {
	return fmt.Sprintf("Employee: %s not exist", e.Employee)
}
