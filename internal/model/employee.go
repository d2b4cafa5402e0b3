package model

import "time"

const EmployeeTableName = "employees"

// Employee 员工与直属上级的对应关系
type Employee struct {
	EmployeeName   string    `gorm:"column:employee_name;size:191;primaryKey" json:"employee_name"`
	SupervisorName string    `gorm:"column:supervisor_name;size:191;not null;index" json:"supervisor_name"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Employee) TableName() string {
	return EmployeeTableName
}
