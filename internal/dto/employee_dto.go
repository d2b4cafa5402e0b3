package dto

// CreateEmployeesRequest 员工 -> 直属上级，整体替换已有数据
type CreateEmployeesRequest map[string]string

// GetSupervisorsRequest 查询员工上级链
type GetSupervisorsRequest struct {
	// Levels 向上查找的层数，不传使用默认配置，0 表示一直找到最高上级
	Levels *int `form:"levels" binding:"omitempty,min=0"`
}
