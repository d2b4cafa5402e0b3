package constants

// 层级查询默认值
const (
	DefaultMaxSupervisorLevels = 2             // 单个员工默认向上查找的层数
	DefaultAuditCron           = "0 0 * * * *" // 默认每小时巡检一次
)

// 层级操作名称（用于日志与监控）
const (
	OperationCreate      = "create"
	OperationList        = "list"
	OperationSupervisors = "supervisors"
	OperationAudit       = "audit"
	OperationSeed        = "seed"
)

// 操作结果
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultError   = "error"
)
