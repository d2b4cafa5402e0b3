package hierarchy

import (
	"sort"

	"github.com/samber/lo"
)

// Validate 校验输入的员工-上级关系
// 只检查数据本身，环和多根由 Build 负责
func Validate(flat FlatAssignment) error {
	if len(flat) == 0 {
		return &InvalidValueError{EmptyInput: true}
	}

	employees := lo.Keys(flat)
	sort.Strings(employees)

	for _, employee := range employees {
		supervisor := flat[employee]
		// 名称区分大小写，与其他比较保持一致
		if employee == "" || supervisor == "" || employee == supervisor {
			return &InvalidValueError{Employee: employee}
		}
	}

	return nil
}
