package hierarchy

// Unbounded 不限制向上查找的层数
const Unbounded = 0

// Resolve 查找员工的上级链
//
// 结果的顶层节点是直属上级，每一层最多一个子节点（再上一级）。
// maxLevels <= 0 时一直找到最高上级。
func Resolve(flat FlatAssignment, employee string, maxLevels int) (*Tree, error) {
	if _, ok := flat[employee]; !ok {
		return nil, &NoEmployeeFoundError{Employee: employee}
	}

	tree := &Tree{}
	path := []string{employee}
	visited := map[string]struct{}{employee: {}}

	var tail *Node
	current := employee
	for level := 1; maxLevels <= Unbounded || level <= maxLevels; level++ {
		supervisor, ok := flat[current]
		if !ok {
			break
		}

		path = append(path, supervisor)
		if _, seen := visited[supervisor]; seen {
			return nil, &LoopHierarchyError{Employees: path}
		}
		visited[supervisor] = struct{}{}

		node := &Node{Name: supervisor}
		if tail == nil {
			tree.Root = node
		} else {
			tail.Children = []*Node{node}
		}
		tail = node
		current = supervisor
	}

	return tree, nil
}
