// Package hierarchy 根据 员工 -> 上级 的扁平关系构建组织层级
package hierarchy

import (
	"sort"

	"github.com/samber/lo"
)

// Build 构建完整的组织层级树
//
// 返回的树只有一个顶层节点（最高上级），下级按名称排序，
// 因此同一输入多次构建结果一致。
func Build(flat FlatAssignment) (*Tree, error) {
	supervisors := groupBySupervisor(flat)
	roots := topSupervisors(flat, supervisors)

	if len(roots) > 1 {
		return nil, &MultipleRootFoundError{Roots: roots}
	}

	if len(roots) == 0 {
		names := lo.Keys(supervisors)
		sort.Strings(names)
		return nil, &LoopHierarchyError{Employees: names}
	}

	visited := make(map[string]struct{}, len(flat)+1)
	root, err := buildNode(roots[0], supervisors, visited)
	if err != nil {
		return nil, err
	}

	// 从根节点无法到达的员工必然处在一个独立的环上
	if unreached := unreachedNames(flat, visited); len(unreached) > 0 {
		return nil, &LoopHierarchyError{Employees: unreached}
	}

	return &Tree{Root: root}, nil
}

// groupBySupervisor 上级 -> 直属下级列表
func groupBySupervisor(flat FlatAssignment) map[string][]string {
	grouped := lo.GroupBy(lo.Entries(flat), func(entry lo.Entry[string, string]) string {
		return entry.Value
	})

	return lo.MapValues(grouped, func(entries []lo.Entry[string, string], _ string) []string {
		reports := lo.Map(entries, func(entry lo.Entry[string, string], _ int) string {
			return entry.Key
		})
		sort.Strings(reports)
		return reports
	})
}

// topSupervisors 没有上级的上级，即根节点候选
func topSupervisors(flat FlatAssignment, supervisors map[string][]string) []string {
	roots := lo.Filter(lo.Keys(supervisors), func(supervisor string, _ int) bool {
		_, ok := flat[supervisor]
		return !ok
	})
	sort.Strings(roots)
	return roots
}

func buildNode(name string, supervisors map[string][]string, visited map[string]struct{}) (*Node, error) {
	if _, ok := visited[name]; ok {
		return nil, &LoopHierarchyError{Employees: []string{name}}
	}
	visited[name] = struct{}{}

	node := &Node{Name: name}
	for _, report := range supervisors[name] {
		child, err := buildNode(report, supervisors, visited)
		if err != nil {
			return nil, err
		}
		node.Children = append(node.Children, child)
	}

	return node, nil
}

func unreachedNames(flat FlatAssignment, visited map[string]struct{}) []string {
	names := lo.Uniq(append(lo.Keys(flat), lo.Values(flat)...))
	unreached := lo.Filter(names, func(name string, _ int) bool {
		_, ok := visited[name]
		return !ok
	})
	sort.Strings(unreached)
	return unreached
}
