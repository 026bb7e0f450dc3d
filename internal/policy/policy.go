// Package policy decides which task actions a role may perform.
package policy

import "github.com/adanyl0v/go-task-manager/internal/models"

type Action int

const (
	ActionCreateTask Action = iota + 1
	ActionDeleteTask
	ActionUpdateTask
	ActionListTasks
)

func (a Action) String() string {
	switch a {
	case ActionCreateTask:
		return "create_task"
	case ActionDeleteTask:
		return "delete_task"
	case ActionUpdateTask:
		return "update_task"
	case ActionListTasks:
		return "list_tasks"
	default:
		return "unknown"
	}
}

// CanPerform reports whether role is allowed to perform action.
//
// Creating and deleting tasks is restricted to admins. Any user may
// update or list tasks. Unknown actions are denied.
func CanPerform(role models.Role, action Action) bool {
	switch action {
	case ActionCreateTask, ActionDeleteTask:
		return role == models.RoleAdmin
	case ActionUpdateTask, ActionListTasks:
		return true
	default:
		return false
	}
}
