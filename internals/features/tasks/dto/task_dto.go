package dto

type AssignTaskRequest struct {
	EmployeeCode string `json:"employee_code" validate:"required,min=3,max=32"`
	Title        string `json:"title" validate:"required,min=2,max=120"`
	Description  string `json:"description" validate:"omitempty"`
	DueDate      string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Pending 'Partially Completed' Completed"`
}

type AddTaskCommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}
