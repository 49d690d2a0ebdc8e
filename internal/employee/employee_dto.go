package employee

// CreateEmployeeRequest carries both the employee profile and the account
// that is provisioned with it in one transaction.
type CreateEmployeeRequest struct {
	Username     string   `json:"username" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	FirstName    string   `json:"first_name" binding:"required"`
	LastName     string   `json:"last_name" binding:"required"`
	DepartmentID string   `json:"department_id" binding:"omitempty,uuid"`
	SupervisorID string   `json:"supervisor_id" binding:"omitempty,uuid"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"image_url"`
	Tasks        string   `json:"tasks"`
	Phone        string   `json:"phone"`
	Slack        string   `json:"slack"`
	IsAdmin      bool     `json:"is_admin"`
	Hobbies      []string `json:"hobbies"`
}

// UpdateEmployeeRequest overwrites every mutable profile field; there are no
// partial-patch semantics. Account fields are not mutable here.
type UpdateEmployeeRequest struct {
	DepartmentID string   `json:"department_id" binding:"omitempty,uuid"`
	SupervisorID string   `json:"supervisor_id" binding:"omitempty,uuid"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"image_url"`
	Tasks        string   `json:"tasks"`
	Phone        string   `json:"phone"`
	Slack        string   `json:"slack"`
	IsAdmin      bool     `json:"is_admin"`
	Hobbies      []string `json:"hobbies"`
}

type EmployeeResponse struct {
	ID           string   `json:"id"`
	AccountID    string   `json:"account_id"`
	CompanyID    string   `json:"company_id"`
	DepartmentID string   `json:"department_id,omitempty"`
	SupervisorID string   `json:"supervisor_id,omitempty"`
	Position     string   `json:"position"`
	Location     string   `json:"location"`
	Bio          string   `json:"bio"`
	ImageURL     string   `json:"image_url"`
	Tasks        string   `json:"tasks"`
	Phone        string   `json:"phone"`
	Slack        string   `json:"slack"`
	IsAdmin      bool     `json:"is_admin"`
	Hobbies      []string `json:"hobbies"`
}
