package department

type CreateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	ColorHex string `json:"colorHex"`
}

type UpdateDepartmentRequest struct {
	Name     string `json:"name" binding:"required"`
	ColorHex string `json:"colorHex"`
}

type DepartmentResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ColorHex string `json:"colorHex"`
}
