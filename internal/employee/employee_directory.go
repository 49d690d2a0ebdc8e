package employee

// DirectoryEntry is the flat row produced by the directory join read path.
// Its field set intentionally differs from EmployeeResponse: it merges the
// account name and the department label into one mapping.
type DirectoryEntry struct {
	EmployeeID      string `json:"employee_id"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Position        string `json:"position"`
	Location        string `json:"location"`
	Phone           string `json:"phone"`
	Slack           string `json:"slack"`
	Department      string `json:"department"`
	DepartmentColor string `json:"department_color"`
}

// One relational join instead of per-row relationship traversal. LEFT JOIN on
// departments keeps employees without a department in the directory.
const directorySQL = `
SELECT e.id AS employee_id,
       a.first_name,
       a.last_name,
       a.email,
       e.position,
       e.location,
       e.phone,
       e.slack,
       COALESCE(d.name, '') AS department,
       COALESCE(d.color_hex, '') AS department_color
FROM employees e
JOIN accounts a ON a.id = e.account_id
LEFT JOIN departments d ON d.id = e.department_id
WHERE e.company_id = ?
ORDER BY e.created_at ASC`
