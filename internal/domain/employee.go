package domain

// Field names accepted in employee payloads.
const (
	FieldName     = "name"
	FieldPosition = "position"
)

// MaxFieldLength is the longest name or position accepted, in characters.
const MaxFieldLength = 100

// Employee is the record held by the employee store.
type Employee struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
}

// EmployeePatch describes a partial update. Nil fields are left untouched.
type EmployeePatch struct {
	Name     *string
	Position *string
}

// Apply returns e with every non-nil patch field replaced.
func (p EmployeePatch) Apply(e Employee) Employee {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Position != nil {
		e.Position = *p.Position
	}
	return e
}

// DeletedEmployee is the payload returned by a successful delete.
type DeletedEmployee struct {
	DeletedID int `json:"deleted_id"`
}
