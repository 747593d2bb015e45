package domain

type Operator struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Email   string `json:"email"`
}

// OperatorStatus is an operator with its current workload.
type OperatorStatus struct {
	Operator
	Available         bool  `json:"available"`
	MissionsActive    int64 `json:"missions_active"`
	MissionsCompleted int64 `json:"missions_completed"`
}
