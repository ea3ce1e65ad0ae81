package dto

// PaymentEmailMessage rides the in-process mail queue from the payment path
// to the mail consumer.
type PaymentEmailMessage struct {
	Kind     string `json:"kind"` // success | pending | failed | reminder
	Email    string `json:"email"`
	Name     string `json:"name"`
	PlanName string `json:"plan_name"`
	Amount   int64  `json:"amount"`
	DueDate  string `json:"due_date,omitempty"`
}
