package dto

// UsageResponse respuesta de GET /api/usage.
// TotalVisits proviene de una consulta independiente y no se concilia con la suma por empleado.
type UsageResponse struct {
	Company      CompanyResponse       `json:"company"`
	Subscription *SubscriptionResponse `json:"subscription"`
	Access       AccessResponse        `json:"access"`
	Employees    []EmployeeResponse    `json:"employees"`
	TotalVisits  int                   `json:"total_visits"`
}
