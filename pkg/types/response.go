package types

// ErrorBody - единый формат ответа об ошибке.
type ErrorBody struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
	Path    string `json:"path"`
}

// HealthBody - ответ /health.
type HealthBody struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
