package api

// ZoneResponse представляет зону зимостойкости USDA для почтового индекса
type ZoneResponse struct {
	ZipCode string `json:"zip_code"`
	Zone    int    `json:"zone"` // 1-13
}

// HealthResponse представляет ответ health check
// Status: ok, degraded (недоступен кэш зон) или unavailable (недоступна БД).
type HealthResponse struct {
	Checks  map[string]string `json:"checks,omitempty"`
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
}
