package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses. Kept in sync with the central error handler.
type errorResponse struct {
	Error string `json:"error"`
}

// countResponse reports how many records a bulk action touched.
type countResponse struct {
	Updated int `json:"updated"`
}
