package domain

// Product is one entry of the catalog served by the backend. The backend
// owns these records; the client only caches the last response.
type Product struct {
	ID       string  `json:"_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Rating   int     `json:"rating"`
	ImageURL string  `json:"image"`
}
