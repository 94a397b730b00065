package request

import (
	"encoding/json"
	"math/rand"
)

var mockStatuses = []int{200, 201, 400, 404, 500}

var mockReasons = map[int]string{
	200: "OK",
	201: "Created",
	400: "Bad Request",
	404: "Not Found",
	500: "Server Error",
}

// mockResponse synthesizes a pseudo-random response for debug-mode mock
// dispatch, plus a small positive elapsed time in milliseconds.
func mockResponse() (*Response, float64) {
	status := mockStatuses[rand.Intn(len(mockStatuses))]
	body, _ := json.MarshalIndent(map[string]interface{}{
		"mock":    true,
		"status":  status,
		"message": "This is a mock response.",
	}, "", "  ")
	resp := &Response{
		Status:  status,
		Reason:  mockReasons[status],
		Headers: map[string]string{"Content-Type": "application/json"},
		RawBody: body,
	}
	elapsed := 10 + rand.Float64()*90
	return resp, elapsed
}
