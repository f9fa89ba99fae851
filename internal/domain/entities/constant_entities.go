package entities

import "github.com/pumpsui/pumpsui_service/pkg/constants"

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ConstantResponse represents a single published constant
type ConstantResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Group string `json:"group"`
	Kind  string `json:"kind"`
}

// ConstantListResponse represents a list of constants
type ConstantListResponse struct {
	Constants []ConstantResponse `json:"constants"`
	Count     int                `json:"count"`
}

// HealthResponse represents the health endpoint payload
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Constants   int    `json:"constants"`
}

// NewConstantResponse converts a constants entry into its API shape
func NewConstantResponse(e constants.Entry) ConstantResponse {
	return ConstantResponse{
		Key:   e.Key,
		Value: e.Value,
		Group: string(e.Group),
		Kind:  string(e.Kind),
	}
}

// NewConstantListResponse converts entries into a list response
func NewConstantListResponse(entries []constants.Entry) ConstantListResponse {
	out := make([]ConstantResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewConstantResponse(e))
	}
	return ConstantListResponse{Constants: out, Count: len(out)}
}
