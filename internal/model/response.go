package model

// APIResponse is the uniform envelope every endpoint returns.
//
// Success: {status, success:true, message, data}
// Failure: {status, success:false, data:null, errors:{field_or_general:[...]}}
type APIResponse struct {
	Status  int                 `json:"status"`
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}
