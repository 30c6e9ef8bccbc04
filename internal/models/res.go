package models

type ApiResponse struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Code       string      `json:"code,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func ErrorResponse(code, err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Code:    code,
		Error:   err,
	}
}

func PaginatedResponse(data interface{}, p Pagination) ApiResponse {
	return ApiResponse{
		Success:    true,
		Data:       data,
		Pagination: &p,
	}
}
