package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`    // short message for humans
	Data       any         `json:"data,omitempty"`       // actual payload (can be nil)
	Error      string      `json:"error,omitempty"`      // error detail (if any)
	Errors     any         `json:"errors,omitempty"`     // field or row errors
	Pagination *Pagination `json:"pagination,omitempty"` // set on list responses
}

type Pagination struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}
