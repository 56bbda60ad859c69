// Package response implements the JSON envelope shared by every endpoint:
// {success, message, data, meta?, errors?, pagination?}.
package response

import "github.com/gin-gonic/gin"

type Body struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Meta       interface{} `json:"meta,omitempty"`
	Errors     []string    `json:"errors,omitempty"`
	Pagination interface{} `json:"pagination,omitempty"`
}

func Success(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, Body{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(c *gin.Context, status int, message string, data, meta interface{}) {
	c.JSON(status, Body{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Paginated(c *gin.Context, status int, message string, data, pagination interface{}) {
	c.JSON(status, Body{
		Success:    true,
		Message:    message,
		Data:       data,
		Pagination: pagination,
	})
}

func Error(c *gin.Context, status int, message string, errs ...string) {
	c.JSON(status, Body{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}
