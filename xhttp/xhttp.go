package xhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/drophub/DropHubEnd/errcode"
)

// Response 统一响应包装
type Response struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: errcode.CodeOK,
		Msg:  "success",
		Data: data,
	})
}

func Error(c *gin.Context, err error) {
	e := errcode.Parse(err)
	c.JSON(httpStatus(e.Code), Response{
		Code: e.Code,
		Msg:  e.Msg,
	})
}

func httpStatus(code int32) int {
	switch code {
	case errcode.CodeBadParam, errcode.CodeCustom:
		return http.StatusBadRequest
	case errcode.CodeNotFound:
		return http.StatusNotFound
	case errcode.CodeUnauthorized:
		return http.StatusForbidden
	case errcode.CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
