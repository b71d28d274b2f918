package errcode

import "github.com/pkg/errors"

// Err 带业务码的错误，HTTP边界统一返回这个结构
type Err struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
}

func (e *Err) Error() string {
	return e.Msg
}

func NewErr(code int32, msg string) *Err {
	return &Err{Code: code, Msg: msg}
}

const (
	CodeOK           int32 = 200
	CodeBadParam     int32 = 10001
	CodeCustom       int32 = 10002
	CodeNotFound     int32 = 10004
	CodeUnauthorized int32 = 10005
	CodeConflict     int32 = 10009
	CodeServerErr    int32 = 10500
)

var (
	ErrParam        = NewErr(CodeBadParam, "invalid request param")
	ErrNotFound     = NewErr(CodeNotFound, "resource not found")
	ErrUnauthorized = NewErr(CodeUnauthorized, "unauthorized")
	ErrConflict     = NewErr(CodeConflict, "state conflict")
	ErrServer       = NewErr(CodeServerErr, "internal server error")
)

// NewCustomErr 业务侧自定义消息的错误
func NewCustomErr(msg string) *Err {
	return NewErr(CodeCustom, msg)
}

// Parse 从错误链里取出*Err，取不到归为服务端错误
func Parse(err error) *Err {
	if err == nil {
		return nil
	}
	var e *Err
	if errors.As(err, &e) {
		return e
	}
	return NewErr(CodeServerErr, err.Error())
}
