package validator

import (
	v10 "github.com/go-playground/validator/v10"
)

var validate = v10.New()

// Verify 校验请求结构体上的validate标签
func Verify(v interface{}) error {
	return validate.Struct(v)
}
