package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// 错误分类哨兵，服务层统一用这三类包装业务错误，
// 处理器据此映射HTTP状态码
var (
	ErrValidation = errors.New("参数无效")
	ErrNotFound   = errors.New("记录不存在")
	ErrConflict   = errors.New("记录已存在")
)

// Validationf 包装一个参数校验错误
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf 包装一个记录不存在错误
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// Conflictf 包装一个唯一性冲突错误
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// HTTPStatus 返回错误对应的HTTP状态码
// 唯一性冲突和参数错误一样返回400，错误消息里体现冲突原因
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
