package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"worktrack/pkg/constants"
)

// RegisterValidators 注册自定义验证器（枚举字段）
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine: %T", binding.Validator.Engine())
	}

	validators := map[string]validator.Func{
		"issue_status": func(fl validator.FieldLevel) bool {
			return constants.IsValidIssueStatus(fl.Field().String())
		},
		"issue_type": func(fl validator.FieldLevel) bool {
			return constants.IsValidIssueType(fl.Field().String())
		},
		"priority": func(fl validator.FieldLevel) bool {
			return constants.IsValidPriority(fl.Field().String())
		},
		"project_status": func(fl validator.FieldLevel) bool {
			return constants.IsValidProjectStatus(fl.Field().String())
		},
		"user_role": func(fl validator.FieldLevel) bool {
			return constants.IsValidRole(fl.Field().String())
		},
	}

	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// FormatValidationError 格式化验证错误信息
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	// 处理validator的验证错误
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			messages = append(messages, formatFieldError(e))
		}
		return strings.Join(messages, "; ")
	}

	// 处理JSON解析错误
	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return fmt.Sprintf("field '%s' should be %s", jsonErr.Field, jsonErr.Type.String())
	}

	// 处理JSON语法错误
	if _, ok := err.(*json.SyntaxError); ok {
		return "invalid JSON format"
	}

	// 其他错误直接返回错误信息
	return err.Error()
}

// formatFieldError 格式化单个字段的验证错误
func formatFieldError(e validator.FieldError) string {
	field := e.Field()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("field '%s' is required", field)
	case "max":
		return fmt.Sprintf("field '%s' must be at most %s characters", field, e.Param())
	case "min":
		return fmt.Sprintf("field '%s' must be at least %s characters", field, e.Param())
	case "oneof":
		return fmt.Sprintf("field '%s' must be one of: %s", field, e.Param())
	case "email":
		return fmt.Sprintf("field '%s' must be a valid email address", field)
	case "issue_status":
		return fmt.Sprintf("field '%s' must be a valid issue status", field)
	case "issue_type":
		return fmt.Sprintf("field '%s' must be a valid issue type", field)
	case "priority":
		return fmt.Sprintf("field '%s' must be a valid priority level", field)
	case "project_status":
		return fmt.Sprintf("field '%s' must be a valid project status", field)
	case "user_role":
		return fmt.Sprintf("field '%s' must be a valid role", field)
	default:
		return fmt.Sprintf("field '%s' validation failed on '%s' tag", field, e.Tag())
	}
}
