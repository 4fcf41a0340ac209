package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type StringList []string

// 实现 sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = []string{}
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	return json.Unmarshal(bytes, l)
}

// 实现 driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Contains 是否包含指定元素
func (l StringList) Contains(s string) bool {
	for _, item := range l {
		if item == s {
			return true
		}
	}
	return false
}
