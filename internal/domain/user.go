package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// User 目录中的一条用户记录；ID 由服务端分配，创建后不变
type User struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"` // 缺省时序列化为 null
	Age   *int    `json:"age"`   // 缺省时序列化为 null
}

// UserInput 创建/更新请求体；phone/age 可选
type UserInput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Age   LaxAge `json:"age"`
}

// LaxAge 容错的年龄字段：数字、数字字符串都接受，
// null/空串/非数字/非正数一律归一为“无值”，不报错
type LaxAge struct {
	Value *int
}

func (a *LaxAge) UnmarshalJSON(b []byte) error {
	a.Value = nil
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	s := string(b)
	if len(s) >= 2 && s[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return nil
	}
	a.Value = &n
	return nil
}

// AgeFromString 表单文本走同一套归一规则
func AgeFromString(s string) LaxAge {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return LaxAge{}
	}
	return LaxAge{Value: &n}
}

func (a LaxAge) MarshalJSON() ([]byte, error) {
	if a.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*a.Value)
}

// NormPhone 空串归一为无值
func NormPhone(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
