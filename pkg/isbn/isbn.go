// Package isbn 提供ISBN号的归一化与格式校验
//
// 归一化规则（全局统一）：
// 1. 去除所有连字符"-"
// 2. 归一化后必须恰好为10位或13位数字
//
// 例如：978-0-451-52493-5 → 9780451524935（合法）
// 例如：12345 → 12345（位数不足，非法）
package isbn

import (
	"regexp"
	"strings"
)

// pattern 10位或13位纯数字
var pattern = regexp.MustCompile(`^\d{10}$|^\d{13}$`)

// Normalize 归一化ISBN：去除连字符
// 注意：只去除"-"，不做其他清洗（空格等视为非法字符，由IsValid拦截）
func Normalize(raw string) string {
	return strings.ReplaceAll(raw, "-", "")
}

// IsValid 校验归一化后的ISBN是否为10位或13位数字
// 简化实现：只检查位数和是否全为数字（生产环境可补充校验位验证）
func IsValid(normalized string) bool {
	return pattern.MatchString(normalized)
}

// NormalizeAndValidate 归一化并校验，一步完成
// 返回：归一化后的ISBN和是否合法
func NormalizeAndValidate(raw string) (string, bool) {
	n := Normalize(raw)
	return n, IsValid(n)
}
