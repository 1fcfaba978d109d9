package set

import (
	"cmp"
	"strings"
)

// Comparator 比较两个元素
// a<b 返回负数，a==b 返回0，a>b 返回正数
type Comparator[T any] func(a, b T) int

// NaturalOrder 返回内置有序类型的自然顺序比较器
func NaturalOrder[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// Reverse 返回与给定比较器顺序相反的比较器
func Reverse[T any](c Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// CaseInsensitive 忽略大小写比较两个字符串
func CaseInsensitive(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
