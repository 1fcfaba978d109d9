package set

import "errors"

var (
	// ErrEmptyCollection 表示集合为空，无法获取首尾元素
	ErrEmptyCollection = errors.New("collection is empty")
)
