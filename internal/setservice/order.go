package setservice

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fyerfyer/treeset/set"
)

// Order 定义集合的排序方式
type Order string

const (
	// OrderNatural 按字节顺序比较字符串
	OrderNatural Order = "natural"
	// OrderReverse 与natural顺序相反
	OrderReverse Order = "reverse"
	// OrderNoCase 忽略大小写
	OrderNoCase Order = "nocase"
	// OrderNumeric 数字按数值排序，非数字排在所有数字之后
	OrderNumeric Order = "numeric"
)

// ParseOrder 解析排序方式，支持简写
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "natural", "n":
		return OrderNatural, nil
	case "reverse", "r":
		return OrderReverse, nil
	case "nocase", "case-insensitive", "i":
		return OrderNoCase, nil
	case "numeric", "num":
		return OrderNumeric, nil
	default:
		return "", errors.Wrapf(ErrUnknownOrder, "%q", s)
	}
}

// Comparator 返回排序方式对应的比较器
func (o Order) Comparator() (set.Comparator[string], error) {
	switch o {
	case OrderNatural:
		return set.NaturalOrder[string](), nil
	case OrderReverse:
		return set.Reverse(set.NaturalOrder[string]()), nil
	case OrderNoCase:
		return set.CaseInsensitive, nil
	case OrderNumeric:
		return compareNumeric, nil
	default:
		return nil, errors.Wrapf(ErrUnknownOrder, "%q", string(o))
	}
}

// compareNumeric 数值相等的两个字符串（如"1"和"1.0"）视为同一元素
// 超出float64范围的数（如"1e400"）按±Inf参与比较
func compareNumeric(a, b string) int {
	fa, okA := parseNumber(a)
	fb, okB := parseNumber(b)

	switch {
	case okA && okB:
		return cmp.Compare(fa, fb)
	case okA:
		return -1
	case okB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}
