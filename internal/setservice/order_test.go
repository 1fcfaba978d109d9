package setservice

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		in   string
		want Order
	}{
		{"", OrderNatural},
		{"natural", OrderNatural},
		{"N", OrderNatural},
		{"reverse", OrderReverse},
		{"r", OrderReverse},
		{"nocase", OrderNoCase},
		{"Case-Insensitive", OrderNoCase},
		{"numeric", OrderNumeric},
		{" num ", OrderNumeric},
	}

	for _, tt := range tests {
		got, err := ParseOrder(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseOrder("random")
	assert.True(t, errors.Is(err, ErrUnknownOrder))
}

func TestCompareNumeric(t *testing.T) {
	assert.Equal(t, 0, compareNumeric("1", "1.0"))
	assert.Equal(t, -1, compareNumeric("9", "10"))
	assert.Equal(t, 1, compareNumeric("1e3", "999"))
	assert.Equal(t, -1, compareNumeric("42", "abc"))
	assert.Equal(t, 1, compareNumeric("abc", "42"))
	assert.Equal(t, -1, compareNumeric("abc", "abd"))

	// 超出范围的数按无穷大比较，仍排在非数字之前
	assert.Equal(t, 1, compareNumeric("1e400", "1e300"))
	assert.Equal(t, -1, compareNumeric("-1e400", "-1e300"))
	assert.Equal(t, -1, compareNumeric("1e400", "abc"))
	assert.Equal(t, 0, compareNumeric("1e400", "1e500"))
}

func TestOrderComparator(t *testing.T) {
	for _, o := range []Order{OrderNatural, OrderReverse, OrderNoCase, OrderNumeric} {
		c, err := o.Comparator()
		require.NoError(t, err, o)
		assert.Equal(t, 0, c("x", "x"), o)
	}

	c, err := OrderReverse.Comparator()
	require.NoError(t, err)
	assert.Equal(t, 1, c("a", "b"))

	_, err = Order("bogus").Comparator()
	assert.True(t, errors.Is(err, ErrUnknownOrder))
}
