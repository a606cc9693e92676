package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubtotal(t *testing.T) {
	items := []CartItem{
		{ProductID: 1, UnitPrice: 100, Quantity: 2},
		{ProductID: 2, UnitPrice: 50, Quantity: 1},
	}
	assert.Equal(t, 250.0, Subtotal(items))
	assert.Equal(t, 0.0, Subtotal(nil))
}

func TestSubtotal_OrderIndependent(t *testing.T) {
	// The same final item multiset totals the same regardless of how the
	// cart got there.
	a := []CartItem{
		{ProductID: 1, UnitPrice: 100, Quantity: 3},
		{ProductID: 2, UnitPrice: 250, Quantity: 1},
	}
	b := []CartItem{
		{ProductID: 2, UnitPrice: 250, Quantity: 1},
		{ProductID: 1, UnitPrice: 100, Quantity: 1},
		{ProductID: 1, UnitPrice: 100, Quantity: 2},
	}
	assert.Equal(t, Subtotal(a), Subtotal(b))
}

func TestParseGrade(t *testing.T) {
	for _, s := range []string{"A", "b", "C", "new", "NEW"} {
		_, err := ParseGrade(s)
		assert.NoError(t, err, s)
	}

	_, err := ParseGrade("D")
	assert.Error(t, err)
	_, err = ParseGrade("")
	assert.Error(t, err)
}

func TestParseIcon(t *testing.T) {
	icon, err := ParseIcon("Laptop")
	require.NoError(t, err)
	assert.Equal(t, IconLaptop, icon)

	_, err = ParseIcon("unicorn")
	assert.Error(t, err)
}

func TestLangPick(t *testing.T) {
	assert.Equal(t, LangNO, ParseLang("no"))
	assert.Equal(t, LangEN, ParseLang("en"))
	assert.Equal(t, LangNO, ParseLang("sv")) // unknown falls back to Norwegian

	assert.Equal(t, "Hei", Pick(LangNO, "Hei", "Hello"))
	assert.Equal(t, "Hello", Pick(LangEN, "Hei", "Hello"))
	assert.Equal(t, "Hei", Pick(LangEN, "Hei", "")) // empty EN falls back
}
