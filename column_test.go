package chexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewColumn(t *testing.T) {
	col := NewColumn[int64]("user_id")
	assert.Equal(t, "user_id", col.Name())
}

func TestTableColumn_SharedLeaf(t *testing.T) {
	// 多棵树共享同一个叶子列
	amount := NewColumn[float64]("amount")
	sum := NewSum(amount)
	avg := NewAvg(amount)
	assert.Equal(t, "amount", sum.Name())
	assert.Equal(t, "amount", avg.Name())
	assert.Equal(t, sum.TargetColumn(), avg.TargetColumn())
}
