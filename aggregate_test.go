package chexpr

import (
	"testing"

	"github.com/ecodeclub/ekit/tuple/pair"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCount(t *testing.T) {
	t.Run("不带列统计所有行", func(t *testing.T) {
		f := NewCount()
		assert.Equal(t, "", f.Name())
		assert.Nil(t, f.TargetColumn())
		info, ok := f.Info().(CountInfo)
		require.True(t, ok)
		assert.Nil(t, info.Column)
	})
	t.Run("带列统计非空出现次数", func(t *testing.T) {
		col := NewColumn[string]("email")
		f := NewCountColumn(col)
		assert.Equal(t, "email", f.Name())
		info, ok := f.Info().(CountInfo)
		require.True(t, ok)
		assert.Equal(t, "email", info.Column.Name())
	})
}

func TestNewSum(t *testing.T) {
	amount := NewColumn[int64]("amount")
	testcases := []struct {
		name    string
		fn      AggregateFunction[float64]
		wantMod SumModifier
	}{
		{
			name:    "默认不处理溢出",
			fn:      NewSum(amount),
			wantMod: SumSimple,
		},
		{
			name:    "带溢出检查",
			fn:      NewSumWithOverflow(amount),
			wantMod: SumWithOverflow,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := tc.fn.Info().(SumInfo)
			require.True(t, ok)
			assert.Equal(t, tc.wantMod, info.Modifier)
			assert.Equal(t, "amount", info.Column.Name())
		})
	}
}

func TestNewSumMap(t *testing.T) {
	keys := NewColumn[[]int64]("status_keys")
	values := NewColumn[[]float64]("status_values")
	var f AggregateFunction[pair.Pair[[]int64, []float64]] = NewSumMap(keys, values)
	info, ok := f.Info().(SumMapInfo)
	require.True(t, ok)
	assert.Equal(t, "status_keys", info.Key.Name())
	assert.Equal(t, "status_values", info.Value.Name())
}

func TestNewMinMax(t *testing.T) {
	// min/max 保持列的值类型,不做放宽
	city := NewColumn[string]("city")
	var minFn AggregateFunction[string] = NewMin(city)
	var maxFn AggregateFunction[string] = NewMax(city)
	_, ok := minFn.Info().(MinInfo)
	assert.True(t, ok)
	_, ok = maxFn.Info().(MaxInfo)
	assert.True(t, ok)
}

func TestNewUniq(t *testing.T) {
	userID := NewColumn[int64]("user_id")
	testcases := []struct {
		name    string
		fn      AggregateFunction[uint64]
		wantMod UniqModifier
	}{
		{
			name:    "默认估算",
			fn:      NewUniq(userID),
			wantMod: UniqSimple,
		},
		{
			name:    "精确去重",
			fn:      NewUniqExact(userID),
			wantMod: UniqExactModifier,
		},
		{
			name:    "组合算法",
			fn:      NewUniqCombined(userID),
			wantMod: UniqCombinedModifier,
		},
		{
			name:    "HLL12与精确去重是不同的修饰符",
			fn:      NewUniqHLL12(userID),
			wantMod: UniqHLL12Modifier,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := tc.fn.Info().(UniqInfo)
			require.True(t, ok)
			assert.Equal(t, tc.wantMod, info.Modifier)
		})
	}
	assert.NotEqual(t, UniqExactModifier, UniqHLL12Modifier)
}

func TestNewAny(t *testing.T) {
	status := NewColumn[string]("status")
	testcases := []struct {
		name    string
		fn      AggregateFunction[string]
		wantMod AnyModifier
	}{
		{
			name:    "任意值",
			fn:      NewAny(status),
			wantMod: AnySimple,
		},
		{
			name:    "最后一个值",
			fn:      NewAnyLast(status),
			wantMod: AnyLastModifier,
		},
		{
			name:    "高频值",
			fn:      NewAnyHeavy(status),
			wantMod: AnyHeavyModifier,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			info, ok := tc.fn.Info().(AnyInfo)
			require.True(t, ok)
			assert.Equal(t, tc.wantMod, info.Modifier)
		})
	}
}

func TestNewGroupArray(t *testing.T) {
	tag := NewColumn[string]("tag")
	t.Run("不限个数", func(t *testing.T) {
		var f AggregateFunction[[]string] = NewGroupArray(tag)
		info, ok := f.Info().(GroupArrayInfo)
		require.True(t, ok)
		assert.Equal(t, 0, info.MaxValues)
	})
	t.Run("限制个数", func(t *testing.T) {
		f := NewGroupArray(tag, 10)
		info, ok := f.Info().(GroupArrayInfo)
		require.True(t, ok)
		assert.Equal(t, 10, info.MaxValues)
	})
	t.Run("去重收集", func(t *testing.T) {
		var f AggregateFunction[[]string] = NewGroupUniqArray(tag)
		_, ok := f.Info().(GroupUniqArrayInfo)
		assert.True(t, ok)
	})
}
