package chexpr

import (
	"github.com/ecodeclub/ekit/tuple/pair"
)

// AggregateFunction 表示一个聚合函数表达式。类型参数 V 是聚合结果的声明类型,
// 纯编译期标记。构造完成后整棵树不可变,可以在多个 goroutine 之间共享。
type AggregateFunction[V any] struct {
	// 目标列。count() 以及组合器包装出来的节点没有目标列,此时为 nil。
	target Column
	info   AggregateInfo
}

func (f AggregateFunction[V]) Name() string {
	if f.target == nil {
		return ""
	}
	return f.target.Name()
}

// TargetColumn 返回被聚合的目标列,可能为 nil。
func (f AggregateFunction[V]) TargetColumn() Column {
	return f.target
}

// Info 返回渲染器消费的变体数据。
func (f AggregateFunction[V]) Info() AggregateInfo {
	return f.info
}

// AggregateInfo 是聚合函数的封闭变体集,只能在本包内实现。
// 消费方(主要是渲染器)对它做穷尽的类型断言,新增变体时必须同步处理。
type AggregateInfo interface {
	aggregateInfo()
}

type CountInfo struct {
	// Column 为 nil 时统计所有行,否则统计该列的非空出现次数
	Column Column
}

type AvgInfo struct {
	Column Column
}

type SumInfo struct {
	Column   Column
	Modifier SumModifier
}

type SumMapInfo struct {
	Key   Column
	Value Column
}

type MinInfo struct {
	Column Column
}

type MaxInfo struct {
	Column Column
}

type UniqInfo struct {
	Column   Column
	Modifier UniqModifier
}

type AnyInfo struct {
	Column   Column
	Modifier AnyModifier
}

type GroupArrayInfo struct {
	Column Column
	// MaxValues 为 0 表示不限制收集的元素个数
	MaxValues int
}

type GroupUniqArrayInfo struct {
	Column Column
}

type TimeSeriesInfo struct {
	Column   Column
	Interval Interval
	// DateColumn 为 nil 时直接对 Column 分桶
	DateColumn Column
}

func (CountInfo) aggregateInfo()          {}
func (AvgInfo) aggregateInfo()            {}
func (SumInfo) aggregateInfo()            {}
func (SumMapInfo) aggregateInfo()         {}
func (MinInfo) aggregateInfo()            {}
func (MaxInfo) aggregateInfo()            {}
func (UniqInfo) aggregateInfo()           {}
func (AnyInfo) aggregateInfo()            {}
func (GroupArrayInfo) aggregateInfo()     {}
func (GroupUniqArrayInfo) aggregateInfo() {}
func (TimeSeriesInfo) aggregateInfo()     {}

// NewCount 统计所有行。
func NewCount() AggregateFunction[uint64] {
	return AggregateFunction[uint64]{info: CountInfo{}}
}

// NewCountColumn 统计 col 的非空出现次数。
func NewCountColumn(col Column) AggregateFunction[uint64] {
	return AggregateFunction[uint64]{target: col, info: CountInfo{Column: col}}
}

func NewAvg[T AggregateElement](col TableColumn[T]) AggregateFunction[float64] {
	return AggregateFunction[float64]{target: col, info: AvgInfo{Column: col}}
}

// NewSum 的结果类型刻意放宽到浮点,与目标引擎的聚合语义保持一致。
func NewSum[T AggregateElement](col TableColumn[T]) AggregateFunction[float64] {
	return AggregateFunction[float64]{target: col, info: SumInfo{Column: col, Modifier: SumSimple}}
}

func NewSumWithOverflow[T AggregateElement](col TableColumn[T]) AggregateFunction[float64] {
	return AggregateFunction[float64]{target: col, info: SumInfo{Column: col, Modifier: SumWithOverflow}}
}

// NewSumMap 以 key 列为键做 map 式聚合,结果是键序列与值序列组成的二元组。
func NewSumMap[K AggregateElement, V AggregateElement](key TableColumn[[]K], value TableColumn[[]V]) AggregateFunction[pair.Pair[[]K, []V]] {
	return AggregateFunction[pair.Pair[[]K, []V]]{target: key, info: SumMapInfo{Key: key, Value: value}}
}

func NewMin[T any](col TableColumn[T]) AggregateFunction[T] {
	return AggregateFunction[T]{target: col, info: MinInfo{Column: col}}
}

func NewMax[T any](col TableColumn[T]) AggregateFunction[T] {
	return AggregateFunction[T]{target: col, info: MaxInfo{Column: col}}
}

func NewUniq(col Column) AggregateFunction[uint64] {
	return newUniq(col, UniqSimple)
}

func NewUniqExact(col Column) AggregateFunction[uint64] {
	return newUniq(col, UniqExactModifier)
}

func NewUniqCombined(col Column) AggregateFunction[uint64] {
	return newUniq(col, UniqCombinedModifier)
}

func NewUniqHLL12(col Column) AggregateFunction[uint64] {
	return newUniq(col, UniqHLL12Modifier)
}

func newUniq(col Column, mod UniqModifier) AggregateFunction[uint64] {
	return AggregateFunction[uint64]{target: col, info: UniqInfo{Column: col, Modifier: mod}}
}

// NewAny 从分组中取任意一个值。
func NewAny[T any](col TableColumn[T]) AggregateFunction[T] {
	return newAny(col, AnySimple)
}

func NewAnyLast[T any](col TableColumn[T]) AggregateFunction[T] {
	return newAny(col, AnyLastModifier)
}

func NewAnyHeavy[T any](col TableColumn[T]) AggregateFunction[T] {
	return newAny(col, AnyHeavyModifier)
}

func newAny[T any](col TableColumn[T], mod AnyModifier) AggregateFunction[T] {
	return AggregateFunction[T]{target: col, info: AnyInfo{Column: col, Modifier: mod}}
}

// NewGroupArray 把分组内的值收集成序列。maxValues 只取第一个,为空表示不限。
func NewGroupArray[T any](col TableColumn[T], maxValues ...int) AggregateFunction[[]T] {
	info := GroupArrayInfo{Column: col}
	if len(maxValues) > 0 {
		info.MaxValues = maxValues[0]
	}
	return AggregateFunction[[]T]{target: col, info: info}
}

func NewGroupUniqArray[T any](col TableColumn[T]) AggregateFunction[[]T] {
	return AggregateFunction[[]T]{target: col, info: GroupUniqArrayInfo{Column: col}}
}
