package chexpr

// StateResult 表示可合并的部分聚合状态,是纯幽灵类型:
// 只负责把 State/Merge 的类型变换串起来,从不携带运行期数据。
type StateResult[V any] struct{}

// CombinatorInfo 是组合器的封闭变体集。每个组合器都是一次类型层面的变换,
// 变换规则由下面 If/Array/ForEach/State/Merge 的函数签名表达。
type CombinatorInfo interface {
	combinatorInfo()
}

type IfCombinator struct {
	Condition Column
}

type ArrayCombinator struct{}

type ForEachCombinator struct{}

type StateCombinator struct{}

type MergeCombinator struct{}

func (IfCombinator) combinatorInfo()      {}
func (ArrayCombinator) combinatorInfo()   {}
func (ForEachCombinator) combinatorInfo() {}
func (StateCombinator) combinatorInfo()   {}
func (MergeCombinator) combinatorInfo()   {}

// CombinedInfo 是组合器包装出来的聚合节点的变体数据。
// Inner 保留被包装函数的变体,嵌套时 Combinator 的应用顺序决定渲染后缀的顺序。
type CombinedInfo struct {
	Combinator CombinatorInfo
	Inner      AggregateInfo
}

func (CombinedInfo) aggregateInfo() {}

// If 给聚合加上过滤谓词,不改变结果类型。cond 通常是布尔表列或计算列。
func If[V any](f AggregateFunction[V], cond Column) AggregateFunction[V] {
	return AggregateFunction[V]{info: CombinedInfo{Combinator: IfCombinator{Condition: cond}, Inner: f.info}}
}

// Array 把作用在序列列上的聚合展开成对扁平化元素的聚合,结果类型从序列降为元素。
func Array[V any](f AggregateFunction[[]V]) AggregateFunction[V] {
	return AggregateFunction[V]{info: CombinedInfo{Combinator: ArrayCombinator{}, Inner: f.info}}
}

// ForEach 对序列列做按位切片的聚合:合成一个与 col 同名、但标记为元素类型的
// 裸列引用交给 fn,再把 fn 产出的聚合包装起来。每行一个序列时,渲染结果按
// 下标跨行聚合,每个下标产出一个元素,缺失的尾部元素视作不存在而非补零。
// fn 允许失败,分位数一族的构造错误会原样透传;不会失败的 fn 返回 nil 即可。
func ForEach[V any, R any](col TableColumn[[]V], fn func(TableColumn[V]) (AggregateFunction[R], error)) (AggregateFunction[[]R], error) {
	elem := NewColumn[V](col.Name())
	inner, err := fn(elem)
	if err != nil {
		return AggregateFunction[[]R]{}, err
	}
	return AggregateFunction[[]R]{info: CombinedInfo{Combinator: ForEachCombinator{}, Inner: inner.info}}, nil
}

// State 捕获部分聚合状态,供跨分片的两阶段聚合使用。
// 状态类型的包装节点在这里直接构造出来,不存在任何类型重解释。
func State[V any](f AggregateFunction[V]) AggregateFunction[StateResult[V]] {
	return AggregateFunction[StateResult[V]]{info: CombinedInfo{Combinator: StateCombinator{}, Inner: f.info}}
}

// Merge 把之前捕获的状态合并回最终结果,只接受状态类型的聚合,
// 对非状态聚合应用 Merge 无法通过编译。
func Merge[V any](f AggregateFunction[StateResult[V]]) AggregateFunction[V] {
	return AggregateFunction[V]{info: CombinedInfo{Combinator: MergeCombinator{}, Inner: f.info}}
}
