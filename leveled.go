package chexpr

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// LevelModifier 是分位数族函数的封闭变体集,用来选择底层近似算法。
// 带权与确定性采样两类变体额外携带一个列引用。
type LevelModifier interface {
	levelModifier()
}

type LevelSimple struct{}

type LevelExact struct{}

type LevelTDigest struct{}

type LevelTiming struct{}

type LevelTimingWeighted struct {
	Weight Column
}

type LevelExactWeighted struct {
	Weight Column
}

type LevelDeterministic struct {
	Determinator Column
}

func (LevelSimple) levelModifier()         {}
func (LevelExact) levelModifier()          {}
func (LevelTDigest) levelModifier()        {}
func (LevelTiming) levelModifier()         {}
func (LevelTimingWeighted) levelModifier() {}
func (LevelExactWeighted) levelModifier()  {}
func (LevelDeterministic) levelModifier()  {}

type QuantileInfo struct {
	Column   Column
	Level    float64
	Modifier LevelModifier
}

type QuantilesInfo struct {
	Column   Column
	Levels   []float64
	Modifier LevelModifier
}

type MedianInfo struct {
	Column   Column
	Level    float64
	Modifier LevelModifier
}

func (QuantileInfo) aggregateInfo()  {}
func (QuantilesInfo) aggregateInfo() {}
func (MedianInfo) aggregateInfo()    {}

// NewQuantile 构造单分位数聚合,level 允许取到闭区间 [0, 1] 的端点。
func NewQuantile[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelSimple{})
}

func NewQuantileExact[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelExact{})
}

func NewQuantileTDigest[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelTDigest{})
}

func NewQuantileTiming[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelTiming{})
}

func NewQuantileTimingWeighted[T any](col TableColumn[T], weight Column, level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelTimingWeighted{Weight: weight})
}

func NewQuantileExactWeighted[T any](col TableColumn[T], weight Column, level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelExactWeighted{Weight: weight})
}

func NewQuantileDeterministic[T any, D AggregateElement](col TableColumn[T], determinator TableColumn[D], level float64) (AggregateFunction[T], error) {
	return newQuantile(col, level, LevelDeterministic{Determinator: determinator})
}

func newQuantile[T any](col TableColumn[T], level float64, mod LevelModifier) (AggregateFunction[T], error) {
	// 反向判断,NaN 无法通过任何比较,同样会被拒绝
	if !(level >= 0 && level <= 1) {
		return AggregateFunction[T]{}, fmt.Errorf("%w: %v", ErrQuantileLevelOutOfRange, level)
	}
	return AggregateFunction[T]{target: col, info: QuantileInfo{Column: col, Level: level, Modifier: mod}}, nil
}

// NewQuantiles 构造多分位数聚合,结果是与 levels 一一对应的序列。
// 所有非法 level 会被收集进同一个错误返回。
func NewQuantiles[T any](col TableColumn[T], levels ...float64) (AggregateFunction[[]T], error) {
	return newQuantiles(col, LevelSimple{}, levels)
}

func NewQuantilesExact[T any](col TableColumn[T], levels ...float64) (AggregateFunction[[]T], error) {
	return newQuantiles(col, LevelExact{}, levels)
}

func NewQuantilesTDigest[T any](col TableColumn[T], levels ...float64) (AggregateFunction[[]T], error) {
	return newQuantiles(col, LevelTDigest{}, levels)
}

func NewQuantilesTiming[T any](col TableColumn[T], levels ...float64) (AggregateFunction[[]T], error) {
	return newQuantiles(col, LevelTiming{}, levels)
}

func newQuantiles[T any](col TableColumn[T], mod LevelModifier, levels []float64) (AggregateFunction[[]T], error) {
	if len(levels) == 0 {
		return AggregateFunction[[]T]{}, ErrEmptyLevelList
	}
	var errList *multierror.Error
	for _, level := range levels {
		if !(level >= 0 && level <= 1) {
			errList = multierror.Append(errList, fmt.Errorf("%w: %v", ErrQuantileLevelOutOfRange, level))
		}
	}
	if err := errList.ErrorOrNil(); err != nil {
		return AggregateFunction[[]T]{}, err
	}
	return AggregateFunction[[]T]{target: col, info: QuantilesInfo{Column: col, Levels: levels, Modifier: mod}}, nil
}

// NewMedian 的 level 取开区间 (0, 1),端点不是合法的中位数。
func NewMedian[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelSimple{})
}

func NewMedianExact[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelExact{})
}

func NewMedianTDigest[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelTDigest{})
}

func NewMedianTiming[T any](col TableColumn[T], level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelTiming{})
}

func NewMedianTimingWeighted[T any](col TableColumn[T], weight Column, level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelTimingWeighted{Weight: weight})
}

func NewMedianExactWeighted[T any](col TableColumn[T], weight Column, level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelExactWeighted{Weight: weight})
}

func NewMedianDeterministic[T any, D AggregateElement](col TableColumn[T], determinator TableColumn[D], level float64) (AggregateFunction[T], error) {
	return newMedian(col, level, LevelDeterministic{Determinator: determinator})
}

func newMedian[T any](col TableColumn[T], level float64, mod LevelModifier) (AggregateFunction[T], error) {
	if !(level > 0 && level < 1) {
		return AggregateFunction[T]{}, fmt.Errorf("%w: %v", ErrMedianLevelOutOfRange, level)
	}
	return AggregateFunction[T]{target: col, info: MedianInfo{Column: col, Level: level, Modifier: mod}}, nil
}
