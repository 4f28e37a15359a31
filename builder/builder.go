// Package builder 把 chexpr 的表达式树渲染成 SQL 片段文本。
// 组合器的后缀按照构造树时的应用顺序依次拼接。
package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/meoying/chexpr"
	"go.uber.org/multierr"
)

type aggregateColumn interface {
	chexpr.Column
	Info() chexpr.AggregateInfo
}

type expressionColumn interface {
	chexpr.Column
	TargetColumn() chexpr.Column
	Info() chexpr.ExpressionInfo
}

// Build 渲染任意表达式节点。裸列渲染为列名,计算列与聚合函数渲染为函数调用。
func Build(col chexpr.Column) (string, error) {
	switch c := col.(type) {
	case nil:
		return "", ErrNilColumn
	case aggregateColumn:
		parts, err := aggregateParts(c.Info())
		if err != nil {
			return "", err
		}
		return parts.render(), nil
	case expressionColumn:
		return buildExpression(c)
	default:
		if col.Name() == "" {
			return "", ErrEmptyColumnName
		}
		return col.Name(), nil
	}
}

// BuildSelect 渲染一组表达式并用逗号连接,全部失败原因会被合并返回。
func BuildSelect(cols ...chexpr.Column) (string, error) {
	if len(cols) == 0 {
		return "", ErrEmptyColumnList
	}
	frags := make([]string, 0, len(cols))
	var err error
	for _, c := range cols {
		frag, buildErr := Build(c)
		if buildErr != nil {
			err = multierr.Append(err, buildErr)
			continue
		}
		frags = append(frags, frag)
	}
	if err != nil {
		return "", err
	}
	return strings.Join(frags, ", "), nil
}

func buildExpression(e expressionColumn) (string, error) {
	arg, err := Build(e.TargetColumn())
	if err != nil {
		return "", err
	}
	var name string
	switch e.Info().(type) {
	case chexpr.HexInfo:
		name = "hex"
	case chexpr.UnhexInfo:
		name = "unhex"
	case chexpr.UUIDStringToNumInfo:
		name = "UUIDStringToNum"
	case chexpr.UUIDNumToStringInfo:
		name = "UUIDNumToString"
	case chexpr.BitmaskToListInfo:
		name = "bitmaskToList"
	default:
		return "", fmt.Errorf("%w: %T", ErrUnsupportedExpression, e.Info())
	}
	return fmt.Sprintf("%s(%s)", name, arg), nil
}

// fnParts 是一次函数调用渲染的中间形态,形如 name(params)(args)。
// raw 非空时表示该节点不走函数调用模式,直接输出。
type fnParts struct {
	name   string
	params []string
	args   []string
	raw    string
}

func (p fnParts) render() string {
	if p.raw != "" {
		return p.raw
	}
	var sb strings.Builder
	sb.WriteString(p.name)
	if len(p.params) > 0 {
		sb.WriteByte('(')
		sb.WriteString(strings.Join(p.params, ", "))
		sb.WriteByte(')')
	}
	sb.WriteByte('(')
	sb.WriteString(strings.Join(p.args, ", "))
	sb.WriteByte(')')
	return sb.String()
}

func aggregateParts(info chexpr.AggregateInfo) (fnParts, error) {
	switch a := info.(type) {
	case chexpr.CountInfo:
		if a.Column == nil {
			return fnParts{name: "count"}, nil
		}
		return singleArg("count", a.Column)
	case chexpr.AvgInfo:
		return singleArg("avg", a.Column)
	case chexpr.SumInfo:
		name, err := sumName(a.Modifier)
		if err != nil {
			return fnParts{}, err
		}
		return singleArg(name, a.Column)
	case chexpr.SumMapInfo:
		key, err := Build(a.Key)
		if err != nil {
			return fnParts{}, err
		}
		value, err := Build(a.Value)
		if err != nil {
			return fnParts{}, err
		}
		return fnParts{name: "sumMap", args: []string{key, value}}, nil
	case chexpr.MinInfo:
		return singleArg("min", a.Column)
	case chexpr.MaxInfo:
		return singleArg("max", a.Column)
	case chexpr.UniqInfo:
		name, err := uniqName(a.Modifier)
		if err != nil {
			return fnParts{}, err
		}
		return singleArg(name, a.Column)
	case chexpr.AnyInfo:
		name, err := anyName(a.Modifier)
		if err != nil {
			return fnParts{}, err
		}
		return singleArg(name, a.Column)
	case chexpr.GroupArrayInfo:
		parts, err := singleArg("groupArray", a.Column)
		if err != nil {
			return fnParts{}, err
		}
		if a.MaxValues > 0 {
			parts.params = []string{strconv.Itoa(a.MaxValues)}
		}
		return parts, nil
	case chexpr.GroupUniqArrayInfo:
		return singleArg("groupUniqArray", a.Column)
	case chexpr.TimeSeriesInfo:
		return timeSeriesParts(a)
	case chexpr.QuantileInfo:
		return leveledParts("quantile", a.Column, []float64{a.Level}, a.Modifier)
	case chexpr.QuantilesInfo:
		return leveledParts("quantiles", a.Column, a.Levels, a.Modifier)
	case chexpr.MedianInfo:
		return leveledParts("median", a.Column, []float64{a.Level}, a.Modifier)
	case chexpr.CombinedInfo:
		return combinedParts(a)
	default:
		return fnParts{}, fmt.Errorf("%w: %T", ErrUnsupportedAggregate, info)
	}
}

func combinedParts(info chexpr.CombinedInfo) (fnParts, error) {
	inner, err := aggregateParts(info.Inner)
	if err != nil {
		return fnParts{}, err
	}
	if inner.raw != "" {
		return fnParts{}, fmt.Errorf("%w: %T 不是函数调用形态", ErrUnsupportedCombinator, info.Inner)
	}
	switch c := info.Combinator.(type) {
	case chexpr.IfCombinator:
		cond, err := Build(c.Condition)
		if err != nil {
			return fnParts{}, err
		}
		inner.name += "If"
		inner.args = append(inner.args, cond)
	case chexpr.ArrayCombinator:
		inner.name += "Array"
	case chexpr.ForEachCombinator:
		inner.name += "ForEach"
	case chexpr.StateCombinator:
		inner.name += "State"
	case chexpr.MergeCombinator:
		inner.name += "Merge"
	default:
		return fnParts{}, fmt.Errorf("%w: %T", ErrUnsupportedCombinator, info.Combinator)
	}
	return inner, nil
}

func leveledParts(base string, col chexpr.Column, levels []float64, mod chexpr.LevelModifier) (fnParts, error) {
	arg, err := Build(col)
	if err != nil {
		return fnParts{}, err
	}
	parts := fnParts{
		name: base,
		params: slice.Map(levels, func(idx int, src float64) string {
			return formatLevel(src)
		}),
		args: []string{arg},
	}
	switch m := mod.(type) {
	case chexpr.LevelSimple:
	case chexpr.LevelExact:
		parts.name += "Exact"
	case chexpr.LevelTDigest:
		parts.name += "TDigest"
	case chexpr.LevelTiming:
		parts.name += "Timing"
	case chexpr.LevelTimingWeighted:
		weight, err := Build(m.Weight)
		if err != nil {
			return fnParts{}, err
		}
		parts.name += "TimingWeighted"
		parts.args = append(parts.args, weight)
	case chexpr.LevelExactWeighted:
		weight, err := Build(m.Weight)
		if err != nil {
			return fnParts{}, err
		}
		parts.name += "ExactWeighted"
		parts.args = append(parts.args, weight)
	case chexpr.LevelDeterministic:
		determinator, err := Build(m.Determinator)
		if err != nil {
			return fnParts{}, err
		}
		parts.name += "Deterministic"
		parts.args = append(parts.args, determinator)
	default:
		return fnParts{}, fmt.Errorf("%w: %T", ErrUnsupportedModifier, mod)
	}
	return parts, nil
}

func timeSeriesParts(info chexpr.TimeSeriesInfo) (fnParts, error) {
	dateCol := info.DateColumn
	if dateCol == nil {
		dateCol = info.Column
	}
	dateExpr, err := Build(dateCol)
	if err != nil {
		return fnParts{}, err
	}
	step := info.Interval.StepSeconds()
	return fnParts{
		raw: fmt.Sprintf("intDiv(toUInt32(%s), %d) * %d", dateExpr, step, step),
	}, nil
}

func singleArg(name string, col chexpr.Column) (fnParts, error) {
	arg, err := Build(col)
	if err != nil {
		return fnParts{}, err
	}
	return fnParts{name: name, args: []string{arg}}, nil
}

func sumName(mod chexpr.SumModifier) (string, error) {
	switch mod {
	case chexpr.SumSimple:
		return "sum", nil
	case chexpr.SumWithOverflow:
		return "sumWithOverflow", nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedModifier, mod)
	}
}

func uniqName(mod chexpr.UniqModifier) (string, error) {
	switch mod {
	case chexpr.UniqSimple:
		return "uniq", nil
	case chexpr.UniqExactModifier:
		return "uniqExact", nil
	case chexpr.UniqCombinedModifier:
		return "uniqCombined", nil
	case chexpr.UniqHLL12Modifier:
		return "uniqHLL12", nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedModifier, mod)
	}
}

func anyName(mod chexpr.AnyModifier) (string, error) {
	switch mod {
	case chexpr.AnySimple:
		return "any", nil
	case chexpr.AnyLastModifier:
		return "anyLast", nil
	case chexpr.AnyHeavyModifier:
		return "anyHeavy", nil
	default:
		return "", fmt.Errorf("%w: %v", ErrUnsupportedModifier, mod)
	}
}

func formatLevel(level float64) string {
	return strconv.FormatFloat(level, 'g', -1, 64)
}
