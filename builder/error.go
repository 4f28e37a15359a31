package builder

import "github.com/pkg/errors"

var (
	ErrNilColumn             = errors.New("builder: column 为 nil")
	ErrEmptyColumnName       = errors.New("builder: 列名为空")
	ErrEmptyColumnList       = errors.New("builder: 列列表为空")
	ErrUnsupportedAggregate  = errors.New("builder: 不支持的聚合函数变体")
	ErrUnsupportedCombinator = errors.New("builder: 不支持的组合器变体")
	ErrUnsupportedModifier   = errors.New("builder: 不支持的修饰符")
	ErrUnsupportedExpression = errors.New("builder: 不支持的表达式变体")
)
