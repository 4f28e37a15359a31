package chexpr

// ExpressionColumn 是包装单个目标列的计算节点,类型参数 O 是计算结果的声明类型。
// 构造时只记录目标列的引用,不检查也不修改目标列。
type ExpressionColumn[O any] struct {
	target Column
	info   ExpressionInfo
}

func (e ExpressionColumn[O]) Name() string {
	return e.target.Name()
}

func (e ExpressionColumn[O]) TargetColumn() Column {
	return e.target
}

func (e ExpressionColumn[O]) Info() ExpressionInfo {
	return e.info
}

// ExpressionInfo 是编码类透传表达式的封闭变体集,
// 这些表达式不参与任何组合逻辑,只决定渲染时的函数名。
type ExpressionInfo interface {
	expressionInfo()
}

type HexInfo struct{}

type UnhexInfo struct{}

type UUIDStringToNumInfo struct{}

type UUIDNumToStringInfo struct{}

type BitmaskToListInfo struct{}

func (HexInfo) expressionInfo()             {}
func (UnhexInfo) expressionInfo()           {}
func (UUIDStringToNumInfo) expressionInfo() {}
func (UUIDNumToStringInfo) expressionInfo() {}
func (BitmaskToListInfo) expressionInfo()   {}

func Hex(col Column) ExpressionColumn[string] {
	return ExpressionColumn[string]{target: col, info: HexInfo{}}
}

func Unhex(col Column) ExpressionColumn[string] {
	return ExpressionColumn[string]{target: col, info: UnhexInfo{}}
}

func UUIDStringToNum(col Column) ExpressionColumn[string] {
	return ExpressionColumn[string]{target: col, info: UUIDStringToNumInfo{}}
}

func UUIDNumToString(col Column) ExpressionColumn[string] {
	return ExpressionColumn[string]{target: col, info: UUIDNumToStringInfo{}}
}

func BitmaskToList(col Column) ExpressionColumn[string] {
	return ExpressionColumn[string]{target: col, info: BitmaskToListInfo{}}
}
