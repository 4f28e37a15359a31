package chexpr

// Column 标识查询中一个可以被引用的对象。它只有名字,没有任何行为,
// 同一个 Column 可以被多棵表达式树共享。
type Column interface {
	Name() string
}

// TableColumn 表列引用,是所有表达式树的叶子节点。
// 类型参数 T 是列的语义值类型,只在编译期参与推导,运行期不携带任何信息。
type TableColumn[T any] struct {
	name string
}

// NewColumn 创建一个名为 name 的表列引用。
func NewColumn[T any](name string) TableColumn[T] {
	return TableColumn[T]{name: name}
}

func (c TableColumn[T]) Name() string {
	return c.name
}
