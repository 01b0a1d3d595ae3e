package registry

// RegistryItem 定义注册表项的基本接口
type RegistryItem interface {
	// ID 返回注册表项的唯一标识符
	ID() string
}

// Registry 定义按插入顺序维护的泛型注册表接口
type Registry[T RegistryItem] interface {
	// Register 注册项目；ID 已存在时原位替换，保留原有顺序
	Register(item T) error
	// Get 根据ID从注册表中获取项目
	Get(id string) (T, bool)
	// List 按插入顺序列出注册表中的所有项目
	List() []T
	// Contains 检查注册表中是否存在指定ID的项目
	Contains(id string) bool
	// Update 更新注册表中已存在的项目
	Update(item T) bool
	// Modify 原子地读取并修改已存在的项目
	Modify(id string, fn func(T) T) bool
	// Len 返回项目数量
	Len() int
}
