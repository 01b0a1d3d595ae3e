// Package registry 提供按插入顺序维护的泛型注册表
//
// 注册表以 ID 为键保存项目，List 按首次注册的顺序返回结果；
// 对已存在 ID 的再次注册会原位替换，不改变其位置。所有操作都由读写锁保护，
// Modify 在同一把写锁内完成读取与写回。
//
// 基本用法：
//
//	type item struct{ id string }
//
//	func (i item) ID() string { return i.id }
//
//	reg := registry.NewRegistry[item]()
//	_ = reg.Register(item{id: "a"})
//	if it, ok := reg.Get("a"); ok {
//		// 使用项目
//	}
package registry
