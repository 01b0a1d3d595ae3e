package registry

import (
	"errors"
	"sync"
)

// ErrEmptyID 在注册ID为空的项目时返回
var ErrEmptyID = errors.New("registry: empty item id")

// BaseRegistry 是注册表的基础实现
type BaseRegistry[T RegistryItem] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewBaseRegistry 创建一个新的基础注册表实例
func NewBaseRegistry[T RegistryItem]() *BaseRegistry[T] {
	return &BaseRegistry[T]{
		items: make(map[string]T),
	}
}

// Register 注册一个新的项目到注册表
func (r *BaseRegistry[T]) Register(item T) error {
	id := item.ID()
	if id == "" {
		return ErrEmptyID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[id]; !exists {
		r.order = append(r.order, id)
	}
	r.items[id] = item
	return nil
}

// Get 根据ID从注册表中获取项目
func (r *BaseRegistry[T]) Get(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[id]
	return item, exists
}

// List 列出注册表中的所有项目
func (r *BaseRegistry[T]) List() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]T, 0, len(r.order))
	for _, id := range r.order {
		items = append(items, r.items[id])
	}
	return items
}

// Contains 检查注册表中是否存在指定ID的项目
func (r *BaseRegistry[T]) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.items[id]
	return exists
}

// Update 更新注册表中的项目
func (r *BaseRegistry[T]) Update(item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := item.ID()
	if _, exists := r.items[id]; !exists {
		return false
	}

	r.items[id] = item
	return true
}

// Modify 在写锁内读取、修改并写回指定ID的项目；项目不存在时返回 false。
// fn 返回项目的 ID 必须保持不变。
func (r *BaseRegistry[T]) Modify(id string, fn func(T) T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, exists := r.items[id]
	if !exists {
		return false
	}

	r.items[id] = fn(item)
	return true
}

// Len 返回注册表中的项目数量
func (r *BaseRegistry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.order)
}
