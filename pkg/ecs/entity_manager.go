// Package ecs 提供背景场景和按钮使用的最小实体-组件存储
package ecs

import (
	"reflect"
)

// EntityID 是实体的唯一标识符，0 保留为无效ID
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 实体按创建顺序保存，查询结果也按创建顺序返回，
// 因此按查询结果绘制时，先创建的实体先绘制。
//
// Seal() 之后实体集合固定，不能再创建实体，只能修改组件内容。
// 实体只能通过 Clear() 整体销毁。
type EntityManager struct {
	nextID uint64
	// 创建顺序
	order []EntityID
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any

	sealed bool
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// Seal 固定实体集合
func (em *EntityManager) Seal() {
	em.sealed = true
}

// Sealed 是否已固定实体集合
func (em *EntityManager) Sealed() bool {
	return em.sealed
}

// EntityCount 返回当前实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// CreateEntity 创建新实体并返回唯一ID
// Seal 之后调用属于编程错误，会 panic
func (em *EntityManager) CreateEntity() EntityID {
	if em.sealed {
		panic("ecs: CreateEntity on sealed EntityManager")
	}
	id := EntityID(em.nextID)
	em.nextID++
	em.order = append(em.order, id)
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// AddComponent 为实体添加组件，同类型组件会被替换
// 实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.components[id][componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.components[id][componentType]
	return found
}

// Clear 删除全部实体并解除 Seal（用于场景销毁）
// ID 继续递增，旧 ID 不会被复用
func (em *EntityManager) Clear() {
	clear(em.components)
	em.order = em.order[:0]
	em.sealed = false
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 参数: componentTypes ...reflect.Type - 需要的组件类型列表
// 返回: []EntityID - 满足条件的实体ID列表（按创建顺序）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0, len(em.order))

next:
	for _, id := range em.order {
		compMap := em.components[id]
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				continue next
			}
		}
		result = append(result, id)
	}
	return result
}
