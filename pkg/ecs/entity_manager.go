package ecs

import (
	"reflect"
	"slices"
)

// EntityID identifies an entity. 0 is never handed out and means "no entity".
type EntityID uint64

// EntityManager stores every entity and its components.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]any
	// entities marked by DestroyEntity, dropped on RemoveMarkedEntities
	entitiesToDestroy []EntityID
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]any),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity creates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// Exists reports whether id is a live entity (marked entities count as live
// until RemoveMarkedEntities runs).
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// DestroyEntity marks an entity for removal. The entity keeps its components
// until RemoveMarkedEntities is called.
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent attaches component to the entity, replacing any component of
// the same dynamic type. Unknown entities are ignored.
func (em *EntityManager) AddComponent(id EntityID, component any) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent detaches the component of the given type from the entity.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the entity's component of the given type.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether the entity has a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities drops every entity passed to DestroyEntity.
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// EntityCount returns the number of live entities.
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// GetEntitiesWith returns, in ascending ID order, every entity that has all of
// the given component types.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	slices.Sort(result)
	return result
}
