package ecs

import "reflect"

// typeOf returns the reflect.Type used as the storage key for T.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent returns the entity's component of type T.
//
// T is normally a pointer type, e.g. ecs.GetComponent[*components.SpriteComponent].
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponent(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	typed, ok := comp.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// HasComponent reports whether the entity has a component of type T.
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// RemoveComponent detaches the entity's component of type T.
func RemoveComponent[T any](em *EntityManager, id EntityID) {
	em.RemoveComponent(id, typeOf[T]())
}

// GetEntitiesWith1 returns every entity that has a component of type A.
func GetEntitiesWith1[A any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A]())
}

// GetEntitiesWith2 returns every entity that has components of types A and B.
func GetEntitiesWith2[A, B any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B]())
}

// GetEntitiesWith3 returns every entity that has components of types A, B and C.
func GetEntitiesWith3[A, B, C any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[A](), typeOf[B](), typeOf[C]())
}
