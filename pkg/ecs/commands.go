package ecs

import "reflect"

type commandKind int

const (
	cmdInsert commandKind = iota
	cmdRemove
	cmdDespawn
)

type command struct {
	kind          commandKind
	entity        EntityID
	component     any
	componentType reflect.Type
}

// Commands is a deferred queue of structural changes. Systems record changes
// while iterating and the owner applies them once per frame.
type Commands struct {
	queue []command
}

// NewCommands creates an empty command queue.
func NewCommands() *Commands {
	return &Commands{queue: make([]command, 0, 8)}
}

// EntityCommands records commands against a single entity.
type EntityCommands struct {
	commands *Commands
	id       EntityID
}

// Entity returns a recorder bound to id.
func (c *Commands) Entity(id EntityID) EntityCommands {
	return EntityCommands{commands: c, id: id}
}

// Insert queues attaching component to the entity.
func (ec EntityCommands) Insert(component any) EntityCommands {
	ec.commands.queue = append(ec.commands.queue, command{
		kind:      cmdInsert,
		entity:    ec.id,
		component: component,
	})
	return ec
}

// Despawn queues destroying the entity.
func (ec EntityCommands) Despawn() {
	ec.commands.queue = append(ec.commands.queue, command{kind: cmdDespawn, entity: ec.id})
}

// Remove queues detaching the component of type T from the entity.
func Remove[T any](ec EntityCommands) EntityCommands {
	ec.commands.queue = append(ec.commands.queue, command{
		kind:          cmdRemove,
		entity:        ec.id,
		componentType: typeOf[T](),
	})
	return ec
}

// Len returns the number of pending commands.
func (c *Commands) Len() int {
	return len(c.queue)
}

// Apply executes the pending commands in the order they were recorded and
// clears the queue. Commands that target entities which no longer exist are
// dropped.
func (c *Commands) Apply(em *EntityManager) {
	for _, cmd := range c.queue {
		if !em.Exists(cmd.entity) {
			continue
		}
		switch cmd.kind {
		case cmdInsert:
			em.AddComponent(cmd.entity, cmd.component)
		case cmdRemove:
			em.RemoveComponent(cmd.entity, cmd.componentType)
		case cmdDespawn:
			em.DestroyEntity(cmd.entity)
		}
	}
	clear(c.queue)
	c.queue = c.queue[:0]
}
