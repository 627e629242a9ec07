// Package events provides types and interfaces for publishing entity changes.
//
// Services emit an EntityEvent after every successful create, update, completion,
// or delete. Handlers registered with an EventEmitter receive the events without
// the services knowing who listens.
//
// The primary components are:
// - EntityEvent: A change to a task or category, with a JSON snapshot
// - EventHandler: Interface for components that can handle events
// - EventEmitter: Interface for components that can emit events
package events
