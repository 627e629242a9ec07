// Package domain contains the core business entities, value objects, and
// domain logic of the application: tasks, categories, the priority and
// status enumerations, and the Optional type used for fields that may be
// absent. It is independent of any storage or delivery mechanism.
package domain
