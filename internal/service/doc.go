// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and the stores
// defined in internal/store to fulfill application features.
//
// Key components:
//
// 1. Service Interfaces:
//   - CategoryService: category CRUD with case-insensitive name uniqueness
//   - TaskService: task CRUD, filtered views, overdue detection, completion
//
// 2. Dependency Management:
//   - Services receive stores, the event emitter, and a logger through
//     constructor injection; constructors reject nil dependencies
//   - The task service takes an optional clock so time-dependent rules are testable
//
// 3. Error Handling:
//   - Input problems are domain validation errors, name collisions are
//     domain conflict errors, and absent entities are nil results
//   - Anything else is wrapped in ServiceError
//
// The service layer depends on domain entities and store interfaces,
// but never on a specific store implementation.
package service
