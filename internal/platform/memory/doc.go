// Package memory provides memory-resident implementations of the storage
// interfaces defined in the internal/store package. Data lives only for the
// lifetime of the process. Every store is safe for concurrent use and is
// constructed explicitly, one instance per entity type.
package memory
