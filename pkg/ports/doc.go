// Package ports defines the driven-side interfaces of the palintape
// engine: persistence of completed run records. Adapters (in-memory,
// Redis) implement these contracts; the shared contract suite keeps them
// behaviorally interchangeable.
package ports
