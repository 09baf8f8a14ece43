/*
Package domain contains the core types of the transit state machine driver.

It is kept free of I/O and external dependencies. Declaration sources (the dsl
builder, declaration files, targets implementing ports.Declarer) all produce a
Declaration; the resolver turns it into a Table and an Accessor.

# Key Entities

  - Declaration: the metadata attached to a target (transitions and state field).
  - Table: normalized state name to Handler, built once per machine.
  - Accessor: the getter/setter pair over the target's current-state field.
  - LifecycleHooks: callbacks fired around every step.
*/
package domain
