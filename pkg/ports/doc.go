/*
Package ports defines the interfaces between the transit core and its collaborators.

# Key Interfaces

  - Declarer: supplies the Declaration attached to a target.
  - Operations: resolves named handlers and accessors for declaration files.
  - Stepper: the single-step surface shared by the engine and the Machine facade.
*/
package ports
