// Package sema implements the name-binding half of semantic analysis: the
// mechanism by which value and type-alias identifiers are bound to their
// declarations as source is parsed, lexical scopes nest and pop, and
// forward references are resolved once their definitions appear.
//
// The Binder is the orchestration layer. It owns two scoped tables (one
// for values, one for type aliases), the registry of unresolved type
// placeholders, and all redefinition and overload policy. The parser
// drives it strictly sequentially, one declaration at a time, and
// delegates scope boundaries through PushScope/PopScope.
//
// Three behaviors carry the design:
//
//   - A type name referenced before its definition gets an unresolved
//     placeholder declaration, pinned at the base scope frame. The
//     eventual definition completes it in place, so every earlier
//     reference observes the resolution through the same AliasID.
//   - A same-scope redefinition of a value is an error anywhere below top
//     level; at top level it forms an overload set instead, subject to a
//     point compatibility check against the previous member.
//   - FinalizeUnit materializes the top-level items into a unit-owned
//     aggregate and sweeps the pending list; what remains unresolved is
//     attached to the unit for the driver to report.
//
// Errors never abort binding. Every operation returns a usable declaration
// (the placeholder, the previous one, or the new one) so the surrounding
// parse continues and accumulates further diagnostics.
package sema
