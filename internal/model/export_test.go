package model

// ValueBuild exposes the unexported Value.build method to external tests,
// which cannot live in package model because they import testutil and that
// would form an import cycle.
var ValueBuild = Value.build
