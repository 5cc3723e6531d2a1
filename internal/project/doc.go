// Package project models the project being bootstrapped: the validated
// request (name + kind), the safety check for reusing an existing directory,
// and the initializer that materializes the directory with its initial
// package.json manifest. Everything here happens before the delegate package
// exists; once the delegate is invoked, ownership of the directory and its
// manifest transfers to it.
package project
