// Package manifest reads the installed delegate package's package.json.
// The launcher only cares about three things in it: the package name, the
// published version, and the optional engines block that declares which
// Node.js versions the delegate supports. The file is parsed tolerantly
// (comments and trailing commas are accepted) and checked against an
// embedded JSON schema before anything trusts its contents.
package manifest
