// Package invoke classifies and performs calls of plain functions and
// member-style callables against a receiver.
//
// A callable is either a Go func, a member function built with Method (a
// method expression or any func whose first parameter is the receiver), or a
// data member built with Field. Given the argument types, Resolve picks the
// first shape that type-checks, in this order:
// - MethodDirect: call the member function on the receiver itself
// - MethodGet: call it on the target of the receiver's Get() accessor
// - MethodDeref: call it on the pointee of a pointer receiver
// - FieldDirect, FieldGet, FieldDeref: the same three for a data member
// - PlainCall: call the func with the arguments as given
// - NotInvocable: nothing applies
//
// Prepare and PrepareOn resolve once and panic with *NotInvocableError on
// misuse, before anything runs; Call.Do performs the call.
package invoke
