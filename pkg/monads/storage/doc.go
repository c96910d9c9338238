// Package storage holds the disjoint slots behind Expected and Optional.
//
// Pair keeps a value slot, an error slot and a Tag naming the live one;
// Single keeps one value slot and a presence flag. Construction runs the
// supplied constructor first and flips the tag only after it returned, so a
// panicking constructor leaves the storage Empty. Reset tears the live
// alternative down: slots of types that may hold a monads.Releaser get
// Release called once, every slot is zeroed.
package storage
