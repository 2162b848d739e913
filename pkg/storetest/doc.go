// Package storetest holds the behaviour every event and note repository must show regardless of
// its backing. Run the suites from a backing's tests with a constructor returning an empty
// repository.
package storetest
