// Package core defines the shared types used across StreamLogger.
//
// It provides the Level type for the three fixed severities and the
// Clock type used to stamp entries and banners.
//
// Every Level has a fixed-width tag ("[INFO ] : ", "[WARN ] : ",
// "[ERROR] : ") so that message bodies line up in the log file
// regardless of severity. The tags are pre-computed strings; rendering
// a prefix never allocates for the tag itself.
//
// Clock is a plain function value rather than an interface so that
// tests can pin the time with a closure. SystemClock reads the wall
// clock in the local time zone on every call.
package core
