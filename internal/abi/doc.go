// Package abi holds the design-time rules for FNA3D's raw constant sets and
// the small conversions shared by every typed wrapper.
//
// A constant set is classified exactly once, when the bindings are
// generated: either it is an enumeration (mutually exclusive values) or a
// flag set (independently combinable bits). Classify reports what a value
// set looks like; CheckEnum and CheckFlags reject tables that contradict
// the classification they were declared with. Nothing in this package
// disambiguates at run time.
package abi
