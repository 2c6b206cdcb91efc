// Package registry is the authoritative store of known peer devices and the
// groups they belong to.
//
// The registry owns every Device and Group. Cross references are ids only: a
// device records its group id and a group records member addresses. All
// membership changes go through AssignDeviceToGroup so both sides stay
// consistent, and a group that becomes empty is deleted unless an
// isochronous channel group is still associated with it.
//
// Lookups by address, link handle and isochronous channel handle are backed
// by maps and run in constant time.
package registry
