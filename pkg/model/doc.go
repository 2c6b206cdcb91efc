// Package model defines the data model shared by the LE Audio orchestrator.
//
// # Entities
//
// The model has three levels:
//
//	Group > Device > Endpoint
//
// A Device is a peer (one earbud, one hearing aid, a speaker). It owns an
// ordered list of Endpoints, one per negotiated audio stream terminus and
// direction. A Group is a coordinated set of Devices that stream together
// (a stereo pair of earbuds).
//
// Devices and Groups never hold pointers to each other. A Device carries the
// id of the Group it belongs to and a Group carries the addresses of its
// members; both are resolved through the registry.
//
// # Directions
//
// Directions are named from the peer's point of view:
//
//	DirectionSink    peer renders audio (host sends, "audio sender")
//	DirectionSource  peer captures audio (host receives, "audio receiver")
//
// # Contexts and Locations
//
// Audio contexts are single-bit values combined into AudioContexts masks.
// Audio locations are bitmasks describing which speaker positions an
// endpoint renders or captures; any left bit makes a stream the left one.
//
// # Sentinels
//
// InvalidConnID marks a disconnected link, GroupUnknown marks a device that is
// not in any group and InvalidSessionConfig marks a direction that is not
// supported for the current context.
package model
