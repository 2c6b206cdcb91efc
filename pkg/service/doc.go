// Package service provides the orchestrator of an LE Audio client.
//
// The Orchestrator ties the lower-level components together:
//   - the device and group registry (pkg/registry)
//   - the stream configuration aggregator and reconfiguration check (pkg/streamconf)
//   - the audio session state machine and suspend timer (pkg/session)
//   - the encode and decode pipeline (pkg/pipeline)
//   - background reconnection (pkg/connection)
//
// Everything outside this module is reached through collaborator interfaces
// (see interfaces.go): the stream protocol, the isochronous channels, the
// platform audio subsystem, the link layer and set coordination. Results flow
// back to the upper layer through Callbacks.
//
// # Sequencing
//
// All registry, group and session mutation happens on a single loop started
// with Start. Collaborators deliver their notifications with Submit, which
// never blocks; public operations such as GroupStream post a task to the loop
// and wait for its result. Operations must not be called from inside the loop
// (for example from a collaborator method invoked by the orchestrator).
//
// Two paths bypass the loop because they are the real-time producers:
// HandleAudioData (outbound PCM) and HandleChannelData (inbound frames). Both
// only touch the pipeline, which carries its own locks.
//
// Example usage:
//
//	cfg := service.DefaultConfig()
//	orch, err := service.New(cfg, service.Collaborators{
//		Stream:   protocol,
//		Iso:      iso,
//		Audio:    hal,
//		Link:     link,
//		Sets:     sets,
//		Codecs:   codecs,
//		Callbacks: ui,
//	})
//	orch.Start(ctx)
//	defer orch.Stop()
//
//	orch.Connect(addr)
//	orch.GroupSetActive(groupID)
package service
