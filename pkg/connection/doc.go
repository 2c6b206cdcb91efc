// Package connection re-establishes lost peer links in the background.
//
// When a peer disappears without a local disconnect request, the
// orchestrator hands its address to a Reconnector. The Reconnector issues
// background connect requests with exponential backoff until the link comes
// back (Connected), the request is withdrawn (Cancel) or the Reconnector is
// closed.
//
// # Reconnection Strategy
//
//  1. Initial delay: 500 milliseconds
//  2. Exponential increase: 1s, 2s, 4s, 8s, 16s
//  3. Maximum delay: 30 seconds
//  4. Continue at 30s until the link is up or the request is cancelled
//
// A connect request that the link layer accepts does not end the loop by
// itself. The loop waits up to AttemptTimeout for the link to come up and
// retries afterwards.
//
// # Jitter
//
// To keep several earbuds from hitting the controller at the same instant:
//
//	actual_delay = base_delay + random(0, base_delay * 0.25)
package connection
