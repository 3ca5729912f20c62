// Package domain defines the entities of the plaza social graph.
//
// User is the canonical record; posts, comments, notifications, stories and
// advertisements embed denormalized user snapshots for render-time reads.
// The store package owns keeping those snapshots consistent with the
// canonical user after profile mutations.
package domain
