// Package sandbox is an in-memory stand-in for the WebCRM API used for local
// development and end-to-end tests.
//
// Every destination and contact row carries a [State]. Live rows are
// [StateConfirmed]; rows proposed by an external sync start as
// [StateProposed] and move exactly once to [StateConfirmed] or
// [StateDismissed]. Confirming a proposal replaces the live row it
// counterparts; dismissing it leaves the live row untouched.
package sandbox
